// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package execution

import "fmt"

// Address is a 16 bit address that may or may not have been resolved.
type Address struct {
	v  uint16
	ok bool
}

// NewAddress returns a resolved Address.
func NewAddress(v uint16) Address {
	return Address{v: v, ok: true}
}

// Get returns the address and whether it has been resolved.
func (a Address) Get() (uint16, bool) {
	return a.v, a.ok
}

// IsSet returns true if the address has been resolved.
func (a Address) IsSet() bool {
	return a.ok
}

func (a Address) String() string {
	if !a.ok {
		return "----"
	}
	return fmt.Sprintf("%04X", a.v)
}

// Value is an 8 bit value that may or may not have been resolved.
type Value struct {
	v  uint8
	ok bool
}

// NewValue returns a resolved Value.
func NewValue(v uint8) Value {
	return Value{v: v, ok: true}
}

// Get returns the value and whether it has been resolved.
func (v Value) Get() (uint8, bool) {
	return v.v, v.ok
}

// IsSet returns true if the value has been resolved.
func (v Value) IsSet() bool {
	return v.ok
}

func (v Value) String() string {
	if !v.ok {
		return "--"
	}
	return fmt.Sprintf("%02X", v.v)
}
