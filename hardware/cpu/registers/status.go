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

package registers

import (
	"strings"
)

// bit masks for the status register value
const (
	flagCarry            = 0x01
	flagZero             = 0x02
	flagInterruptDisable = 0x04
	flagDecimalMode      = 0x08
	flagBreak            = 0x10
	flagUnused           = 0x20
	flagOverflow         = 0x40
	flagSign             = 0x80
)

// StatusRegister is the special purpose register that stores the flags of the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

// String returns the flags as a string of characters. Upper case for set
// flags, lower case for clear flags.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	flag := func(f bool, set rune, clear rune) {
		if f {
			s.WriteRune(set)
		} else {
			s.WriteRune(clear)
		}
	}
	flag(sr.Sign, 'S', 's')
	flag(sr.Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(sr.Break, 'B', 'b')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')
	return s.String()
}

// Value packs the flags into an 8 bit value. Bit order from low to high is
// C, Z, I, D, B, (unused), V, S. The unused bit is always set.
func (sr StatusRegister) Value() uint8 {
	v := uint8(flagUnused)

	if sr.Sign {
		v |= flagSign
	}
	if sr.Overflow {
		v |= flagOverflow
	}
	if sr.Break {
		v |= flagBreak
	}
	if sr.DecimalMode {
		v |= flagDecimalMode
	}
	if sr.InterruptDisable {
		v |= flagInterruptDisable
	}
	if sr.Zero {
		v |= flagZero
	}
	if sr.Carry {
		v |= flagCarry
	}

	return v
}

// Load unpacks an 8 bit value into the flags. The unused bit is ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&flagSign == flagSign
	sr.Overflow = v&flagOverflow == flagOverflow
	sr.Break = v&flagBreak == flagBreak
	sr.DecimalMode = v&flagDecimalMode == flagDecimalMode
	sr.InterruptDisable = v&flagInterruptDisable == flagInterruptDisable
	sr.Zero = v&flagZero == flagZero
	sr.Carry = v&flagCarry == flagCarry
}

// PushValue is the value of the status register as pushed onto the stack by
// the PHP and BRK instructions. Both the break bit and the unused bit are set.
func (sr StatusRegister) PushValue() uint8 {
	return sr.Value() | flagBreak | flagUnused
}

// LoadPulled unpacks a value pulled from the stack by the PLP and RTI
// instructions. The break bit is masked out and the unused bit is forced on
// before unpacking.
func (sr *StatusRegister) LoadPulled(v uint8) {
	sr.Load(v&^flagBreak | flagUnused)
}
