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

import "fmt"

// the stack is always in page one of memory
const stackPage = 0x0100

// StackPointer represents the SP register. The stack grows downwards and the
// pointer wraps around within page one.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02X", sp.value)
}

// Value returns the 8 bit value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the memory address the stack pointer points to.
func (sp StackPointer) Address() uint16 {
	return stackPage | uint16(sp.value)
}

// Load value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push returns the address to write the pushed value to and then moves the
// stack pointer down by one.
func (sp *StackPointer) Push() uint16 {
	addr := sp.Address()
	sp.value--
	return addr
}

// Pull moves the stack pointer up by one and returns the address to read the
// pulled value from.
func (sp *StackPointer) Pull() uint16 {
	sp.value++
	return sp.Address()
}
