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

import (
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// Decoded is the result of the decode phase of an instruction. It is created
// by the CPU and passed to the execute phase. It is not retained by the CPU
// once the instruction has completed.
//
// How the fields are populated depends on the addressing mode:
//
//	Absolute          AddrFinal ValueFinal
//	AbsoluteX/Y       AddrInit (base) AddrFinal ValueFinal
//	Immediate         AddrFinal ValueFinal
//	Indirect          AddrIntermediate (pointer) AddrFinal
//	IndexedIndirect   AddrInit (zp) AddrIntermediate (zp+X) AddrFinal ValueFinal
//	IndirectIndexed   AddrInit (zp) AddrIntermediate (pointer) AddrFinal ValueFinal
//	Relative          AddrFinal (branch target) ValueFinal (offset)
//	ZeroPage          AddrFinal ValueFinal
//	ZeroPageX/Y       AddrInit (zp) AddrFinal ValueFinal
//
// ValueInit and ValueIntermediate are the first and second operand bytes of
// the instruction as they appear in memory. They are set when the instruction
// has operand bytes.
type Decoded struct {
	// the address of the opcode
	Origin uint16

	Defn *instructions.Definition

	AddrInit         Address
	AddrIntermediate Address
	AddrFinal        Address

	ValueInit         Value
	ValueIntermediate Value
	ValueFinal        Value

	// an index register caused the final address to be in a different page
	// to the base address. for relative addressing, the branch target is in
	// a different page to the following instruction
	PageCrossed bool

	// quirk triggered during address resolution
	CPUBug Bug
}

// Operand returns the operand of the instruction as a 16 bit number. For two
// byte instructions only the low byte is used.
func (d Decoded) Operand() (uint16, bool) {
	lo, ok := d.ValueInit.Get()
	if !ok {
		return 0, false
	}
	hi, _ := d.ValueIntermediate.Get()
	return uint16(hi)<<8 | uint16(lo), true
}
