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

package instructions

// Operand describes what an operator requires of the addressing mode.
type Operand int

// List of valid Operand values.
const (
	// the operator does not use an operand. any addressing mode is allowed
	OperandNone Operand = iota

	// the operator reads a value
	OperandValue

	// the operator writes to an address in memory
	OperandStore

	// the operator reads and writes the same location. either memory or the
	// accumulator for the shift and rotate operators
	OperandModify

	// the operator sets the PC to an address
	OperandJump

	// the operator sets the PC to a relative address
	OperandBranch
)

// Operand returns the requirement the operator places on the addressing mode.
func (o Operator) Operand() Operand {
	switch o {
	case Adc, And, Bit, Cmp, Cpx, Cpy, Eor, Lda, Ldx, Ldy, Ora, Sbc,
		ALR, ANC, ARR, AXS, LAS, LAX, LXA, XAA:
		return OperandValue
	case Sta, Stx, Sty, SAX, AHX, SHX, SHY, TAS:
		return OperandStore
	case Asl, Lsr, Rol, Ror, Inc, Dec, DCP, ISC, SLO, RLA, SRE, RRA:
		return OperandModify
	case Jmp, Jsr:
		return OperandJump
	case Bcc, Bcs, Beq, Bmi, Bne, Bpl, Bvc, Bvs:
		return OperandBranch
	}
	return OperandNone
}

// isMemory returns true if the addressing mode resolves an address in memory
// and reads the value at that address.
func (m AddressingMode) isMemory() bool {
	switch m {
	case Absolute, AbsoluteX, AbsoluteY, ZeroPage, ZeroPageX, ZeroPageY, IndexedIndirect, IndirectIndexed:
		return true
	}
	return false
}

// Supports returns true if the addressing mode provides the operand required
// by the operator.
func (o Operator) Supports(m AddressingMode) bool {
	switch o.Operand() {
	case OperandValue:
		return m == Immediate || m.isMemory()
	case OperandStore:
		return m.isMemory()
	case OperandModify:
		if m == Accumulator {
			return o == Asl || o == Lsr || o == Rol || o == Ror
		}
		return m.isMemory()
	case OperandJump:
		return m == Absolute || m == Indirect
	case OperandBranch:
		return m == Relative
	}
	return true
}
