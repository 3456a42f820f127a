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

package tracer

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// Peeker is the memory interface required by the Disassemble() function.
// Addresses that cannot be read return false.
type Peeker interface {
	Peek(address uint16) (uint8, bool)
}

// Disassemble returns a static listing of count instructions starting at
// origin. Instructions are assumed to follow one another in memory. Bytes that
// cannot be read are shown as question marks and the listing continues with
// the next address.
func (tr *Tracer) Disassemble(tab *instructions.Table, mem Peeker, origin uint16, count int) []string {
	lines := make([]string, 0, count)

	address := origin
	for range count {
		opcode, ok := mem.Peek(address)
		if !ok {
			lines = append(lines, fmt.Sprintf("%04X  ??", address))
			address++
			continue
		}

		defn := tab.Lookup(opcode)

		var operand uint16
		bytes := strings.Builder{}
		bytes.WriteString(fmt.Sprintf("%02X", opcode))
		for i := 1; i < defn.Bytes; i++ {
			v, ok := mem.Peek(address + uint16(i))
			if !ok {
				bytes.WriteString(" ??")
				continue
			}
			bytes.WriteString(fmt.Sprintf(" %02X", v))
			operand |= uint16(v) << (8 * (i - 1))
		}

		lines = append(lines, strings.TrimRight(tr.prefix(defn, address, bytes.String(), staticOperand(defn, address, operand)), " "))
		address += uint16(defn.Bytes)
	}

	return lines
}

// staticOperand returns the operand of the instruction without any of the
// information that is only available at execution time
func staticOperand(defn *instructions.Definition, address uint16, operand uint16) string {
	switch defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", operand)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X", operand)
	case instructions.ZeroPageX:
		return fmt.Sprintf("$%02X,X", operand)
	case instructions.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", operand)
	case instructions.Absolute:
		return fmt.Sprintf("$%04X", operand)
	case instructions.AbsoluteX:
		return fmt.Sprintf("$%04X,X", operand)
	case instructions.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", operand)
	case instructions.Indirect:
		return fmt.Sprintf("($%04X)", operand)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", operand)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", operand)
	case instructions.Relative:
		// branch target is relative to the following instruction
		target := address + 2 + uint16(operand&0xff)
		if operand&0x80 == 0x80 {
			target -= 0x100
		}
		return fmt.Sprintf("$%04X", target)
	}
	return ""
}
