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

	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// the column at which the register values begin
const registerColumn = 48

// Tracer creates trace lines for decoded instructions.
type Tracer struct {
	debug *instructions.DebugTable

	// include the number of cycles at the end of each line
	Cycles bool
}

// NewTracer is the preferred method of initialisation for the Tracer type.
// The debug table is used for the mnemonic of each instruction.
func NewTracer(debug *instructions.DebugTable) *Tracer {
	return &Tracer{
		debug: debug,
	}
}

// mnemonic returns the mnemonic for the definition as it is written in the
// instruction table
func (tr *Tracer) mnemonic(defn *instructions.Definition) string {
	if m := tr.debug[defn.OpCode].Mnemonic; m != "" {
		return m
	}
	return defn.Operator.String()
}

// bytecode returns the bytes of the instruction as they are found in memory
func bytecode(d execution.Decoded) string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%02X", d.Defn.OpCode))
	if v, ok := d.ValueInit.Get(); ok {
		s.WriteString(fmt.Sprintf(" %02X", v))
	}
	if v, ok := d.ValueIntermediate.Get(); ok {
		s.WriteString(fmt.Sprintf(" %02X", v))
	}
	return s.String()
}

// prefix returns the part of the line common to trace lines and disassembly
// lines
func (tr *Tracer) prefix(defn *instructions.Definition, address uint16, bytecode string, operand string) string {
	star := ' '
	if defn.Undocumented {
		star = '*'
	}

	m := tr.mnemonic(defn)
	if operand != "" {
		m = fmt.Sprintf("%s %s", m, operand)
	}

	return fmt.Sprintf("%04X  %-8s %c%s", address, bytecode, star, m)
}

// Line returns the trace line for the decoded instruction. The CPU should be
// in the state it was in immediately after the decode phase.
func (tr *Tracer) Line(mc *cpu.CPU, d execution.Decoded) string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%-*s", registerColumn, tr.prefix(d.Defn, d.Origin, bytecode(d), annotatedOperand(d))))
	s.WriteString(fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.Status.Value(), mc.SP.Value()))
	if tr.Cycles {
		s.WriteString(fmt.Sprintf(" CYC:%d", mc.Cycles))
	}
	return s.String()
}

// annotatedOperand returns the operand of the instruction along with the
// addresses and values resolved by the decode phase
func annotatedOperand(d execution.Decoded) string {
	operand, _ := d.Operand()
	value, _ := d.ValueFinal.Get()
	final, _ := d.AddrFinal.Get()
	intermediate, _ := d.AddrIntermediate.Get()

	switch d.Defn.AddressingMode {
	case instructions.Implied:
		return ""

	case instructions.Accumulator:
		return "A"

	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", value)

	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X = %02X", final, value)

	case instructions.ZeroPageX:
		return fmt.Sprintf("$%02X,X @ %02X = %02X", operand, final, value)

	case instructions.ZeroPageY:
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", operand, final, value)

	case instructions.Absolute:
		if d.Defn.Operator == instructions.Jmp || d.Defn.Operator == instructions.Jsr {
			return fmt.Sprintf("$%04X", final)
		}
		return fmt.Sprintf("$%04X = %02X", final, value)

	case instructions.AbsoluteX:
		return fmt.Sprintf("$%04X,X @ %04X = %02X", operand, final, value)

	case instructions.AbsoluteY:
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", operand, final, value)

	case instructions.Indirect:
		return fmt.Sprintf("($%04X) = %04X", operand, final)

	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", operand, intermediate, final, value)

	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", operand, intermediate, final, value)

	case instructions.Relative:
		return fmt.Sprintf("$%04X", final)
	}

	return ""
}
