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

package instructions_test

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/test"
)

func TestDefault(t *testing.T) {
	tab, dbg, err := instructions.Default()
	test.DemandSuccess(t, err)

	var legal int
	operators := make(map[instructions.Operator]bool)

	for i, defn := range tab {
		if !test.ExpectInequality(t, defn, nil, i) {
			continue
		}
		test.ExpectEquality(t, int(defn.OpCode), i)
		test.ExpectEquality(t, defn.Bytes, defn.AddressingMode.Bytes(), i)
		if !defn.Undocumented {
			legal++
			operators[defn.Operator] = true
		}
	}

	test.ExpectEquality(t, legal, 151)
	test.ExpectEquality(t, len(operators), 56)

	// second call returns the same table
	tab2, _, err := instructions.Default()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tab2, tab)

	defn := tab.Lookup(0x6d)
	test.ExpectEquality(t, defn.Operator, instructions.Adc)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Absolute)
	test.ExpectEquality(t, defn.Bytes, 3)
	test.ExpectEquality(t, defn.Cycles, 4)
	test.ExpectEquality(t, defn.PageSensitive(), false)

	defn = tab.Lookup(0xbd)
	test.ExpectEquality(t, defn.Operator, instructions.Lda)
	test.ExpectEquality(t, defn.AddressingMode, instructions.AbsoluteX)
	test.ExpectEquality(t, defn.PageCycles, 1)

	defn = tab.Lookup(0x6c)
	test.ExpectEquality(t, defn.Operator, instructions.Jmp)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Indirect)

	defn = tab.Lookup(0xd0)
	test.ExpectEquality(t, defn.IsBranch(), true)

	// undocumented opcodes
	defn = tab.Lookup(0xeb)
	test.ExpectEquality(t, defn.Operator, instructions.Sbc)
	test.ExpectEquality(t, defn.Undocumented, true)
	test.ExpectEquality(t, defn.Mnemonic(), "*SBC")

	defn = tab.Lookup(0xe3)
	test.ExpectEquality(t, defn.Operator, instructions.ISC)
	test.ExpectEquality(t, defn.Undocumented, true)
	test.ExpectEquality(t, dbg[0xe3].Mnemonic, "ISB")
	test.ExpectEquality(t, dbg[0xe3].Mode, "IndexedIndirect")

	defn = tab.Lookup(0x02)
	test.ExpectEquality(t, defn.Operator, instructions.KIL)
	test.ExpectEquality(t, dbg[0x02].Notes, "halts the cpu")
}

// returns the default CSV data with the edit function applied to the lines
func editDefault(t *testing.T, edit func(lines []string) []string) string {
	t.Helper()
	data, err := os.ReadFile("opcodes.csv")
	test.DemandSuccess(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	return strings.Join(edit(lines), "\n")
}

// index of the line for the opcode
func lineIdx(lines []string, opcode string) int {
	for i, l := range lines {
		if strings.HasPrefix(l, opcode+",") {
			return i
		}
	}
	return -1
}

func expectLoadError(t *testing.T, data string, tag string) {
	t.Helper()
	_, _, err := instructions.Load(strings.NewReader(data))
	test.ExpectFailure(t, err, tag)
	test.ExpectEquality(t, curated.Is(err, instructions.LoadError), true, tag)
}

func TestLoadErrors(t *testing.T) {
	expectLoadError(t, "", "empty")

	expectLoadError(t, editDefault(t, func(lines []string) []string {
		i := lineIdx(lines, "0x6D")
		return append(lines, lines[i])
	}), "duplicate")

	expectLoadError(t, editDefault(t, func(lines []string) []string {
		i := lineIdx(lines, "0x6D")
		return append(lines[:i], lines[i+1:]...)
	}), "missing")

	expectLoadError(t, editDefault(t, func(lines []string) []string {
		i := lineIdx(lines, "0x6D")
		lines[i] = "0x6D,FOO,Absolute,3,4,0,"
		return lines
	}), "unknown mnemonic")

	expectLoadError(t, editDefault(t, func(lines []string) []string {
		i := lineIdx(lines, "0x6D")
		lines[i] = "0x6D,ADC,Absolutely,3,4,0,"
		return lines
	}), "unknown mode")

	expectLoadError(t, editDefault(t, func(lines []string) []string {
		i := lineIdx(lines, "0x6D")
		lines[i] = "0x6D,ADC,Absolute,2,4,0,"
		return lines
	}), "wrong length")

	expectLoadError(t, editDefault(t, func(lines []string) []string {
		i := lineIdx(lines, "0x6D")
		lines[i] = "0x6D,ADC,Absolute,3,four,0,"
		return lines
	}), "bad cycles")

	expectLoadError(t, editDefault(t, func(lines []string) []string {
		i := lineIdx(lines, "0x6D")
		lines[i] = "0x16D,ADC,Absolute,3,4,0,"
		return lines
	}), "opcode out of range")

	expectLoadError(t, editDefault(t, func(lines []string) []string {
		i := lineIdx(lines, "0x6D")
		lines[i] = "6D,ADC,Absolute,3,4,0,"
		return lines
	}), "no hex prefix")

	expectLoadError(t, editDefault(t, func(lines []string) []string {
		i := lineIdx(lines, "0x6D")
		lines[i] = "0x6D,ADC,Absolute,3,4,0"
		return lines
	}), "field count")

	expectLoadError(t, editDefault(t, func(lines []string) []string {
		i := lineIdx(lines, "0xE3")
		lines[i] = "0xE3,ISB,IndexedIndirect,2,8,0,"
		return lines
	}), "undocumented without asterisk")

	expectLoadError(t, editDefault(t, func(lines []string) []string {
		i := lineIdx(lines, "0x85")
		lines[i] = "0x85,STA,Implied,1,3,0,"
		return lines
	}), "store without address")

	expectLoadError(t, editDefault(t, func(lines []string) []string {
		i := lineIdx(lines, "0xA9")
		lines[i] = "0xA9,LDA,Accumulator,1,2,0,"
		return lines
	}), "load from accumulator")

	expectLoadError(t, editDefault(t, func(lines []string) []string {
		i := lineIdx(lines, "0x4C")
		lines[i] = "0x4C,JMP,Immediate,2,3,0,"
		return lines
	}), "jump to immediate")
}

func TestOperandSupport(t *testing.T) {
	tab, _, err := instructions.Default()
	test.DemandSuccess(t, err)
	for _, defn := range tab {
		test.ExpectEquality(t, defn.Operator.Supports(defn.AddressingMode), true, defn)
	}

	test.ExpectEquality(t, instructions.Sta.Supports(instructions.Implied), false)
	test.ExpectEquality(t, instructions.Sta.Supports(instructions.Immediate), false)
	test.ExpectEquality(t, instructions.Lda.Supports(instructions.Immediate), true)
	test.ExpectEquality(t, instructions.Asl.Supports(instructions.Accumulator), true)
	test.ExpectEquality(t, instructions.Inc.Supports(instructions.Accumulator), false)
	test.ExpectEquality(t, instructions.Bne.Supports(instructions.Absolute), false)
	test.ExpectEquality(t, instructions.Nop.Supports(instructions.AbsoluteX), true)
	test.ExpectEquality(t, instructions.Tax.Operand(), instructions.OperandNone)
}

func TestLoadAliases(t *testing.T) {
	data := editDefault(t, func(lines []string) []string {
		i := lineIdx(lines, "0xCB")
		lines[i] = "0xCB,*SBX,Immediate,2,2,0,"
		return lines
	})

	tab, dbg, err := instructions.Load(strings.NewReader(data))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.Lookup(0xcb).Operator, instructions.AXS)
	test.ExpectEquality(t, dbg[0xcb].Mnemonic, "SBX")
}
