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

// AddressingMode describes the method of memory addressing used by an
// instruction.
type AddressingMode int

// List of valid AddressingMode values.
const (
	NoMode AddressingMode = iota
	Absolute
	AbsoluteX // abs,X
	AbsoluteY // abs,Y
	Accumulator
	Immediate
	Implied
	Indirect        // (ind) for JMP only
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
	Relative        // branch instructions
	ZeroPage
	ZeroPageX // zp,X
	ZeroPageY // zp,Y
)

var modeNames = map[AddressingMode]string{
	Absolute:        "Absolute",
	AbsoluteX:       "AbsoluteX",
	AbsoluteY:       "AbsoluteY",
	Accumulator:     "Accumulator",
	Immediate:       "Immediate",
	Implied:         "Implied",
	Indirect:        "Indirect",
	IndexedIndirect: "IndexedIndirect",
	IndirectIndexed: "IndirectIndexed",
	Relative:        "Relative",
	ZeroPage:        "ZeroPage",
	ZeroPageX:       "ZeroPageX",
	ZeroPageY:       "ZeroPageY",
}

func (m AddressingMode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return "unknown addressing mode"
}

// Bytes returns the number of bytes an instruction using the addressing mode
// occupies in memory, including the opcode. Returns zero for an invalid mode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Accumulator, Implied:
		return 1
	case Immediate, IndexedIndirect, IndirectIndexed, Relative, ZeroPage, ZeroPageX, ZeroPageY:
		return 2
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	}
	return 0
}

// AddressingModeFromName returns the AddressingMode for the name as used in
// the CSV file. Names are case sensitive.
func AddressingModeFromName(name string) (AddressingMode, bool) {
	for m, n := range modeNames {
		if n == name {
			return m, true
		}
	}
	return NoMode, false
}
