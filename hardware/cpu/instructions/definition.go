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

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode

	// the number of bytes the instruction occupies in memory
	Bytes int

	// the base number of cycles taken by the instruction
	Cycles int

	// additional cycles if a page boundary is crossed. for branches, the
	// additional cycles if the branch is taken
	PageCycles int

	// true if the instruction is not part of the documented instruction set
	Undocumented bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s %s +%dbytes (%d cycles, %d page cycles)",
		defn.OpCode, defn.Mnemonic(), defn.AddressingMode, defn.Bytes, defn.Cycles, defn.PageCycles)
}

// Mnemonic returns the three letter name of the operator. Undocumented opcodes
// are prefixed with an asterisk.
func (defn Definition) Mnemonic() string {
	if defn.Undocumented {
		return fmt.Sprintf("*%s", defn.Operator)
	}
	return defn.Operator.String()
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative
}

// PageSensitive returns true if crossing a page boundary affects the number
// of cycles the instruction takes.
func (defn Definition) PageSensitive() bool {
	return defn.PageCycles > 0
}

// Table is the complete list of instruction definitions, indexed by opcode.
type Table [256]*Definition

// Lookup returns the definition for the opcode.
func (tab *Table) Lookup(opcode uint8) *Definition {
	return tab[opcode]
}

// DebugInfo is the information about an opcode that is not required for
// execution.
type DebugInfo struct {
	// mnemonic as written in the CSV file, without the asterisk
	Mnemonic string

	// addressing mode name as written in the CSV file
	Mode string

	Notes string
}

// DebugTable is a parallel table to Table, indexed by opcode.
type DebugTable [256]DebugInfo
