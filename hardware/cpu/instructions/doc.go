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

// Package instructions defines the instruction set of the NES CPU. Each of the
// 256 opcodes has a Definition, describing the Operator, the AddressingMode,
// the number of bytes the instruction occupies in memory and the number of
// cycles it takes to execute.
//
// The definitions are loaded from a CSV file with the Load() function. The
// canonical table is embedded in the binary and is available through the
// Default() function. Each record in the CSV file has seven fields:
//
//	opcode,mnemonic,mode,len,cycles,page_cycles,notes
//
// For example:
//
//	0xBD,LDA,AbsoluteX,3,4,1,
//
// The opcode is a hexadecimal number with the 0x prefix. A mnemonic beginning
// with an asterisk is an undocumented opcode. The page_cycles field is the
// number of additional cycles required if the addressing mode crosses a page
// boundary (or for branch instructions, if the branch is taken). Lines
// beginning with a # character are ignored, as is the header record.
//
// The table must contain exactly one definition for every opcode.
package instructions
