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

// Bug identifies a known quirk of the 6502 that was triggered by an
// instruction. The quirks are emulated faithfully. The Bug value is for the
// benefit of the debugger.
type Bug string

// List of valid Bug values.
const (
	NoBug Bug = ""

	// the high byte of the indirect JMP target is read from the start of the
	// same page when the pointer is at the end of a page
	JmpIndirectAddressingBug Bug = "indirect addressing bug"

	// the zero page pointer of the indexed indirect and indirect indexed
	// modes wraps within page zero
	ZeroPagePointerBug Bug = "zero page pointer bug"

	// the indexed zero page address wraps within page zero
	ZeroPageIndexBug Bug = "zero page index bug"
)
