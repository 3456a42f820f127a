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

// Package tracer produces a one line description of each instruction executed
// by the CPU. The format of the line is the same as the format of the
// widely distributed nestest log, making it possible to compare the emulation
// with the reference log line by line.
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD
//	C5F5  A2 00     LDX #$00                        A:00 X:00 Y:00 P:24 SP:FD
//
// The reference log includes PPU information after the SP field. The PPU is
// not emulated so the Comparison type only considers each line up to and
// including the SP field.
//
// The Disassemble() function produces a static listing of memory using the
// same formatting rules but without the register values or memory
// annotations.
package tracer
