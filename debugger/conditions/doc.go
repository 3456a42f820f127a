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

// Package conditions evaluates Lua expressions against the state of the CPU.
// The debugger uses a condition to decide when to stop a continuous run.
//
// The expression is compiled once and evaluated after every instruction. The
// following globals are available to the expression:
//
//	A X Y SP PC P    register values as numbers
//	C Z I D B V S    status flags as booleans
//	cycles           the CPU cycle count
//
// The function peek(addr) returns the value at the address or nil if the
// address cannot be read. For example:
//
//	PC == 0xc5f5 and Z
//	peek(0x0002) ~= 0
package conditions
