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

// Package debugger implements an interactive single-key debugger for the NES
// emulation. Each key press is a command:
//
//	s, space, return    execute a single instruction and print the trace line
//	c                   continue until the break condition holds
//	r                   show the CPU registers
//	l                   show the most recent log entries
//	h, ?                show help
//	q                   quit the debugger
//
// The break condition is a Lua expression. See the conditions package for the
// list of values available to the expression. Without a condition, the
// continue command runs until an error occurs or until interrupted with
// Ctrl-C.
//
// When an instruction fails and a dump file has been specified, the state of
// the CPU is written to the file as a graphviz document.
package debugger
