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

// Package bus implements the address bus of the NES as seen by the CPU. The
// bus is a flat 64KB store with the address resolution rules of the console
// applied to every access:
//
//	$0000 to $1FFF	2KB of internal RAM, mirrored four times
//	$2000 to $3FFF	PPU registers (and mirrors)
//	$4000 to $401F	APU and I/O registers
//	$4020 to $FFFF	cartridge space
//
// The PPU and the APU are not emulated and any access to those regions results
// in an AccessViolation error. Use curated.Is() to test for it.
//
// Peek() is a read that never fails and is intended for debuggers and tracers
// that need to look at memory without changing the outcome of the emulation.
//
// Load() is the bulk writer used to install program images. It writes
// directly to the backing store without address resolution.
package bus
