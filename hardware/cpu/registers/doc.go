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

// Package registers implements the four types of registers found in the NES
// CPU: the program counter, the stack pointer, the status register and the 8
// bit register type used for A, X and Y.
//
// The 8 bit registers, implemented as the Register type, define all the basic
// operations available to the 6502: load, add, subtract, logical operations
// and shifts/rotates. In addition it implements the tests required for status
// updates: is the value zero, is the number negative or is the overflow bit
// set.
//
// The status register is implemented as a series of flags. Setting of flags
// is done directly. For instance, in the CPU, we might have this sequence of
// function calls:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//	sr.Carry = carry
//	sr.Overflow = overflow
//
// The NES variant of the 6502 has no decimal mode. The DecimalMode flag can be
// set and cleared but it has no effect on the ADC and SBC instructions.
package registers
