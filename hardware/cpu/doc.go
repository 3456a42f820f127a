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

// Package cpu emulates the 2A03 found in the NES. The 2A03 is a 6502 without
// the decimal mode. Like all 8-bit processors of the era, the 6502 executes
// instructions according to the single byte value read from an address
// pointed to by the program counter. This single byte is the opcode and is
// looked up in the instruction table. The instruction definition for that
// opcode is then used to move execution of the program forward.
//
// The CPU type holds the register state only. The Executor type holds the
// instruction table and performs the work. The Executor doesn't hold any
// mutable state so a single instance can be shared. Both the CPU and the
// memory are passed to each Executor function by the caller.
//
//	tab, _, _ := instructions.Default()
//	ex := cpu.NewExecutor(tab, true)
//	mc := cpu.NewCPU()
//
//	_ = ex.PowerOn(mc, mem)
//	for {
//		_, err := ex.Step(mc, mem)
//		if err != nil {
//			break
//		}
//	}
//
// Each step is made of two phases. FetchAndDecode() reads the opcode and
// resolves the addressing mode, returning an execution.Decoded value. Execute()
// performs the operation described by the decoded instruction. Step() calls
// both.
//
// A Step() either completes or it doesn't. In the event of an error, the CPU
// is returned to the state it was in before the Step() was called. The one
// exception is the KIL instruction, which sets the Killed field. A killed CPU
// requires a Reset() before it will execute any more instructions.
package cpu
