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

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// Result records the outcome of a complete instruction.
type Result struct {
	// the address of the opcode
	Address uint16

	Defn *instructions.Definition

	// the number of bytes occupied by the instruction. should be the same as
	// Defn.Bytes
	ByteCount int

	// the number of cycles taken by the instruction. usually the same as
	// Defn.Cycles but page faults and taken branches add to this value
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction caused the program counter to change
	Branched bool

	// quirk triggered during execution
	CPUBug Bug

	// whether the instruction has completed
	Final bool
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04X ???", r.Address)
	}
	return fmt.Sprintf("%04X %s [%d]", r.Address, r.Defn.Mnemonic(), r.Cycles)
}
