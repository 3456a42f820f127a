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
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return fmt.Errorf("cpu: execution has no instruction definition")
	}

	// is PageFault valid given content of Defn
	if !r.Defn.IsBranch() && !r.Defn.PageSensitive() && r.PageFault {
		return fmt.Errorf("cpu: unexpected page fault")
	}

	if r.Branched && !r.Defn.IsBranch() {
		return fmt.Errorf("cpu: unexpected branch")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	if r.Defn.IsBranch() {
		expected := r.Defn.Cycles
		if r.Branched {
			expected += r.Defn.PageCycles
			if r.PageFault {
				expected++
			}
		}
		if r.Cycles != expected {
			return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn.Mnemonic(), r.Cycles, expected)
		}
		return nil
	}

	expected := r.Defn.Cycles
	if r.PageFault {
		expected += r.Defn.PageCycles
	}
	if r.Cycles != expected {
		return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Mnemonic(), r.Cycles, expected)
	}

	return nil
}
