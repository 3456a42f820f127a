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

// Package dump writes the state of the CPU as a graphviz document. The
// document is generated by memviz and shows the CPU registers along with the
// decoding of the instruction that was being executed.
//
// The dump is intended to be written when execution fails so that the state
// of the machine can be inspected after the fact. The output can be rendered
// with the dot tool:
//
//	dot -Tpng gophernes_crash.dot -o gophernes_crash.png
package dump

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
)

// State is the root of the dumped graph.
type State struct {
	CPU *cpu.CPU

	// the decoding of the most recent instruction. nil if no instruction has
	// been decoded
	Decoded *execution.Decoded

	// the error that caused the dump. empty if there was no error
	Error string
}

// NewState creates a State from a snapshot of the CPU.
func NewState(mc *cpu.CPU, d *execution.Decoded, err error) *State {
	st := &State{
		CPU: mc.Snapshot(),
	}
	if d != nil {
		c := *d
		st.Decoded = &c
	}
	if err != nil {
		st.Error = err.Error()
	}
	return st
}

// FromNES creates a State for the NES after an instruction has failed. The
// CPU is in the state it was in before the failed instruction so the
// instruction is decoded again for the dump.
func FromNES(nes *hardware.NES, err error) *State {
	var decoded *execution.Decoded
	mc := nes.CPU.Snapshot()
	if d, derr := nes.Executor.FetchAndDecode(mc, nes.Mem); derr == nil {
		decoded = &d
	}
	return NewState(nes.CPU, decoded, err)
}

// Write the state to the io.Writer.
func (st *State) Write(w io.Writer) {
	memviz.Map(w, st)
}

// ToFile creates the named file and writes the state to it.
func (st *State) ToFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	st.Write(f)
	if err := f.Close(); err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	return nil
}
