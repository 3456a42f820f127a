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

package cpu

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
)

// ResetVector is the address of the address the PC is loaded from on reset.
const ResetVector = 0xfffc

// BreakVector is the address of the address the PC is loaded from by the BRK
// instruction.
const BreakVector = 0xfffe

// the number of cycles taken by the reset sequence
const resetCycles = 7

// the value of the status register after reset. interrupts are disabled
const resetStatus = 0x24

// the value of the stack pointer after reset
const resetSP = 0xfd

// Executor performs instructions on a CPU. It holds the instruction table and
// nothing else that changes so it can be shared by any number of CPUs.
type Executor struct {
	table *instructions.Table

	// whether undocumented opcodes are executed. if false they result in an
	// UnexpectedOpcode error
	undocumented bool
}

// NewExecutor is the preferred method of initialisation for the Executor
// type.
func NewExecutor(table *instructions.Table, undocumented bool) *Executor {
	return &Executor{
		table:        table,
		undocumented: undocumented,
	}
}

// Undocumented returns true if the executor will execute undocumented
// opcodes.
func (ex *Executor) Undocumented() bool {
	return ex.undocumented
}

// PowerOn initialises the CPU as though the console had just been switched
// on. The A, X and Y registers are cleared.
func (ex *Executor) PowerOn(mc *CPU, mem cpubus.Memory) error {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	return ex.Reset(mc, mem)
}

// Reset initialises the CPU as though the reset button had been pressed. The
// PC is loaded from the reset vector. The A, X and Y registers are not
// changed.
func (ex *Executor) Reset(mc *CPU, mem cpubus.Memory) error {
	pc, err := read16(mem, ResetVector)
	if err != nil {
		return err
	}

	mc.PC.Load(pc)
	mc.SP.Load(resetSP)
	mc.Status.Load(resetStatus)
	mc.InstructionRegister = 0
	mc.Cycles = resetCycles
	mc.LastResult = execution.Result{}
	mc.Killed = false

	return nil
}

// Step performs a single instruction. If an error occurs the CPU is left in
// the state it was in before Step() was called, with the exception of the
// Killed field.
func (ex *Executor) Step(mc *CPU, mem cpubus.Memory) (execution.Result, error) {
	return ex.StepWithDecode(mc, mem, nil)
}

// StepWithDecode is the same as Step() except that the onDecode function is
// called between the decode and execute phases. The function will not be
// called if the decode phase fails. A nil function is allowed.
func (ex *Executor) StepWithDecode(mc *CPU, mem cpubus.Memory, onDecode func(execution.Decoded)) (execution.Result, error) {
	if mc.Killed {
		return execution.Result{}, curated.Errorf(Jammed, mc.InstructionRegister, mc.PC.Address())
	}

	prev := *mc

	d, err := ex.FetchAndDecode(mc, mem)
	if err != nil {
		return execution.Result{}, err
	}

	if onDecode != nil {
		onDecode(d)
	}

	r, err := ex.Execute(mc, mem, d)
	if err != nil {
		*mc = prev
		if curated.Is(err, Jammed) {
			mc.Killed = true
			mc.InstructionRegister = d.Defn.OpCode
		}
		return r, err
	}

	return r, nil
}

// read16 reads a little-endian 16 bit value. the address of the high byte
// wraps around from $ffff to $0000
func read16(mem cpubus.Memory, address uint16) (uint16, error) {
	lo, err := mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
