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
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
)

// Sentinal error patterns.
const (
	UnexpectedOpcode      = "cpu: unexpected opcode %#02x (%s) at %#04x"
	UnexpectedAddressMode = "cpu: unexpected address mode (%s) for opcode %#02x at %#04x"
	Jammed                = "cpu: jammed by opcode %#02x at %#04x"
	FetchError            = "cpu: fetch at %#04x: %v"
	StepError             = "cpu: opcode %#02x at %#04x: %v"
)

// CPU is the register state of the 6502. Register logic is implemented by the
// types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// the most recently fetched opcode
	InstructionRegister uint8

	// total number of cycles since power on or reset
	Cycles int

	// the result of the most recently completed instruction
	LastResult execution.Result

	// the cpu has encounted a KIL instruction. requires a Reset()
	Killed bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is not usable until PowerOn() or Reset() has been called by an Executor.
func NewCPU() *CPU {
	return &CPU{
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(0),
		Status: registers.NewStatusRegister(),
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// LoadPC loads the address into the PC. Used to start execution at an address
// other than the reset vector.
func (mc *CPU) LoadPC(address uint16) {
	mc.PC.Load(address)
}

// HasReset checks whether the CPU has been reset and not yet executed an
// instruction.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Defn == nil
}

// push a byte onto the stack
func (mc *CPU) push(mem cpubus.Memory, v uint8) error {
	return mem.Write(mc.SP.Push(), v)
}

// pull a byte from the stack
func (mc *CPU) pull(mem cpubus.Memory) (uint8, error) {
	return mem.Read(mc.SP.Pull())
}

// push a 16 bit value onto the stack, high byte first
func (mc *CPU) push16(mem cpubus.Memory, v uint16) error {
	if err := mc.push(mem, uint8(v>>8)); err != nil {
		return err
	}
	return mc.push(mem, uint8(v))
}

// pull a 16 bit value from the stack, low byte first
func (mc *CPU) pull16(mem cpubus.Memory) (uint16, error) {
	lo, err := mc.pull(mem)
	if err != nil {
		return 0, err
	}
	hi, err := mc.pull(mem)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
