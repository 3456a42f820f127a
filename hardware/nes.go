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

package hardware

import (
	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/memory/bus"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/logger"
)

// the size of the internal RAM before mirroring
const internalRAM = 0x0800

// NES is the highest level of the emulated hardware. It contains references to
// all the sub-components.
type NES struct {
	Prefs *preferences.Preferences

	CPU      *cpu.CPU
	Executor *cpu.Executor
	Mem      *bus.Bus

	// the cartridge most recently attached. zero value if no cartridge has
	// been attached
	Cart cartridgeloader.INES

	// the opcode table used by the executor and the debugging information
	// loaded alongside it
	Instructions *instructions.Table
	Debug        *instructions.DebugTable
}

// NewNES creates a new NES and everything associated with the hardware. A nil
// prefs argument will create a Preferences instance from the default prefs
// file.
func NewNES(prefs *preferences.Preferences) (*NES, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	tab, dbg, err := instructions.Default()
	if err != nil {
		return nil, err
	}

	nes := &NES{
		Prefs:        prefs,
		CPU:          cpu.NewCPU(),
		Mem:          bus.NewBus(),
		Instructions: tab,
		Debug:        dbg,
	}
	nes.Executor = cpu.NewExecutor(tab, prefs.Undocumented.Get().(bool))

	return nes, nil
}

// AttachCartridge loads the cartridge data and installs it into the address
// space. The NES is powered on as a result.
func (nes *NES) AttachCartridge(cl cartridgeloader.Loader) error {
	if !cl.HasLoaded() {
		if err := cl.Load(); err != nil {
			return err
		}
	}

	cart, err := cartridgeloader.ParseINES(cl.Data)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "NES", "attached %s: %s", cl.ShortName(), cart)

	nes.Cart = cart
	nes.Mem.Clear()
	if err := cart.Install(nes.Mem); err != nil {
		return err
	}

	return nes.PowerOn()
}

// PowerOn puts the CPU into its power-on state and resets it. Internal RAM is
// randomised if the hardware.randstate preference is set. Cartridge space is
// left unchanged.
func (nes *NES) PowerOn() error {
	if nes.Prefs.RandomState.Get().(bool) {
		for a := range internalRAM {
			if err := nes.Mem.Write(uint16(a), uint8(nes.Prefs.RandSrc.IntN(0x100))); err != nil {
				return err
			}
		}
	} else {
		for a := range internalRAM {
			if err := nes.Mem.Write(uint16(a), 0); err != nil {
				return err
			}
		}
	}

	return nes.Executor.PowerOn(nes.CPU, nes.Mem)
}

// Reset emulates the reset switch on the console. Memory is unchanged.
func (nes *NES) Reset() error {
	return nes.Executor.Reset(nes.CPU, nes.Mem)
}

// Step executes a single CPU instruction.
func (nes *NES) Step() (execution.Result, error) {
	return nes.Executor.Step(nes.CPU, nes.Mem)
}

// StepWithDecode is the same as Step() except that the onDecode function is
// called after the instruction has been decoded and before it is executed.
func (nes *NES) StepWithDecode(onDecode func(execution.Decoded)) (execution.Result, error) {
	return nes.Executor.StepWithDecode(nes.CPU, nes.Mem, onDecode)
}
