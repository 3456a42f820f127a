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

// Package preferences collates the preference values that affect how the
// emulated hardware behaves.
package preferences

import (
	"math/rand/v2"
	"time"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware package.
type Preferences struct {
	dsk *prefs.Disk

	// execute the undocumented (illegal) opcodes. if false then an
	// undocumented opcode will halt execution with an error
	Undocumented prefs.Bool

	// initialise internal RAM to random values on power on. the NES does not
	// clear memory on power on but most software does not rely on any
	// particular value
	RandomState prefs.Bool

	// include the CYC field in trace output
	TraceCycles prefs.Bool

	// maximum number of instructions to execute in the RUN and TRACE modes. a
	// value of zero means no limit
	StepLimit prefs.Int

	// random values generated in the hardware package should use the
	// following number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed uint64
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path argument means the default prefs file in
// the resource directory.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.Reseed(0)

	var err error

	if pth == "" {
		pth, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("cpu.undocumented", &p.Undocumented); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.randstate", &p.RandomState); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("trace.cycles", &p.TraceCycles); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("run.steplimit", &p.StepLimit); err != nil {
		return nil, err
	}

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults sets all hardware preferences to the default values. The values
// are not saved to disk.
func (p *Preferences) SetDefaults() error {
	if err := p.dsk.Reset(); err != nil {
		return err
	}
	return p.Undocumented.Set(true)
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed uint64) {
	if seed == 0 {
		p.RandSeed = uint64(time.Now().UnixNano())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewPCG(p.RandSeed, p.RandSeed>>1))
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
