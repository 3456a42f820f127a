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

package performance_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/performance"
	"github.com/jetsetilly/gophernes/test"
)

// newNES creates a NES with the program at $c000
func newNES(t *testing.T, program ...uint8) *hardware.NES {
	t.Helper()

	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	nes, err := hardware.NewNES(p)
	test.DemandSuccess(t, err)

	prg := make([]byte, cartridgeloader.PRGBankSize)
	copy(prg, program)
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0xc0

	cl := cartridgeloader.NewLoader("test.nes")
	cl.Data = append([]byte{'N', 'E', 'S', 0x1a, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, prg...)
	test.DemandSuccess(t, nes.AttachCartridge(cl))

	return nes
}

func TestCheck(t *testing.T) {
	// JMP $C000
	nes := newNES(t, 0x4c, 0x00, 0xc0)

	out := &strings.Builder{}
	test.ExpectSuccess(t, performance.Check(context.Background(), out, performance.ProfileNone, nes, 1000))
	test.ExpectEquality(t, strings.Contains(out.String(), "(1000 instructions, 3000 cycles"), true)

	test.ExpectFailure(t, performance.Check(context.Background(), out, performance.ProfileNone, nes, 0))
}

func TestCheckJammed(t *testing.T) {
	// NOP, KIL
	nes := newNES(t, 0xea, 0x02)

	out := &strings.Builder{}
	test.ExpectFailure(t, performance.Check(context.Background(), out, performance.ProfileNone, nes, 1000))
	test.ExpectEquality(t, strings.Contains(out.String(), "(1 instructions, 2 cycles"), true)
}

func TestProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU)

	p, err = performance.ParseProfileString("CPU, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfileString("trace")
	test.ExpectFailure(t, err)
}

func TestCalcIPS(t *testing.T) {
	test.ExpectEquality(t, performance.CalcIPS(1000, 2.0), 500.0)
	test.ExpectEquality(t, performance.CalcIPS(1000, 0), 0.0)
}
