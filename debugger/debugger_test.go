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

package debugger_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger"
	"github.com/jetsetilly/gophernes/debugger/conditions"
	"github.com/jetsetilly/gophernes/debugger/terminal/plainterm"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/test"
)

// program counts X down from five and then jams the CPU
var program = []uint8{
	0xa2, 0x05, // LDX #$05
	0xca,       // DEX
	0xd0, 0xfd, // BNE $C002
	0x02, // KIL
}

func newNES(t *testing.T) *hardware.NES {
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

func session(t *testing.T, nes *hardware.NES, opts debugger.Options, input string) string {
	t.Helper()

	out := &strings.Builder{}
	dbg, err := debugger.NewDebugger(nes, plainterm.NewPlainTerminal(strings.NewReader(input), out), opts)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(context.Background()))

	return out.String()
}

func TestStepping(t *testing.T) {
	nes := newNES(t)
	out := session(t, nes, debugger.Options{}, "s\n\nr\nq\n")

	test.ExpectEquality(t, strings.Contains(out, "C000  A2 05     LDX #$05"), true)
	test.ExpectEquality(t, strings.Contains(out, "C002  CA        DEX"), true)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc003))
	test.ExpectEquality(t, nes.CPU.X.Value(), uint8(4))
}

func TestContinue(t *testing.T) {
	nes := newNES(t)
	out := session(t, nes, debugger.Options{Break: "X == 2"}, "s\ns\nc\nq\n")

	test.ExpectEquality(t, strings.Contains(out, "break condition (X == 2) after 4 instructions"), true)
	test.ExpectEquality(t, nes.CPU.X.Value(), uint8(2))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc003))
}

func TestEndOfInput(t *testing.T) {
	nes := newNES(t)
	session(t, nes, debugger.Options{}, "s")
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc002))
}

func TestUnknownCommand(t *testing.T) {
	nes := newNES(t)
	out := session(t, nes, debugger.Options{}, "x\nq\n")
	test.ExpectEquality(t, strings.Contains(out, "unknown command (x)"), true)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc000))
}

func TestJammedWithDump(t *testing.T) {
	nes := newNES(t)
	fn := filepath.Join(t.TempDir(), "crash.dot")
	out := session(t, nes, debugger.Options{Dump: fn}, "c\ns\nq\n")

	test.ExpectEquality(t, strings.Contains(out, "* cpu: jammed by opcode 0x02 at 0xc005"), true)
	test.ExpectEquality(t, strings.Contains(out, "CPU state written to "+fn), true)
	test.ExpectEquality(t, nes.CPU.Killed, true)

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(b), "digraph"), true)
}

func TestBadCondition(t *testing.T) {
	nes := newNES(t)

	_, err := debugger.NewDebugger(nes, plainterm.NewPlainTerminal(strings.NewReader(""), &strings.Builder{}), debugger.Options{Break: "X =="})
	test.DemandFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, conditions.CompileError), true)

	out := session(t, nes, debugger.Options{Break: "nosuch.value"}, "c\nq\n")
	test.ExpectEquality(t, strings.Contains(out, "conditions: evaluate 'nosuch.value'"), true)
}
