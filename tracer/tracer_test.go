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

package tracer_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/memory/bus"
	"github.com/jetsetilly/gophernes/test"
	"github.com/jetsetilly/gophernes/tracer"
)

// the first lines of the nestest reference log
const golden = `C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7
C5F5  A2 00     LDX #$00                        A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 30 CYC:10
C5F7  86 00     STX $00 = 00                    A:00 X:00 Y:00 P:26 SP:FD PPU:  0, 36 CYC:12
C5F9  86 10     STX $10 = 00                    A:00 X:00 Y:00 P:26 SP:FD PPU:  0, 45 CYC:15
C5FB  86 11     STX $11 = 00                    A:00 X:00 Y:00 P:26 SP:FD PPU:  0, 54 CYC:18
C5FD  20 2D C7  JSR $C72D                       A:00 X:00 Y:00 P:26 SP:FD PPU:  0, 63 CYC:21
C72D  EA        NOP                             A:00 X:00 Y:00 P:26 SP:FB PPU:  0, 84 CYC:27
C72E  38        SEC                             A:00 X:00 Y:00 P:26 SP:FB PPU:  0, 90 CYC:29
C72F  B0 04     BCS $C735                       A:00 X:00 Y:00 P:27 SP:FB PPU:  0, 96 CYC:31
`

type harness struct {
	ex  *cpu.Executor
	mc  *cpu.CPU
	mem *bus.Bus
	tr  *tracer.Tracer
	tab *instructions.Table
}

func newHarness(t *testing.T, origin uint16) *harness {
	t.Helper()

	tab, dbg, err := instructions.Default()
	test.DemandSuccess(t, err)

	h := &harness{
		ex:  cpu.NewExecutor(tab, true),
		mc:  cpu.NewCPU(),
		mem: bus.NewBus(),
		tr:  tracer.NewTracer(dbg),
		tab: tab,
	}
	test.DemandSuccess(t, h.mem.Write16(cpu.ResetVector, origin))
	test.DemandSuccess(t, h.ex.PowerOn(h.mc, h.mem))
	return h
}

// step the CPU and return the trace line
func (h *harness) step(t *testing.T) string {
	t.Helper()
	var line string
	_, err := h.ex.StepWithDecode(h.mc, h.mem, func(d execution.Decoded) {
		line = h.tr.Line(h.mc, d)
	})
	test.DemandSuccess(t, err)
	return line
}

func TestReferenceLog(t *testing.T) {
	h := newHarness(t, 0xc000)
	h.tr.Cycles = true

	test.DemandSuccess(t, h.mem.Load(0xc000, []byte{0x4c, 0xf5, 0xc5}))
	test.DemandSuccess(t, h.mem.Load(0xc5f5, []byte{0xa2, 0x00, 0x86, 0x00, 0x86, 0x10, 0x86, 0x11, 0x20, 0x2d, 0xc7}))
	test.DemandSuccess(t, h.mem.Load(0xc72d, []byte{0xea, 0x38, 0xb0, 0x04}))

	cmp := tracer.NewComparison(strings.NewReader(golden))

	expected := strings.Split(strings.TrimSpace(golden), "\n")
	for i := range expected {
		line := h.step(t)
		test.ExpectSuccess(t, cmp.Check(line))

		// the cycle count is at the end of the line in both logs
		_, cyc, _ := strings.Cut(expected[i], " CYC:")
		test.ExpectEquality(t, strings.HasSuffix(line, " CYC:"+cyc), true, line)
	}
	test.ExpectEquality(t, cmp.Lines(), len(expected))

	// the reference log has finished
	err := cmp.Check(h.step(t))
	test.ExpectEquality(t, curated.Is(err, tracer.GoldenFinished), true)
}

func TestMismatch(t *testing.T) {
	h := newHarness(t, 0xc000)

	// JMP $C5F6 is different to the reference log
	test.DemandSuccess(t, h.mem.Load(0xc000, []byte{0x4c, 0xf6, 0xc5}))

	cmp := tracer.NewComparison(strings.NewReader(golden))
	err := cmp.Check(h.step(t))
	test.ExpectEquality(t, curated.Is(err, tracer.Mismatch), true)
	test.ExpectEquality(t, cmp.Lines(), 0)
}

func TestOperands(t *testing.T) {
	h := newHarness(t, 0x0600)

	test.DemandSuccess(t, h.mem.Load(0x0080, []byte{0x00, 0x02}))
	test.DemandSuccess(t, h.mem.Load(0x0200, []byte{0x5a, 0x5b}))
	test.DemandSuccess(t, h.mem.Load(0x0600, []byte{
		0xa2, 0x01, // LDX #$01
		0xa1, 0x7f, // LDA ($7F,X)
		0xa0, 0x01, // LDY #$01
		0xb1, 0x80, // LDA ($80),Y
		0xbd, 0xff, 0x01, // LDA $01FF,X
		0xb5, 0x7f, // LDA $7F,X
		0x4a,             // LSR A
		0x6c, 0x80, 0x00, // JMP ($0080)
	}))

	expected := []string{
		"0600  A2 01     LDX #$01",
		"0602  A1 7F     LDA ($7F,X) @ 80 = 0200 = 5A",
		"0604  A0 01     LDY #$01",
		"0606  B1 80     LDA ($80),Y = 0200 @ 0201 = 5B",
		"0608  BD FF 01  LDA $01FF,X @ 0200 = 5A",
		"060B  B5 7F     LDA $7F,X @ 80 = 00",
		"060D  4A        LSR A",
		"060E  6C 80 00  JMP ($0080) = 0200",
	}

	for _, e := range expected {
		line := h.step(t)
		test.ExpectEquality(t, len(line) > 48, true)
		test.ExpectEquality(t, strings.TrimRight(line[:48], " "), e)
	}
	test.ExpectEquality(t, h.mc.PC.Address(), uint16(0x0200))
}

func TestDisassemble(t *testing.T) {
	h := newHarness(t, 0xc000)

	test.DemandSuccess(t, h.mem.Load(0xc000, []byte{
		0x4c, 0xf5, 0xc5, // JMP $C5F5
		0x04, 0xa9, // *NOP $A9
		0xd0, 0xfe, // BNE $C005
		0xea, // NOP
	}))

	lines := h.tr.Disassemble(h.tab, h.mem, 0xc000, 4)
	test.ExpectEquality(t, len(lines), 4)
	test.ExpectEquality(t, lines[0], "C000  4C F5 C5  JMP $C5F5")
	test.ExpectEquality(t, lines[1], "C003  04 A9    *NOP $A9")
	test.ExpectEquality(t, lines[2], "C005  D0 FE     BNE $C005")
	test.ExpectEquality(t, lines[3], "C007  EA        NOP")

	// the PPU region cannot be read
	lines = h.tr.Disassemble(h.tab, h.mem, 0x2000, 2)
	test.ExpectEquality(t, lines[0], "2000  ??")
	test.ExpectEquality(t, lines[1], "2001  ??")
}

func TestComparable(t *testing.T) {
	test.ExpectEquality(t, tracer.Comparable("C000  4C F5 C5  JMP $C5F5  A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7\r\n"),
		"C000  4C F5 C5  JMP $C5F5  A:00 X:00 Y:00 P:24 SP:FD")
	test.ExpectEquality(t, tracer.Comparable("A:00 X:00 Y:00 P:24 SP:FD"), "A:00 X:00 Y:00 P:24 SP:FD")
	test.ExpectEquality(t, tracer.Comparable("no registers"), "no registers")
}
