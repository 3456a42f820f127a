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

package conditions_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/conditions"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/test"
)

type mockMem map[uint16]uint8

func (mem mockMem) Peek(address uint16) (uint8, bool) {
	v, ok := mem[address]
	return v, ok
}

func machine() (*cpu.CPU, mockMem) {
	mc := cpu.NewCPU()
	mc.A.Load(0x10)
	mc.X.Load(0x20)
	mc.SP.Load(0xfd)
	mc.PC.Load(0xc5f5)
	mc.Status.Zero = true
	mc.Cycles = 7
	return mc, mockMem{0x0002: 0x42}
}

func check(t *testing.T, expression string, expected bool) {
	t.Helper()
	mc, mem := machine()
	cnd, err := conditions.NewCondition(expression)
	test.DemandSuccess(t, err)
	defer cnd.Close()
	test.ExpectEquality(t, cnd.String(), expression)

	v, err := cnd.Check(mc, mem)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, expected, expression)
}

func TestRegisters(t *testing.T) {
	check(t, "A == 0x10", true)
	check(t, "A == 0x11", false)
	check(t, "X == 32 and Y == 0", true)
	check(t, "SP == 0xfd", true)
	check(t, "PC == 0xc5f5", true)
	check(t, "cycles > 6", true)
}

func TestFlags(t *testing.T) {
	check(t, "Z", true)
	check(t, "C", false)
	check(t, "PC == 0xc5f5 and Z and not S", true)

	// unused bit is always set in the status value
	check(t, "P == 0x22", true)
}

func TestPeek(t *testing.T) {
	check(t, "peek(0x0002) == 0x42", true)
	check(t, "peek(0x2002) == nil", true)
	check(t, "peek(0x10000) == nil", true)
}

func TestTruth(t *testing.T) {
	check(t, "nil", false)
	check(t, "false", false)
	check(t, "0", true)
	check(t, "string.format('%02x', A) == '10'", true)
}

func TestErrors(t *testing.T) {
	_, err := conditions.NewCondition("")
	test.ExpectEquality(t, curated.Is(err, conditions.CompileError), true)

	_, err = conditions.NewCondition("A ==")
	test.ExpectEquality(t, curated.Is(err, conditions.CompileError), true)

	// os library is not available
	cnd, err := conditions.NewCondition("os.exit()")
	test.DemandSuccess(t, err)
	defer cnd.Close()

	mc, mem := machine()
	_, err = cnd.Check(mc, mem)
	test.ExpectEquality(t, curated.Is(err, conditions.EvaluationError), true)
}
