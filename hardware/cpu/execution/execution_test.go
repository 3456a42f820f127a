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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/test"
)

func TestOptional(t *testing.T) {
	var a execution.Address
	_, ok := a.Get()
	test.ExpectEquality(t, ok, false)
	test.ExpectEquality(t, a.String(), "----")

	a = execution.NewAddress(0)
	v, ok := a.Get()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, v, uint16(0))
	test.ExpectEquality(t, a.String(), "0000")

	var b execution.Value
	test.ExpectEquality(t, b.IsSet(), false)
	test.ExpectEquality(t, b.String(), "--")
	b = execution.NewValue(0xab)
	test.ExpectEquality(t, b.IsSet(), true)
	test.ExpectEquality(t, b.String(), "AB")
}

func TestOperand(t *testing.T) {
	d := execution.Decoded{
		ValueInit:         execution.NewValue(0xf5),
		ValueIntermediate: execution.NewValue(0xc5),
	}
	v, ok := d.Operand()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, v, uint16(0xc5f5))

	d = execution.Decoded{ValueInit: execution.NewValue(0x10)}
	v, ok = d.Operand()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, v, uint16(0x0010))
}

func TestValidity(t *testing.T) {
	tab, _, err := instructions.Default()
	test.DemandSuccess(t, err)

	// LDA abs,X
	defn := tab.Lookup(0xbd)

	r := execution.Result{Defn: defn, ByteCount: 3, Cycles: 4}
	test.ExpectFailure(t, r.IsValid())

	r.Final = true
	test.ExpectSuccess(t, r.IsValid())

	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 5
	test.ExpectSuccess(t, r.IsValid())

	r.ByteCount = 2
	test.ExpectFailure(t, r.IsValid())

	// STA abs,X is not page sensitive
	r = execution.Result{Defn: tab.Lookup(0x9d), ByteCount: 3, Cycles: 5, Final: true, PageFault: true}
	test.ExpectFailure(t, r.IsValid())

	// BNE
	r = execution.Result{Defn: tab.Lookup(0xd0), ByteCount: 2, Cycles: 2, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.Branched = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 3
	test.ExpectSuccess(t, r.IsValid())
	r.PageFault = true
	r.Cycles = 4
	test.ExpectSuccess(t, r.IsValid())
}
