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

// Package assert is a helper package for the registers and cpu tests. It
// compares register values with the expected value without the test needing
// to know the type of register.
package assert

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
)

// Equate register with expected value. The expected value for the status
// register can be an int or a string of flags in the format of the
// StatusRegister.String() function.
func Equate(t *testing.T, register any, expected any) {
	t.Helper()

	switch r := register.(type) {
	case registers.Register:
		equateInt(t, r.Label(), int(r.Value()), expected)
	case *registers.Register:
		equateInt(t, r.Label(), int(r.Value()), expected)
	case registers.ProgramCounter:
		equateInt(t, r.Label(), int(r.Address()), expected)
	case *registers.ProgramCounter:
		equateInt(t, r.Label(), int(r.Address()), expected)
	case registers.StackPointer:
		equateInt(t, r.Label(), int(r.Value()), expected)
	case *registers.StackPointer:
		equateInt(t, r.Label(), int(r.Value()), expected)
	case registers.StatusRegister:
		equateStatus(t, r, expected)
	case *registers.StatusRegister:
		equateStatus(t, *r, expected)
	default:
		t.Fatalf("assert failed (unsupported register type %T)", register)
	}
}

func equateInt(t *testing.T, label string, v int, expected any) {
	t.Helper()

	x, ok := expected.(int)
	if !ok {
		t.Fatalf("assert %s failed (unsupported expected type %T)", label, expected)
		return
	}
	if v != x {
		t.Errorf("assert %s failed (%#02x - wanted %#02x)", label, v, x)
	}
}

func equateStatus(t *testing.T, r registers.StatusRegister, expected any) {
	t.Helper()

	switch x := expected.(type) {
	case int:
		if int(r.Value()) != x {
			t.Errorf("assert %s failed (%#02x - wanted %#02x)", r.Label(), r.Value(), x)
		}
	case string:
		if r.String() != x {
			t.Errorf("assert %s failed (%s - wanted %s)", r.Label(), r, x)
		}
	default:
		t.Fatalf("assert %s failed (unsupported expected type %T)", r.Label(), expected)
	}
}
