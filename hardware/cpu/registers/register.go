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

package registers

import (
	"fmt"
)

// Register is the type used for the A, X and Y registers.
type Register struct {
	label string
	value uint8
}

// NewRegister creates a new register with a name and initial value.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%02X", r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the current value of the register as a uint16. Useful for
// when the register is used as a zero page address.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsNegative checks the sign bit of the register
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero checks if register is zero
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsBitV returns the state of the second MSB
func (r Register) IsBitV() bool {
	return r.value&0x40 == 0x40
}

// Load value into register
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register with carry. Returns carry and overflow states.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, overflow bool) {
	v := r.value

	sum := uint16(v) + uint16(val)
	if carry {
		sum++
	}
	r.value = uint8(sum)

	// overflow if both operands have the same sign and the sign of the result
	// is different
	overflow = ^(v^val)&(v^r.value)&0x80 != 0

	return sum > 0xff, overflow
}

// Subtract value from register with borrow. The carry flag is the inverse of
// the borrow, so a carry value of false subtracts an additional one. Returns
// carry and overflow states.
func (r *Register) Subtract(val uint8, carry bool) (rcarry bool, overflow bool) {
	v := r.value

	diff := int16(v) - int16(val)
	if !carry {
		diff--
	}
	r.value = uint8(diff)

	// overflow if the operands have different signs and the sign of the result
	// is different to the register's original sign
	overflow = (v^val)&(v^r.value)&0x80 != 0

	return diff >= 0, overflow
}

// Compare value with the register without changing the register. Returns the
// carry, zero and sign states.
func (r Register) Compare(val uint8) (carry bool, zero bool, sign bool) {
	d := r.value - val
	return r.value >= val, d == 0, d&0x80 == 0x80
}

// AND value with register
func (r *Register) AND(val uint8) {
	r.value &= val
}

// EOR (exclusive or) value with register
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// ORA (non-exclusive or) value with register
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// ASL (arithmetic shift left) shifts register one bit to the left. Returns
// the most significant bit as it was before the shift.
func (r *Register) ASL() bool {
	carry := r.IsNegative()
	r.value <<= 1
	return carry
}

// LSR (logical shift right) shifts register one bit to the right. Returns the
// least significant bit as it was before the shift.
func (r *Register) LSR() bool {
	carry := r.value&1 == 1
	r.value >>= 1
	return carry
}

// ROL rotates register 1 bit to the left. Returns new carry status.
func (r *Register) ROL(carry bool) bool {
	rcarry := r.IsNegative()
	r.value <<= 1
	if carry {
		r.value |= 1
	}
	return rcarry
}

// ROR rotates register 1 bit to the right. Returns new carry status.
func (r *Register) ROR(carry bool) bool {
	rcarry := r.value&1 == 1
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}
