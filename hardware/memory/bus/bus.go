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

package bus

import (
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
)

// Sentinal error patterns.
const (
	AccessViolation = "bus: access violation: %s region at %#04x"
	LoadOverrun     = "bus: load overrun: %d bytes at %#04x"
)

// Size of the address space.
const Size = 0x10000

// Region identifies the area of the memory map an address belongs to.
type Region int

// List of valid Region values.
const (
	RAM Region = iota
	PPU
	APU
	Cartridge
)

func (r Region) String() string {
	switch r {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case APU:
		return "APU"
	case Cartridge:
		return "cartridge"
	}
	return fmt.Sprintf("region(%d)", int(r))
}

// Implemented returns true if the region can be accessed through the bus.
func (r Region) Implemented() bool {
	return r == RAM || r == Cartridge
}

// Resolve maps an address to its primary mirror and returns the region it
// belongs to. The first matching range wins.
func Resolve(address uint16) (uint16, Region) {
	switch {
	case address <= 0x1fff:
		return address & 0x07ff, RAM
	case address <= 0x3fff:
		return address, PPU
	case address <= 0x401f:
		return address, APU
	}
	return address, Cartridge
}

// Bus is the 64KB address space of the NES.
type Bus struct {
	data [Size]uint8
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) resolve(address uint16) (uint16, error) {
	ma, region := Resolve(address)
	if !region.Implemented() {
		return 0, curated.Errorf(AccessViolation, region, address)
	}
	return ma, nil
}

// Read implements the cpubus.Memory interface.
func (b *Bus) Read(address uint16) (uint8, error) {
	ma, err := b.resolve(address)
	if err != nil {
		return 0, err
	}
	return b.data[ma], nil
}

// Read16 reads two consecutive bytes and returns them as a little-endian
// 16 bit value. Each byte is resolved separately so a read that straddles a
// region boundary will fail if either half is in an unimplemented region. The
// second address wraps around from $FFFF to $0000.
func (b *Bus) Read16(address uint16) (uint16, error) {
	lo, err := b.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := b.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Write implements the cpubus.Memory interface.
func (b *Bus) Write(address uint16, data uint8) error {
	ma, err := b.resolve(address)
	if err != nil {
		return err
	}
	b.data[ma] = data
	return nil
}

// Write16 writes a 16 bit value to two consecutive addresses, low byte first.
// Both addresses are resolved before either byte is written so a failed write
// leaves memory unchanged.
func (b *Bus) Write16(address uint16, data uint16) error {
	lo, err := b.resolve(address)
	if err != nil {
		return err
	}
	hi, err := b.resolve(address + 1)
	if err != nil {
		return err
	}
	b.data[lo] = uint8(data)
	b.data[hi] = uint8(data >> 8)
	return nil
}

// Peek reads a byte without the possibility of an error. Addresses in an
// unimplemented region return zero and false.
func (b *Bus) Peek(address uint16) (uint8, bool) {
	ma, region := Resolve(address)
	if !region.Implemented() {
		return 0, false
	}
	return b.data[ma], true
}

// Load copies data into the backing store starting at origin. Address
// resolution is not applied. Data that would extend past the end of the
// address space is rejected and nothing is written.
func (b *Bus) Load(origin int, data []byte) error {
	if origin < 0 || origin+len(data) > Size {
		return curated.Errorf(LoadOverrun, len(data), origin)
	}
	copy(b.data[origin:], data)
	return nil
}

// Clear sets every byte in the address space to zero.
func (b *Bus) Clear() {
	clear(b.data[:])
}
