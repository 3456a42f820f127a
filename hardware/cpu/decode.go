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

package cpu

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
)

// FetchAndDecode reads the opcode at the PC and resolves the addressing mode
// of the instruction. On success the opcode is placed in the
// InstructionRegister and the PC is advanced by exactly one. The operand bytes
// are skipped over by Execute().
//
// On error the CPU is not changed.
func (ex *Executor) FetchAndDecode(mc *CPU, mem cpubus.Memory) (execution.Decoded, error) {
	origin := mc.PC.Address()

	opcode, err := mem.Read(origin)
	if err != nil {
		return execution.Decoded{}, curated.Errorf(FetchError, origin, err)
	}

	defn := ex.table.Lookup(opcode)
	if defn == nil {
		return execution.Decoded{}, curated.Errorf(UnexpectedOpcode, opcode, "nil", origin)
	}

	d := execution.Decoded{
		Origin: origin,
		Defn:   defn,
	}

	err = ex.decode(mc, mem, &d)
	if err != nil {
		if curated.Is(err, UnexpectedAddressMode) {
			return execution.Decoded{}, err
		}
		return execution.Decoded{}, curated.Errorf(StepError, opcode, origin, err)
	}

	mc.InstructionRegister = opcode
	mc.PC.Add(1)

	return d, nil
}

func (ex *Executor) decode(mc *CPU, mem cpubus.Memory, d *execution.Decoded) error {
	defn := d.Defn

	// operand bytes
	if defn.Bytes > 1 {
		v, err := mem.Read(d.Origin + 1)
		if err != nil {
			return err
		}
		d.ValueInit = execution.NewValue(v)
	}
	if defn.Bytes > 2 {
		v, err := mem.Read(d.Origin + 2)
		if err != nil {
			return err
		}
		d.ValueIntermediate = execution.NewValue(v)
	}
	operand, _ := d.Operand()

	// the address from which the final value is read
	var address uint16

	switch defn.AddressingMode {
	case instructions.Accumulator:
		return nil

	case instructions.Implied:
		return nil

	case instructions.Immediate:
		address = d.Origin + 1

	case instructions.Absolute:
		address = operand

	case instructions.AbsoluteX:
		d.AddrInit = execution.NewAddress(operand)
		address = operand + mc.X.Address()
		d.PageCrossed = address&0xff00 != operand&0xff00

	case instructions.AbsoluteY:
		d.AddrInit = execution.NewAddress(operand)
		address = operand + mc.Y.Address()
		d.PageCrossed = address&0xff00 != operand&0xff00

	case instructions.ZeroPage:
		address = operand & 0x00ff

	case instructions.ZeroPageX:
		d.AddrInit = execution.NewAddress(operand)
		address = zeroPageIndex(d, uint8(operand), mc.X.Value())

	case instructions.ZeroPageY:
		d.AddrInit = execution.NewAddress(operand)
		address = zeroPageIndex(d, uint8(operand), mc.Y.Value())

	case instructions.Indirect:
		d.AddrIntermediate = execution.NewAddress(operand)

		// the high byte of the pointer is not incremented when reading the
		// second byte of the target address
		lo, err := mem.Read(operand)
		if err != nil {
			return err
		}
		hi, err := mem.Read(operand&0xff00 | uint16(uint8(operand)+1))
		if err != nil {
			return err
		}
		if operand&0x00ff == 0x00ff {
			d.CPUBug = execution.JmpIndirectAddressingBug
		}

		d.AddrFinal = execution.NewAddress(uint16(hi)<<8 | uint16(lo))

		// no value is resolved for indirect addressing
		return nil

	case instructions.IndexedIndirect: // x indexing
		zp := uint8(operand)
		d.AddrInit = execution.NewAddress(uint16(zp))

		ptr := zp + mc.X.Value()
		d.AddrIntermediate = execution.NewAddress(uint16(ptr))

		var err error
		address, err = readZeroPage16(mem, d, ptr)
		if err != nil {
			return err
		}

	case instructions.IndirectIndexed: // y indexing
		zp := uint8(operand)
		d.AddrInit = execution.NewAddress(uint16(zp))

		base, err := readZeroPage16(mem, d, zp)
		if err != nil {
			return err
		}
		d.AddrIntermediate = execution.NewAddress(base)

		address = base + mc.Y.Address()
		d.PageCrossed = address&0xff00 != base&0xff00

	case instructions.Relative:
		offset := uint8(operand)
		d.ValueFinal = execution.NewValue(offset)

		// branch target is relative to the instruction following the branch
		next := d.Origin + 2
		target := next + uint16(offset)
		if offset >= 0x80 {
			target -= 0x100
		}
		d.AddrFinal = execution.NewAddress(target)
		d.PageCrossed = target&0xff00 != next&0xff00

		return nil

	default:
		return curated.Errorf(UnexpectedAddressMode, defn.AddressingMode, defn.OpCode, d.Origin)
	}

	d.AddrFinal = execution.NewAddress(address)

	v, err := mem.Read(address)
	if err != nil {
		return err
	}
	d.ValueFinal = execution.NewValue(v)

	return nil
}

// zeroPageIndex adds the index to the zero page address. the result never
// leaves page zero
func zeroPageIndex(d *execution.Decoded, zp uint8, idx uint8) uint16 {
	if uint16(zp)+uint16(idx) > 0xff {
		d.CPUBug = execution.ZeroPageIndexBug
	}
	return uint16(zp + idx)
}

// readZeroPage16 reads a 16 bit pointer from page zero. a pointer at $ff
// takes its high byte from $00
func readZeroPage16(mem cpubus.Memory, d *execution.Decoded, zp uint8) (uint16, error) {
	lo, err := mem.Read(uint16(zp))
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(uint16(zp + 1))
	if err != nil {
		return 0, err
	}
	if zp == 0xff {
		d.CPUBug = execution.ZeroPagePointerBug
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
