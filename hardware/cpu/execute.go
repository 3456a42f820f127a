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
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/logger"
)

// Execute performs the operation of a decoded instruction. The PC is advanced
// past the operand bytes of the instruction unless the instruction changes
// the flow of the program.
//
// The CPU is only changed if the instruction completes without error. The
// exception is the KIL instruction, which sets the Killed field and returns a
// Jammed error.
func (ex *Executor) Execute(mc *CPU, mem cpubus.Memory, d execution.Decoded) (execution.Result, error) {
	defn := d.Defn

	res := execution.Result{
		Address:   d.Origin,
		Defn:      defn,
		ByteCount: defn.Bytes,
		Cycles:    defn.Cycles,
		CPUBug:    d.CPUBug,
	}

	if defn.Undocumented && !ex.undocumented {
		return res, curated.Errorf(UnexpectedOpcode, defn.OpCode, defn.Mnemonic(), d.Origin)
	}

	value, hasValue := d.ValueFinal.Get()
	address, hasAddress := d.AddrFinal.Get()

	// the decoding must have resolved the operand required by the operator
	var resolved bool
	switch defn.Operator.Operand() {
	case instructions.OperandValue:
		resolved = hasValue
	case instructions.OperandStore, instructions.OperandJump, instructions.OperandBranch:
		resolved = hasAddress
	case instructions.OperandModify:
		resolved = defn.AddressingMode == instructions.Accumulator || (hasValue && hasAddress)
	default:
		resolved = true
	}
	if !resolved {
		return res, curated.Errorf(UnexpectedAddressMode, defn.AddressingMode, defn.OpCode, d.Origin)
	}

	// all work is done on a copy of the CPU which is committed at the end of
	// the function
	n := *mc

	// whether the PC should be moved past the operand bytes
	advance := true

	var err error

	// branch to the decoded address if the condition is true
	branch := func(condition bool) {
		if !condition {
			return
		}
		n.PC.Load(address)
		advance = false
		res.Branched = true
		res.Cycles += defn.PageCycles
		if d.PageCrossed {
			res.PageFault = true
			res.Cycles++
		}
	}

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		n.Status.InterruptDisable = false

	case instructions.Sei:
		n.Status.InterruptDisable = true

	case instructions.Clc:
		n.Status.Carry = false

	case instructions.Sec:
		n.Status.Carry = true

	case instructions.Cld:
		n.Status.DecimalMode = false

	case instructions.Sed:
		// the flag can be set but the 2A03 has no decimal mode
		n.Status.DecimalMode = true

	case instructions.Clv:
		n.Status.Overflow = false

	case instructions.Pha:
		err = n.push(mem, n.A.Value())

	case instructions.Pla:
		value, err = n.pull(mem)
		n.A.Load(value)
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.Php:
		err = n.push(mem, n.Status.PushValue())

	case instructions.Plp:
		value, err = n.pull(mem)
		n.Status.LoadPulled(value)

	case instructions.Txa:
		n.A.Load(n.X.Value())
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.Tax:
		n.X.Load(n.A.Value())
		n.Status.Zero = n.X.IsZero()
		n.Status.Sign = n.X.IsNegative()

	case instructions.Tay:
		n.Y.Load(n.A.Value())
		n.Status.Zero = n.Y.IsZero()
		n.Status.Sign = n.Y.IsNegative()

	case instructions.Tya:
		n.A.Load(n.Y.Value())
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.Tsx:
		n.X.Load(n.SP.Value())
		n.Status.Zero = n.X.IsZero()
		n.Status.Sign = n.X.IsNegative()

	case instructions.Txs:
		n.SP.Load(n.X.Value())
		// does not affect status register

	case instructions.Eor:
		n.A.EOR(value)
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.Ora:
		n.A.ORA(value)
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.And:
		n.A.AND(value)
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.Lda:
		n.A.Load(value)
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.Ldx:
		n.X.Load(value)
		n.Status.Zero = n.X.IsZero()
		n.Status.Sign = n.X.IsNegative()

	case instructions.Ldy:
		n.Y.Load(value)
		n.Status.Zero = n.Y.IsZero()
		n.Status.Sign = n.Y.IsNegative()

	case instructions.Sta:
		err = mem.Write(address, n.A.Value())

	case instructions.Stx:
		err = mem.Write(address, n.X.Value())

	case instructions.Sty:
		err = mem.Write(address, n.Y.Value())

	case instructions.Inx:
		n.X.Load(n.X.Value() + 1)
		n.Status.Zero = n.X.IsZero()
		n.Status.Sign = n.X.IsNegative()

	case instructions.Iny:
		n.Y.Load(n.Y.Value() + 1)
		n.Status.Zero = n.Y.IsZero()
		n.Status.Sign = n.Y.IsNegative()

	case instructions.Dex:
		n.X.Load(n.X.Value() - 1)
		n.Status.Zero = n.X.IsZero()
		n.Status.Sign = n.X.IsNegative()

	case instructions.Dey:
		n.Y.Load(n.Y.Value() - 1)
		n.Status.Zero = n.Y.IsZero()
		n.Status.Sign = n.Y.IsNegative()

	case instructions.Asl:
		_, err = n.modify(mem, d, func(r *registers.Register) {
			n.Status.Carry = r.ASL()
		})

	case instructions.Lsr:
		_, err = n.modify(mem, d, func(r *registers.Register) {
			n.Status.Carry = r.LSR()
		})

	case instructions.Rol:
		_, err = n.modify(mem, d, func(r *registers.Register) {
			n.Status.Carry = r.ROL(n.Status.Carry)
		})

	case instructions.Ror:
		_, err = n.modify(mem, d, func(r *registers.Register) {
			n.Status.Carry = r.ROR(n.Status.Carry)
		})

	case instructions.Inc:
		_, err = n.modify(mem, d, func(r *registers.Register) {
			r.Load(r.Value() + 1)
		})

	case instructions.Dec:
		_, err = n.modify(mem, d, func(r *registers.Register) {
			r.Load(r.Value() - 1)
		})

	case instructions.Adc:
		n.Status.Carry, n.Status.Overflow = n.A.Add(value, n.Status.Carry)
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.Sbc:
		n.Status.Carry, n.Status.Overflow = n.A.Subtract(value, n.Status.Carry)
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.Cmp:
		n.Status.Carry, n.Status.Zero, n.Status.Sign = n.A.Compare(value)

	case instructions.Cpx:
		n.Status.Carry, n.Status.Zero, n.Status.Sign = n.X.Compare(value)

	case instructions.Cpy:
		n.Status.Carry, n.Status.Zero, n.Status.Sign = n.Y.Compare(value)

	case instructions.Bit:
		r := registers.NewRegister(value, "M")
		n.Status.Zero = n.A.Value()&value == 0
		n.Status.Overflow = r.IsBitV()
		n.Status.Sign = r.IsNegative()

	case instructions.Jmp:
		n.PC.Load(address)
		advance = false

	case instructions.Bcc:
		branch(!n.Status.Carry)

	case instructions.Bcs:
		branch(n.Status.Carry)

	case instructions.Beq:
		branch(n.Status.Zero)

	case instructions.Bmi:
		branch(n.Status.Sign)

	case instructions.Bne:
		branch(!n.Status.Zero)

	case instructions.Bpl:
		branch(!n.Status.Sign)

	case instructions.Bvc:
		branch(!n.Status.Overflow)

	case instructions.Bvs:
		branch(n.Status.Overflow)

	case instructions.Jsr:
		// the PC is pointing at the first operand byte. the address pushed
		// onto the stack is the address of the last byte of the instruction
		err = n.push16(mem, n.PC.Address()+1)
		n.PC.Load(address)
		advance = false

	case instructions.Rts:
		var rtsAddress uint16
		rtsAddress, err = n.pull16(mem)
		n.PC.Load(rtsAddress + 1)
		advance = false

	case instructions.Brk:
		// the byte following the BRK opcode is skipped over on return
		err = n.push16(mem, n.PC.Address()+1)
		if err != nil {
			break // switch
		}
		err = n.push(mem, n.Status.PushValue())
		if err != nil {
			break // switch
		}
		n.Status.InterruptDisable = true

		var brkAddress uint16
		brkAddress, err = read16(mem, BreakVector)
		n.PC.Load(brkAddress)
		advance = false

	case instructions.Rti:
		value, err = n.pull(mem)
		if err != nil {
			break // switch
		}
		n.Status.LoadPulled(value)

		var rtiAddress uint16
		rtiAddress, err = n.pull16(mem)
		// unlike RTS there is no need to add one to return address
		n.PC.Load(rtiAddress)
		advance = false

	// undocumented instructions

	case instructions.LAX:
		n.A.Load(value)
		n.X.Load(value)
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.SAX:
		r := n.A
		r.AND(n.X.Value())
		err = mem.Write(address, r.Value())

	case instructions.DCP:
		// decrease value...
		value, err = n.modify(mem, d, func(r *registers.Register) {
			r.Load(r.Value() - 1)
		})

		// ... and compare with the A register
		n.Status.Carry, n.Status.Zero, n.Status.Sign = n.A.Compare(value)

	case instructions.ISC:
		// increase value...
		value, err = n.modify(mem, d, func(r *registers.Register) {
			r.Load(r.Value() + 1)
		})

		// ... and subtract from the A register
		n.Status.Carry, n.Status.Overflow = n.A.Subtract(value, n.Status.Carry)
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.SLO:
		value, err = n.modify(mem, d, func(r *registers.Register) {
			n.Status.Carry = r.ASL()
		})
		n.A.ORA(value)
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.RLA:
		value, err = n.modify(mem, d, func(r *registers.Register) {
			n.Status.Carry = r.ROL(n.Status.Carry)
		})
		n.A.AND(value)
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.SRE:
		value, err = n.modify(mem, d, func(r *registers.Register) {
			n.Status.Carry = r.LSR()
		})
		n.A.EOR(value)
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.RRA:
		value, err = n.modify(mem, d, func(r *registers.Register) {
			n.Status.Carry = r.ROR(n.Status.Carry)
		})
		n.Status.Carry, n.Status.Overflow = n.A.Add(value, n.Status.Carry)
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.ANC:
		// immediate AND. puts bit 7 into the carry flag (in microcode terms
		// this is as though ASL had been enacted)
		n.A.AND(value)
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()
		n.Status.Carry = n.Status.Sign

	case instructions.ALR:
		n.A.AND(value)

		// ... then LSR the result
		n.Status.Carry = n.A.LSR()
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

	case instructions.ARR:
		n.A.AND(value)
		n.A.ROR(n.Status.Carry)
		n.Status.Zero = n.A.IsZero()
		n.Status.Sign = n.A.IsNegative()

		// carry and overflow come from bits 6 and 5 of the result
		n.Status.Carry = n.A.IsBitV()
		n.Status.Overflow = n.A.IsBitV() != (n.A.Value()&0x20 == 0x20)

	case instructions.AXS:
		r := n.A
		r.AND(n.X.Value())

		// axs subtract behaves like CMP as far as the flags are concerned
		n.Status.Carry, n.Status.Zero, n.Status.Sign = r.Compare(value)
		n.X.Load(r.Value() - value)

	case instructions.LAS:
		r := registers.NewRegister(n.SP.Value(), "SP")
		r.AND(value)
		n.SP.Load(r.Value())
		n.A.Load(r.Value())
		n.X.Load(r.Value())
		n.Status.Zero = r.IsZero()
		n.Status.Sign = r.IsNegative()

	case instructions.KIL:
		mc.Killed = true
		logger.Logf(logger.Allow, "CPU", "KIL instruction (%#04x)", d.Origin)
		return res, curated.Errorf(Jammed, defn.OpCode, d.Origin)

	default:
		return res, curated.Errorf(UnexpectedOpcode, defn.OpCode, defn.Mnemonic(), d.Origin)
	}

	if err != nil {
		return res, curated.Errorf(StepError, defn.OpCode, d.Origin, err)
	}

	if advance {
		n.PC.Add(uint16(defn.Bytes - 1))
	}

	// extra cycles for page sensitive instructions. branches have been
	// dealt with already
	if !defn.IsBranch() && defn.PageSensitive() && d.PageCrossed {
		res.PageFault = true
		res.Cycles += defn.PageCycles
	}

	// finalise result
	res.Final = true
	n.Cycles += res.Cycles
	n.LastResult = res

	// validity check. there's no need to enable unless you've just added a new
	// opcode and wanting to check the validity of the definition.
	// err = res.IsValid()
	// if err != nil {
	// 	return res, err
	// }

	*mc = n

	return res, nil
}

// modify applies the function to the accumulator or to the value in memory,
// depending on the addressing mode. The Zero and Sign flags are set according
// to the result, which is also returned.
func (mc *CPU) modify(mem cpubus.Memory, d execution.Decoded, f func(r *registers.Register)) (uint8, error) {
	if d.Defn.AddressingMode == instructions.Accumulator {
		f(&mc.A)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()
		return mc.A.Value(), nil
	}

	value, ok := d.ValueFinal.Get()
	if !ok {
		return 0, curated.Errorf(UnexpectedAddressMode, d.Defn.AddressingMode, d.Defn.OpCode, d.Origin)
	}
	address, ok := d.AddrFinal.Get()
	if !ok {
		return 0, curated.Errorf(UnexpectedAddressMode, d.Defn.AddressingMode, d.Defn.OpCode, d.Origin)
	}

	r := registers.NewRegister(value, "M")
	f(&r)
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()

	return r.Value(), mem.Write(address, r.Value())
}
