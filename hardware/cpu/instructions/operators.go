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

package instructions

// Operator is the operation performed by an instruction. Different opcodes
// can have the same operator with a different addressing mode.
type Operator int

// List of valid Operator values. Undocumented operators are in upper case.
const (
	Nil Operator = iota

	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// undocumented
	AHX
	ALR
	ANC
	ARR
	AXS
	DCP
	ISC
	KIL
	LAS
	LAX
	LXA
	RLA
	RRA
	SAX
	SHX
	SHY
	SLO
	SRE
	TAS
	XAA
)

var operatorNames = map[Operator]string{
	Adc: "ADC", And: "AND", Asl: "ASL", Bcc: "BCC", Bcs: "BCS", Beq: "BEQ",
	Bit: "BIT", Bmi: "BMI", Bne: "BNE", Bpl: "BPL", Brk: "BRK", Bvc: "BVC",
	Bvs: "BVS", Clc: "CLC", Cld: "CLD", Cli: "CLI", Clv: "CLV", Cmp: "CMP",
	Cpx: "CPX", Cpy: "CPY", Dec: "DEC", Dex: "DEX", Dey: "DEY", Eor: "EOR",
	Inc: "INC", Inx: "INX", Iny: "INY", Jmp: "JMP", Jsr: "JSR", Lda: "LDA",
	Ldx: "LDX", Ldy: "LDY", Lsr: "LSR", Nop: "NOP", Ora: "ORA", Pha: "PHA",
	Php: "PHP", Pla: "PLA", Plp: "PLP", Rol: "ROL", Ror: "ROR", Rti: "RTI",
	Rts: "RTS", Sbc: "SBC", Sec: "SEC", Sed: "SED", Sei: "SEI", Sta: "STA",
	Stx: "STX", Sty: "STY", Tax: "TAX", Tay: "TAY", Tsx: "TSX", Txa: "TXA",
	Txs: "TXS", Tya: "TYA",

	AHX: "AHX", ALR: "ALR", ANC: "ANC", ARR: "ARR", AXS: "AXS", DCP: "DCP",
	ISC: "ISC", KIL: "KIL", LAS: "LAS", LAX: "LAX", LXA: "LXA", RLA: "RLA",
	RRA: "RRA", SAX: "SAX", SHX: "SHX", SHY: "SHY", SLO: "SLO", SRE: "SRE",
	TAS: "TAS", XAA: "XAA",
}

// alternative names for undocumented operators found in other opcode tables
var operatorAliases = map[string]Operator{
	"ISB": ISC,
	"ASR": ALR,
	"SBX": AXS,
}

var operatorLookup map[string]Operator

func init() {
	operatorLookup = make(map[string]Operator, len(operatorNames)+len(operatorAliases))
	for o, n := range operatorNames {
		operatorLookup[n] = o
	}
	for n, o := range operatorAliases {
		operatorLookup[n] = o
	}
}

func (o Operator) String() string {
	if n, ok := operatorNames[o]; ok {
		return n
	}
	return "???"
}

// IsUndocumented returns true if the operator only exists as an undocumented
// instruction. Undocumented versions of NOP and SBC are legal operators.
func (o Operator) IsUndocumented() bool {
	return o >= AHX
}

// OperatorFromMnemonic returns the Operator for the mnemonic. The mnemonic
// should be upper case and without the asterisk marking undocumented opcodes.
func OperatorFromMnemonic(mnemonic string) (Operator, bool) {
	o, ok := operatorLookup[mnemonic]
	return o, ok
}
