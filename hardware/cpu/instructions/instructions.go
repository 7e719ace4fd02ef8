// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.

// Package instructions defines every documented opcode of the 6502 as found
// in the NES. The table returned by GetDefinitions() is indexed directly by
// opcode byte - there is no hashing or name lookup on the decode path.
// Undocumented opcodes are nil entries.
package instructions

import "fmt"

// AddressingMode describes the method by which an instruction receives the
// data on which it operates.
type AddressingMode int

// The addressing modes used by the documented instruction set.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute
	ZeroPage
	Indirect // indirect addressing (with no indexing) is only for JMP

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "implied"
	case Accumulator:
		return "accumulator"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	case ZeroPage:
		return "zero page"
	case Indirect:
		return "indirect"
	case IndexedIndirect:
		return "(indirect,X)"
	case IndirectIndexed:
		return "(indirect),Y"
	case AbsoluteIndexedX:
		return "absolute,X"
	case AbsoluteIndexedY:
		return "absolute,Y"
	case ZeroPageIndexedX:
		return "zero page,X"
	case ZeroPageIndexedY:
		return "zero page,Y"
	}
	return "unknown addressing mode"
}

// Operator is the instruction, divorced from addressing mode and cycle
// count. One Operator can appear in many Definitions.
type Operator int

// The documented instruction set.
const (
	Adc Operator = iota
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
)

func (o Operator) String() string {
	if int(o) < 0 || int(o) >= len(mnemonics) {
		return "???"
	}
	return mnemonics[o]
}

var mnemonics = []string{
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL",
	"BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY",
	"DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR", "LDA",
	"LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
}

// Definition describes one opcode of the instruction set.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode

	// Bytes is the total length of the instruction, including the opcode
	// byte. the operand count is therefore Bytes-1
	Bytes int

	// Cycles is the declared cycle cost of the instruction
	Cycles int
}

// Mnemonic returns the assembly language name of the instruction.
func (defn Definition) Mnemonic() string {
	return defn.Operator.String()
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s %s +%dbytes (%d cycles)",
		defn.OpCode, defn.Mnemonic(), defn.AddressingMode, defn.Bytes, defn.Cycles)
}

// IsBranch returns true if the instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative
}
