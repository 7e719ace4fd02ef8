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

package instructions

// GetDefinitions returns the table of instruction definitions for the 6502,
// indexed by opcode byte. Entries for undocumented opcodes are nil.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 256)

	add := func(opcode uint8, operator Operator, mode AddressingMode, bytes int, cycles int) {
		defs[opcode] = &Definition{
			OpCode:         opcode,
			Operator:       operator,
			AddressingMode: mode,
			Bytes:          bytes,
			Cycles:         cycles,
		}
	}

	add(0x69, Adc, Immediate, 2, 2)
	add(0x65, Adc, ZeroPage, 2, 3)
	add(0x75, Adc, ZeroPageIndexedX, 2, 4)
	add(0x6d, Adc, Absolute, 3, 4)
	add(0x7d, Adc, AbsoluteIndexedX, 3, 4)
	add(0x79, Adc, AbsoluteIndexedY, 3, 4)
	add(0x61, Adc, IndexedIndirect, 2, 6)
	add(0x71, Adc, IndirectIndexed, 2, 5)

	add(0x29, And, Immediate, 2, 2)
	add(0x25, And, ZeroPage, 2, 3)
	add(0x35, And, ZeroPageIndexedX, 2, 4)
	add(0x2d, And, Absolute, 3, 4)
	add(0x3d, And, AbsoluteIndexedX, 3, 4)
	add(0x39, And, AbsoluteIndexedY, 3, 4)
	add(0x21, And, IndexedIndirect, 2, 6)
	add(0x31, And, IndirectIndexed, 2, 5)

	add(0x0a, Asl, Accumulator, 1, 2)
	add(0x06, Asl, ZeroPage, 2, 5)
	add(0x16, Asl, ZeroPageIndexedX, 2, 6)
	add(0x0e, Asl, Absolute, 3, 6)
	add(0x1e, Asl, AbsoluteIndexedX, 3, 7)

	add(0x90, Bcc, Relative, 2, 2)
	add(0xb0, Bcs, Relative, 2, 2)
	add(0xf0, Beq, Relative, 2, 2)
	add(0x30, Bmi, Relative, 2, 2)
	add(0xd0, Bne, Relative, 2, 2)
	add(0x10, Bpl, Relative, 2, 2)
	add(0x50, Bvc, Relative, 2, 2)
	add(0x70, Bvs, Relative, 2, 2)

	add(0x24, Bit, ZeroPage, 2, 3)
	add(0x2c, Bit, Absolute, 3, 4)

	add(0x00, Brk, Implied, 1, 7)

	add(0x18, Clc, Implied, 1, 2)
	add(0xd8, Cld, Implied, 1, 2)
	add(0x58, Cli, Implied, 1, 2)
	add(0xb8, Clv, Implied, 1, 2)

	add(0xc9, Cmp, Immediate, 2, 2)
	add(0xc5, Cmp, ZeroPage, 2, 3)
	add(0xd5, Cmp, ZeroPageIndexedX, 2, 4)
	add(0xcd, Cmp, Absolute, 3, 4)
	add(0xdd, Cmp, AbsoluteIndexedX, 3, 4)
	add(0xd9, Cmp, AbsoluteIndexedY, 3, 4)
	add(0xc1, Cmp, IndexedIndirect, 2, 6)
	add(0xd1, Cmp, IndirectIndexed, 2, 5)

	add(0xe0, Cpx, Immediate, 2, 2)
	add(0xe4, Cpx, ZeroPage, 2, 3)
	add(0xec, Cpx, Absolute, 3, 4)

	add(0xc0, Cpy, Immediate, 2, 2)
	add(0xc4, Cpy, ZeroPage, 2, 3)
	add(0xcc, Cpy, Absolute, 3, 4)

	add(0xc6, Dec, ZeroPage, 2, 5)
	add(0xd6, Dec, ZeroPageIndexedX, 2, 6)
	add(0xce, Dec, Absolute, 3, 6)
	add(0xde, Dec, AbsoluteIndexedX, 3, 7)

	add(0xca, Dex, Implied, 1, 2)
	add(0x88, Dey, Implied, 1, 2)

	add(0x49, Eor, Immediate, 2, 2)
	add(0x45, Eor, ZeroPage, 2, 3)
	add(0x55, Eor, ZeroPageIndexedX, 2, 4)
	add(0x4d, Eor, Absolute, 3, 4)
	add(0x5d, Eor, AbsoluteIndexedX, 3, 4)
	add(0x59, Eor, AbsoluteIndexedY, 3, 4)
	add(0x41, Eor, IndexedIndirect, 2, 6)
	add(0x51, Eor, IndirectIndexed, 2, 5)

	add(0xe6, Inc, ZeroPage, 2, 5)
	add(0xf6, Inc, ZeroPageIndexedX, 2, 6)
	add(0xee, Inc, Absolute, 3, 6)
	add(0xfe, Inc, AbsoluteIndexedX, 3, 7)

	add(0xe8, Inx, Implied, 1, 2)
	add(0xc8, Iny, Implied, 1, 2)

	add(0x4c, Jmp, Absolute, 3, 3)
	add(0x6c, Jmp, Indirect, 3, 5)

	add(0x20, Jsr, Absolute, 3, 6)

	add(0xa9, Lda, Immediate, 2, 2)
	add(0xa5, Lda, ZeroPage, 2, 3)
	add(0xb5, Lda, ZeroPageIndexedX, 2, 4)
	add(0xad, Lda, Absolute, 3, 4)
	add(0xbd, Lda, AbsoluteIndexedX, 3, 4)
	add(0xb9, Lda, AbsoluteIndexedY, 3, 4)
	add(0xa1, Lda, IndexedIndirect, 2, 6)
	add(0xb1, Lda, IndirectIndexed, 2, 5)

	add(0xa2, Ldx, Immediate, 2, 2)
	add(0xa6, Ldx, ZeroPage, 2, 3)
	add(0xb6, Ldx, ZeroPageIndexedY, 2, 4)
	add(0xae, Ldx, Absolute, 3, 4)
	add(0xbe, Ldx, AbsoluteIndexedY, 3, 4)

	add(0xa0, Ldy, Immediate, 2, 2)
	add(0xa4, Ldy, ZeroPage, 2, 3)
	add(0xb4, Ldy, ZeroPageIndexedX, 2, 4)
	add(0xac, Ldy, Absolute, 3, 4)
	add(0xbc, Ldy, AbsoluteIndexedX, 3, 4)

	add(0x4a, Lsr, Accumulator, 1, 2)
	add(0x46, Lsr, ZeroPage, 2, 5)
	add(0x56, Lsr, ZeroPageIndexedX, 2, 6)
	add(0x4e, Lsr, Absolute, 3, 6)
	add(0x5e, Lsr, AbsoluteIndexedX, 3, 7)

	add(0xea, Nop, Implied, 1, 2)

	add(0x09, Ora, Immediate, 2, 2)
	add(0x05, Ora, ZeroPage, 2, 3)
	add(0x15, Ora, ZeroPageIndexedX, 2, 4)
	add(0x0d, Ora, Absolute, 3, 4)
	add(0x1d, Ora, AbsoluteIndexedX, 3, 4)
	add(0x19, Ora, AbsoluteIndexedY, 3, 4)
	add(0x01, Ora, IndexedIndirect, 2, 6)
	add(0x11, Ora, IndirectIndexed, 2, 5)

	add(0x48, Pha, Implied, 1, 3)
	add(0x08, Php, Implied, 1, 3)
	add(0x68, Pla, Implied, 1, 4)
	add(0x28, Plp, Implied, 1, 4)

	add(0x2a, Rol, Accumulator, 1, 2)
	add(0x26, Rol, ZeroPage, 2, 5)
	add(0x36, Rol, ZeroPageIndexedX, 2, 6)
	add(0x2e, Rol, Absolute, 3, 6)
	add(0x3e, Rol, AbsoluteIndexedX, 3, 7)

	add(0x6a, Ror, Accumulator, 1, 2)
	add(0x66, Ror, ZeroPage, 2, 5)
	add(0x76, Ror, ZeroPageIndexedX, 2, 6)
	add(0x6e, Ror, Absolute, 3, 6)
	add(0x7e, Ror, AbsoluteIndexedX, 3, 7)

	add(0x40, Rti, Implied, 1, 6)
	add(0x60, Rts, Implied, 1, 6)

	add(0xe9, Sbc, Immediate, 2, 2)
	add(0xe5, Sbc, ZeroPage, 2, 3)
	add(0xf5, Sbc, ZeroPageIndexedX, 2, 4)
	add(0xed, Sbc, Absolute, 3, 4)
	add(0xfd, Sbc, AbsoluteIndexedX, 3, 4)
	add(0xf9, Sbc, AbsoluteIndexedY, 3, 4)
	add(0xe1, Sbc, IndexedIndirect, 2, 6)
	add(0xf1, Sbc, IndirectIndexed, 2, 5)

	add(0x38, Sec, Implied, 1, 2)
	add(0xf8, Sed, Implied, 1, 2)
	add(0x78, Sei, Implied, 1, 2)

	add(0x85, Sta, ZeroPage, 2, 3)
	add(0x95, Sta, ZeroPageIndexedX, 2, 4)
	add(0x8d, Sta, Absolute, 3, 4)
	add(0x9d, Sta, AbsoluteIndexedX, 3, 5)
	add(0x99, Sta, AbsoluteIndexedY, 3, 5)
	add(0x81, Sta, IndexedIndirect, 2, 6)
	add(0x91, Sta, IndirectIndexed, 2, 6)

	add(0x86, Stx, ZeroPage, 2, 3)
	add(0x96, Stx, ZeroPageIndexedY, 2, 4)
	add(0x8e, Stx, Absolute, 3, 4)

	add(0x84, Sty, ZeroPage, 2, 3)
	add(0x94, Sty, ZeroPageIndexedX, 2, 4)
	add(0x8c, Sty, Absolute, 3, 4)

	add(0xaa, Tax, Implied, 1, 2)
	add(0xa8, Tay, Implied, 1, 2)
	add(0xba, Tsx, Implied, 1, 2)
	add(0x8a, Txa, Implied, 1, 2)
	add(0x9a, Txs, Implied, 1, 2)
	add(0x98, Tya, Implied, 1, 2)

	return defs
}
