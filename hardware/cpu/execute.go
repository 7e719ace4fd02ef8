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

package cpu

import (
	"github.com/gophernes/gophernes/hardware/cpu/instructions"
	"github.com/gophernes/gophernes/hardware/cpubus"
)

// operand is the resolved operand of an instruction. for immediate
// addressing the operand is the value itself; for every other mode it is an
// effective address. the address is wide enough to hold the
// cpubus.Accumulator sentinel.
type operand struct {
	address   uint32
	value     uint8
	immediate bool
}

// resolve turns the raw operand bytes into an effective address (or an
// immediate value) according to the instruction's addressing mode. the
// program counter has already been advanced past the instruction, which is
// what relative addressing requires.
func (mc *CPU) resolve(defn *instructions.Definition, args [2]uint8) operand {
	switch defn.AddressingMode {
	case instructions.Implied:
		return operand{}

	case instructions.Accumulator:
		return operand{address: cpubus.Accumulator}

	case instructions.Immediate:
		return operand{value: args[0], immediate: true}

	case instructions.Relative:
		target := int32(mc.PC.Address()) + int32(int8(args[0]))
		return operand{address: uint32(uint16(target))}

	case instructions.Absolute:
		return operand{address: uint32(args[1])<<8 | uint32(args[0])}

	case instructions.ZeroPage:
		return operand{address: uint32(args[0])}

	case instructions.Indirect:
		indirect := uint16(args[1])<<8 | uint16(args[0])

		// the 6502 does not cross a page boundary when reading the high
		// byte of the vector
		lo := mc.Read(uint32(indirect))
		var hi uint8
		if indirect&0x00ff == 0x00ff {
			hi = mc.Read(uint32(indirect & 0xff00))
		} else {
			hi = mc.Read(uint32(indirect) + 1)
		}
		return operand{address: uint32(hi)<<8 | uint32(lo)}

	case instructions.IndexedIndirect:
		zp := args[0] + mc.X.Value()
		lo := mc.Read(uint32(zp))
		hi := mc.Read(uint32(zp + 1))
		return operand{address: uint32(hi)<<8 | uint32(lo)}

	case instructions.IndirectIndexed:
		lo := mc.Read(uint32(args[0]))
		hi := mc.Read(uint32(args[0] + 1))
		base := uint16(hi)<<8 | uint16(lo)
		return operand{address: uint32(base + uint16(mc.Y.Value()))}

	case instructions.AbsoluteIndexedX:
		base := uint16(args[1])<<8 | uint16(args[0])
		return operand{address: uint32(base + uint16(mc.X.Value()))}

	case instructions.AbsoluteIndexedY:
		base := uint16(args[1])<<8 | uint16(args[0])
		return operand{address: uint32(base + uint16(mc.Y.Value()))}

	case instructions.ZeroPageIndexedX:
		return operand{address: uint32(args[0] + mc.X.Value())}

	case instructions.ZeroPageIndexedY:
		return operand{address: uint32(args[0] + mc.Y.Value())}
	}

	return operand{}
}

// value dereferences the operand.
func (mc *CPU) value(op operand) uint8 {
	if op.immediate {
		return op.value
	}
	return mc.Read(op.address)
}

// branch loads the program counter with the branch target if the condition
// holds.
func (mc *CPU) branch(condition bool, op operand) {
	if condition {
		mc.PC.Load(uint16(op.address))
	}
}

// execute performs the instruction. flag changes use the register types in
// the registers sub-package wherever the operation maps onto them.
//
// the NES variant of the 6502 has no decimal mode. the decimal flag can be
// set and cleared but ADC and SBC always work in binary.
func (mc *CPU) execute(defn *instructions.Definition, op operand) {
	switch defn.Operator {
	case instructions.Adc:
		carry, overflow := mc.A.Add(mc.value(op), mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Sbc:
		carry, overflow := mc.A.Subtract(mc.value(op), mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.And:
		mc.A.AND(mc.value(op))
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Ora:
		mc.A.ORA(mc.value(op))
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Eor:
		mc.A.EOR(mc.value(op))
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Asl:
		mc.acc8.Load(mc.value(op))
		mc.Status.Carry = mc.acc8.ASL()
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Negative = mc.acc8.IsNegative()
		mc.Write(op.address, mc.acc8.Value())

	case instructions.Lsr:
		mc.acc8.Load(mc.value(op))
		mc.Status.Carry = mc.acc8.LSR()
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Negative = mc.acc8.IsNegative()
		mc.Write(op.address, mc.acc8.Value())

	case instructions.Rol:
		mc.acc8.Load(mc.value(op))
		mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Negative = mc.acc8.IsNegative()
		mc.Write(op.address, mc.acc8.Value())

	case instructions.Ror:
		mc.acc8.Load(mc.value(op))
		mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Negative = mc.acc8.IsNegative()
		mc.Write(op.address, mc.acc8.Value())

	case instructions.Inc:
		mc.acc8.Load(mc.value(op) + 1)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Negative = mc.acc8.IsNegative()
		mc.Write(op.address, mc.acc8.Value())

	case instructions.Dec:
		mc.acc8.Load(mc.value(op) - 1)
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Negative = mc.acc8.IsNegative()
		mc.Write(op.address, mc.acc8.Value())

	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Negative = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Negative = mc.Y.IsNegative()

	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Negative = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Negative = mc.Y.IsNegative()

	case instructions.Cmp:
		mc.acc8.Load(mc.A.Value())
		carry, _ := mc.acc8.Subtract(mc.value(op), true)
		mc.Status.Carry = carry
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Negative = mc.acc8.IsNegative()

	case instructions.Cpx:
		mc.acc8.Load(mc.X.Value())
		carry, _ := mc.acc8.Subtract(mc.value(op), true)
		mc.Status.Carry = carry
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Negative = mc.acc8.IsNegative()

	case instructions.Cpy:
		mc.acc8.Load(mc.Y.Value())
		carry, _ := mc.acc8.Subtract(mc.value(op), true)
		mc.Status.Carry = carry
		mc.Status.Zero = mc.acc8.IsZero()
		mc.Status.Negative = mc.acc8.IsNegative()

	case instructions.Bit:
		mc.acc8.Load(mc.value(op))
		mc.Status.Negative = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Lda:
		mc.A.Load(mc.value(op))
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Ldx:
		mc.X.Load(mc.value(op))
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Negative = mc.X.IsNegative()

	case instructions.Ldy:
		mc.Y.Load(mc.value(op))
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Negative = mc.Y.IsNegative()

	case instructions.Sta:
		mc.Write(op.address, mc.A.Value())

	case instructions.Stx:
		mc.Write(op.address, mc.X.Value())

	case instructions.Sty:
		mc.Write(op.address, mc.Y.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Negative = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Negative = mc.Y.IsNegative()

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Negative = mc.X.IsNegative()

	case instructions.Txs:
		// does not affect status flags
		mc.SP.Load(mc.X.Value())

	case instructions.Pha:
		mc.PushStack(mc.A.Value())

	case instructions.Pla:
		mc.A.Load(mc.PullStack())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Negative = mc.A.IsNegative()

	case instructions.Php:
		mc.PushStack(mc.Status.Value())

	case instructions.Plp:
		mc.Status.FromValue(mc.PullStack())

	case instructions.Jmp:
		mc.PC.Load(uint16(op.address))

	case instructions.Jsr:
		// the return address pushed is the address of the last byte of the
		// JSR instruction. RTS compensates
		ret := mc.PC.Address() - 1
		mc.PushStack(uint8(ret >> 8))
		mc.PushStack(uint8(ret))
		mc.PC.Load(uint16(op.address))

	case instructions.Rts:
		lo := mc.PullStack()
		hi := mc.PullStack()
		mc.PC.Load((uint16(hi)<<8 | uint16(lo)) + 1)

	case instructions.Brk:
		ret := mc.PC.Address() + 1
		mc.PushStack(uint8(ret >> 8))
		mc.PushStack(uint8(ret))
		mc.PushStack(mc.Status.Value())
		mc.Status.Break = true
		mc.Status.InterruptDisable = true
		lo := mc.Read(uint32(cpubus.IRQ))
		hi := mc.Read(uint32(cpubus.IRQ) + 1)
		mc.PC.Load(uint16(hi)<<8 | uint16(lo))

	case instructions.Rti:
		mc.Status.FromValue(mc.PullStack())
		mc.Status.Break = false
		lo := mc.PullStack()
		hi := mc.PullStack()
		mc.PC.Load(uint16(hi)<<8 | uint16(lo))

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, op)
	case instructions.Bcs:
		mc.branch(mc.Status.Carry, op)
	case instructions.Bne:
		mc.branch(!mc.Status.Zero, op)
	case instructions.Beq:
		mc.branch(mc.Status.Zero, op)
	case instructions.Bpl:
		mc.branch(!mc.Status.Negative, op)
	case instructions.Bmi:
		mc.branch(mc.Status.Negative, op)
	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, op)
	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, op)

	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Cld:
		mc.Status.Decimal = false
	case instructions.Sed:
		mc.Status.Decimal = true
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Sei:
		mc.Status.InterruptDisable = true
	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Nop:
		// does nothing
	}
}
