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

package instructions_test

import (
	"testing"

	"github.com/gophernes/gophernes/hardware/cpu/instructions"
	"github.com/gophernes/gophernes/test"
)

func TestTableCoverage(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.Equate(t, len(defs), 256)

	// the 6502 has 151 documented opcodes
	count := 0
	for i, defn := range defs {
		if defn == nil {
			continue
		}
		count++

		// the table index and the embedded opcode must agree
		test.Equate(t, defn.OpCode, i)

		// every documented instruction is between 1 and 3 bytes long and
		// takes between 2 and 7 cycles
		if defn.Bytes < 1 || defn.Bytes > 3 {
			t.Errorf("bad byte count for %s", defn)
		}
		if defn.Cycles < 2 || defn.Cycles > 7 {
			t.Errorf("bad cycle count for %s", defn)
		}
	}
	test.Equate(t, count, 151)
}

func TestOperandCounts(t *testing.T) {
	defs := instructions.GetDefinitions()

	for _, defn := range defs {
		if defn == nil {
			continue
		}

		// operand count is a function of the addressing mode
		operands := defn.Bytes - 1
		switch defn.AddressingMode {
		case instructions.Implied, instructions.Accumulator:
			test.Equate(t, operands, 0)
		case instructions.Absolute, instructions.Indirect,
			instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
			test.Equate(t, operands, 2)
		default:
			test.Equate(t, operands, 1)
		}
	}
}

func TestDefinitionString(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.Equate(t, defs[0xa9].Mnemonic(), "LDA")
	test.Equate(t, defs[0xa9].String(), "a9 LDA immediate +2bytes (2 cycles)")
	test.Equate(t, defs[0xd0].IsBranch(), true)
	test.Equate(t, defs[0x4c].IsBranch(), false)
}
