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

package registers_test

import (
	"testing"

	"github.com/gophernes/gophernes/hardware/cpu/registers"
	"github.com/gophernes/gophernes/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "A")
	test.Equate(t, r.Value(), 0)
	test.Equate(t, r.IsZero(), true)

	r.Load(0x7f)
	test.Equate(t, r.IsNegative(), false)

	carry, overflow := r.Add(1, false)
	test.Equate(t, r.Value(), 0x80)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)
	test.Equate(t, r.IsNegative(), true)

	// wraparound produces carry
	r.Load(0xff)
	carry, overflow = r.Add(1, false)
	test.Equate(t, r.Value(), 0x00)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r.IsZero(), true)

	// subtract uses borrow-style carry
	r.Load(0x10)
	carry, _ = r.Subtract(0x01, true)
	test.Equate(t, r.Value(), 0x0f)
	test.Equate(t, carry, true)
}

func TestRegisterShifts(t *testing.T) {
	r := registers.NewRegister(0x81, "A")

	carry := r.ASL()
	test.Equate(t, r.Value(), 0x02)
	test.Equate(t, carry, true)

	carry = r.LSR()
	test.Equate(t, r.Value(), 0x01)
	test.Equate(t, carry, false)

	carry = r.ROR(true)
	test.Equate(t, r.Value(), 0x80)
	test.Equate(t, carry, true)

	carry = r.ROL(false)
	test.Equate(t, r.Value(), 0x00)
	test.Equate(t, carry, true)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xfffe)
	test.Equate(t, pc.Address(), 0xfffe)

	carry := pc.Add(1)
	test.Equate(t, pc.Address(), 0xffff)
	test.Equate(t, carry, false)

	carry = pc.Add(1)
	test.Equate(t, pc.Address(), 0x0000)
	test.Equate(t, carry, true)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.Equate(t, sr.Value(), 0x30)
	test.Equate(t, sr.String(), "nv-bdizc")

	sr.Carry = true
	sr.Negative = true
	test.Equate(t, sr.Value(), 0xb1)
	test.Equate(t, sr.String(), "Nv-bdizC")
}

func TestStatusRoundTrip(t *testing.T) {
	// every possible packed value unpacks and repacks without losing any of
	// the six real flags. bits 4 and 5 always read back as 1
	for v := 0; v <= 0xff; v++ {
		sr := registers.NewStatusRegister()
		sr.FromValue(uint8(v))
		test.Equate(t, sr.Value(), uint8(v)|0x30)
	}
}

func TestStatusBreakExcluded(t *testing.T) {
	sr := registers.NewStatusRegister()

	// the break flag never reaches the packed byte
	sr.Break = true
	test.Equate(t, sr.Value(), 0x30)

	// and unpacking never changes it
	sr.FromValue(0x00)
	test.Equate(t, sr.Break, true)
	sr.Break = false
	sr.FromValue(0xff)
	test.Equate(t, sr.Break, false)
}
