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

package registers

import "strings"

// StatusRegister is the special purpose register that stores the flags of
// the CPU. The named bool fields enforce the single-bit invariant by
// construction.
//
// The Break flag is part of the CPU state but is not part of the packed
// status byte. See Value() and FromValue().
type StatusRegister struct {
	Negative         bool
	Overflow         bool
	Break            bool
	Decimal          bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Negative {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}

	s.WriteRune('-')

	if sr.Break {
		s.WriteRune('B')
	} else {
		s.WriteRune('b')
	}
	if sr.Decimal {
		s.WriteRune('D')
	} else {
		s.WriteRune('d')
	}
	if sr.InterruptDisable {
		s.WriteRune('I')
	} else {
		s.WriteRune('i')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset status flags to initial state. The Break flag is cleared too even
// though it does not participate in the packed byte.
func (sr *StatusRegister) Reset() {
	*sr = StatusRegister{}
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack. Bits 4 and 5 are always 1 in the packed byte. The Break
// flag never participates.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Carry {
		v |= 0x01
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Decimal {
		v |= 0x08
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Negative {
		v |= 0x80
	}

	// bits 4 and 5 are hardwired
	v |= 0x30

	return v
}

// FromValue converts an 8 bit value (taken from the stack, for example) to
// the StatusRegister struct receiver. Bits 4 and 5 of the value are ignored,
// as is required of the unpacking. The Break flag is left untouched.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Carry = v&0x01 == 0x01
	sr.Zero = v&0x02 == 0x02
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Decimal = v&0x08 == 0x08
	sr.Overflow = v&0x40 == 0x40
	sr.Negative = v&0x80 == 0x80
}
