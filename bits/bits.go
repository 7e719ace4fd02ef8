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

// Package bits collects the bit twiddling primitives used throughout the
// emulation. Every function is stateless and allocation free. Results are
// exact for operand widths up to 32 bits.
package bits

// Get returns the nth bit of value. The result is always 0 or 1.
func Get(value uint32, n uint) uint32 {
	return (value >> n) & 1
}

// GetRange returns the bits of value in the range [n, n+len).
func GetRange(value uint32, n uint, len uint) uint32 {
	return (value >> n) & ((1 << len) - 1)
}

// CopyRange copies len bits of mask, starting at maskOffset, into value
// starting at valueOffset. Bits of value outside the target range are
// unaffected.
func CopyRange(mask uint32, value uint32, maskOffset uint, valueOffset uint, len uint) uint32 {
	for i := uint(0); i < len; i++ {
		if Get(mask, maskOffset+i) == 0 {
			value &= ^(1 << (valueOffset + i))
		} else {
			value |= 1 << (valueOffset + i)
		}
	}
	return value
}

// Reverse returns value with its lowest numBits bits in reverse order. Bits
// above numBits do not appear in the result.
func Reverse(value uint32, numBits uint) uint32 {
	var r uint32
	for i := uint(0); i < numBits; i++ {
		r |= Get(value, i) << (numBits - i - 1)
	}
	return r
}

// Wrap folds value into the inclusive range [lower, upper] by repeated
// addition or subtraction of the range width. A value already inside the
// range is returned unchanged.
func Wrap(value int, lower int, upper int) int {
	for value > upper {
		value -= upper - lower + 1
	}
	for value < lower {
		value += upper - lower + 1
	}
	return value
}
