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

// Package registers implements the three register types of the 6502: the
// general purpose 8 bit Register (used for the accumulator, the index
// registers and the stack pointer), the 16 bit ProgramCounter and the
// StatusRegister.
//
// The types bound their values by construction. An 8 bit register can never
// hold a value outside of [0, 255] and the status flags are named bool
// fields rather than loose integers.
package registers
