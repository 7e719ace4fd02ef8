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

// Package clocks defines the constant values that describe the speed of the
// clocks in the NTSC NES console. Every other clock in the console derives
// from the master clock: the CPU runs at a twelfth of the master clock, the
// PPU at a quarter of it and the APU at half the CPU rate.
package clocks

// clock rates in Hz.
const (
	Master = 21477272

	CPU = Master / 12
	PPU = Master / 4
	APU = CPU / 2
)
