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

// Package cpu implements the 6502 variant found in the NES console. The CPU
// owns the console's work RAM and its internal memory map routes every other
// access through the cpubus.Bus interface.
//
// The CPU advances one cycle at a time through the Step() function. A single
// instruction spans several cycles; the instruction's effects are applied in
// full on the first cycle and the remaining cycles are idle. Coarser than
// the real hardware but accurate in aggregate.
//
// An OAM DMA transfer, triggered by a write to address 0x4014, suspends
// instruction processing until 256 bytes have been forwarded to the OAM
// write port. A pending NMI is serviced only at instruction boundaries.
package cpu
