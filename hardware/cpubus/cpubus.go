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

// Package cpubus defines the contract between the CPU and the rest of the
// console. The CPU owns the 2KB of work RAM and the memory map; everything
// else it reaches through the Bus interface. The hardware package implements
// Bus but any substitute will do, which is how the cpu package tests work.
package cpubus

// Bus is the CPU's window onto the other components of the console. Memory
// accesses that resolve to a collaborator are forwarded through these
// functions.
type Bus interface {
	// PPU registers. the address is the primary register address in the
	// range [0x2000, 0x2007], or 0x4014 for a read of the OAM DMA port
	ReadPPURegister(address uint16) uint8
	WritePPURegister(address uint16, data uint8)

	// cartridge space. returns the open bus value if no cartridge is
	// attached
	ReadMapper(address uint16) uint8
	WriteMapper(address uint16, data uint8)

	// controller port
	ReadController(address uint16) uint8
	WriteController(address uint16, data uint8)

	// APU status/frame-counter registers and channel memory
	WriteAPU(address uint16, data uint8)
	WriteAPUChannel(address uint16, data uint8)

	// one byte of an OAM DMA transfer
	WriteOAM(data uint8)
}

// The interrupt vectors of the 6502. Each is the address of the LSB of a 16
// bit address, stored little-endian.
const (
	NMI   uint16 = 0xfffa
	Reset uint16 = 0xfffc
	IRQ   uint16 = 0xfffe
)

// Accumulator is the sentinel address used for accumulator-mode operands.
// Reads and writes to this address access the accumulator directly. It sits
// just above the 16 bit address space so it can never collide with a real
// address.
const Accumulator uint32 = 0x10000
