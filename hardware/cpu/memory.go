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
	"github.com/gophernes/gophernes/bits"
)

// Read returns the byte at the address. Addresses are wider than 16 bits so
// that the cpubus.Accumulator sentinel can sit outside the addressable
// range; the sentinel makes read-modify-write instructions work identically
// in accumulator and memory addressing modes.
func (mc *CPU) Read(address uint32) uint8 {
	switch {
	case address <= 0x1fff:
		return mc.ram[bits.GetRange(address, 0, 11)]
	case address <= 0x3fff:
		return mc.bus.ReadPPURegister(0x2000 + uint16(bits.GetRange(address, 0, 3)))
	case address <= 0x4013:
		// APU channel registers are write-only
		return 0
	case address == 0x4014:
		return mc.bus.ReadPPURegister(uint16(address))
	case address == 0x4015:
		// APU status reads are not supported
		return 0
	case address <= 0x4017:
		return mc.bus.ReadController(uint16(address))
	case address <= 0x401f:
		// CPU test mode registers. disabled on production hardware
		return 0
	case address <= 0xffff:
		return mc.bus.ReadMapper(uint16(address))
	}
	return mc.A.Value()
}

// Write stores the byte at the address. See the commentary for the Read()
// function for why addresses are wider than 16 bits.
func (mc *CPU) Write(address uint32, data uint8) {
	switch {
	case address <= 0x1fff:
		mc.ram[bits.GetRange(address, 0, 11)] = data
	case address <= 0x3fff:
		mc.bus.WritePPURegister(0x2000+uint16(bits.GetRange(address, 0, 3)), data)
	case address <= 0x4013:
		mc.bus.WriteAPUChannel(uint16(address), data)
	case address == 0x4014:
		mc.StartDMA(data)
	case address == 0x4015:
		mc.bus.WriteAPU(uint16(address), data)
	case address == 0x4016:
		mc.bus.WriteController(uint16(address), data)
	case address == 0x4017:
		// the address is shared between the APU frame counter and the
		// second controller port. both see the write
		mc.bus.WriteAPU(uint16(address), data)
		mc.bus.WriteController(uint16(address), data)
	case address <= 0x401f:
		// CPU test mode registers. disabled on production hardware
	case address <= 0xffff:
		mc.bus.WriteMapper(uint16(address), data)
	default:
		mc.A.Load(data)
	}
}

// PushStack writes a byte to the stack page and decrements the stack
// pointer. The stack pointer wraps inside the stack page.
func (mc *CPU) PushStack(data uint8) {
	mc.Write(0x0100+uint32(mc.SP.Address()), data)
	mc.SP.Load(mc.SP.Value() - 1)
}

// PullStack increments the stack pointer and returns the byte it now points
// at.
func (mc *CPU) PullStack() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.Read(0x0100 + uint32(mc.SP.Address()))
}

// PeekStack returns the byte most recently pushed onto the stack without
// moving the stack pointer.
func (mc *CPU) PeekStack() uint8 {
	return mc.Read(0x0100 + uint32(mc.SP.Value()+1))
}
