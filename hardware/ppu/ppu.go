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

// Package ppu implements the picture processing unit of the NES console.
// The implementation concentrates on the parts of the chip the CPU can
// observe: the eight registers, OAM, the VRAM address latch and the
// vertical blank interrupt.
package ppu

import (
	"fmt"

	"github.com/gophernes/gophernes/hardware/memory/cartridge"
)

// dimensions of the PPU frame. every scanline is dotsPerScanline dots long
// and a frame is scanlinesPerFrame scanlines, including the vertical blank
// period and the pre-render scanline.
const (
	dotsPerScanline   = 341
	scanlinesPerFrame = 262

	vblankScanline    = 241
	prerenderScanline = 261
)

// register addresses, as seen by the CPU.
const (
	RegCtrl    = 0x2000
	RegMask    = 0x2001
	RegStatus  = 0x2002
	RegOAMAddr = 0x2003
	RegOAMData = 0x2004
	RegScroll  = 0x2005
	RegAddr    = 0x2006
	RegData    = 0x2007
)

// Cartridge is the PPU's view of the cartridge port.
type Cartridge interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, data uint8)
	Mirror() cartridge.Mirror
}

// PPU implements the picture processing unit.
type PPU struct {
	cart Cartridge

	// called at the start of the vertical blank when the interrupt is
	// enabled in the control register
	raiseNMI func()

	ctrl    uint8
	mask    uint8
	status  uint8
	oamAddr uint8

	oam       [256]uint8
	nametable [2048]uint8
	palette   [32]uint8

	// the scroll and address registers share a single write latch. the
	// latch is false when the next write is the first of the pair
	latch    bool
	vramAddr uint16
	scrollX  uint8
	scrollY  uint8

	// reads from VRAM below the palette range are buffered by one read
	readBuffer uint8

	dot      int
	scanline int
	frame    uint64
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(cart Cartridge, raiseNMI func()) *PPU {
	ppu := &PPU{
		cart:     cart,
		raiseNMI: raiseNMI,
	}
	ppu.Reset()
	return ppu
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("frame=%d scanline=%d dot=%d", ppu.frame, ppu.scanline, ppu.dot)
}

// Reset the PPU to its power-on state.
func (ppu *PPU) Reset() {
	ppu.ctrl = 0
	ppu.mask = 0
	ppu.status = 0
	ppu.oamAddr = 0
	ppu.latch = false
	ppu.vramAddr = 0
	ppu.scrollX = 0
	ppu.scrollY = 0
	ppu.readBuffer = 0
	ppu.dot = 0
	ppu.scanline = 0
	ppu.frame = 0
}

// Step the PPU by one dot. The vertical blank flag raises at the second dot
// of the vblank scanline and clears at the second dot of the pre-render
// scanline.
func (ppu *PPU) Step() {
	ppu.dot++
	if ppu.dot >= dotsPerScanline {
		ppu.dot = 0
		ppu.scanline++
		if ppu.scanline >= scanlinesPerFrame {
			ppu.scanline = 0
			ppu.frame++
		}
	}

	if ppu.dot == 1 {
		switch ppu.scanline {
		case vblankScanline:
			ppu.status |= 0x80
			if ppu.ctrl&0x80 == 0x80 && ppu.raiseNMI != nil {
				ppu.raiseNMI()
			}
		case prerenderScanline:
			// vblank, sprite zero hit and sprite overflow all clear
			ppu.status = 0
		}
	}
}

// Frame returns the number of completed frames.
func (ppu *PPU) Frame() uint64 {
	return ppu.frame
}

// Scanline returns the current scanline.
func (ppu *PPU) Scanline() int {
	return ppu.scanline
}

// Dot returns the current dot of the current scanline.
func (ppu *PPU) Dot() int {
	return ppu.dot
}

// VBlank returns whether the PPU is inside the vertical blank period.
func (ppu *PPU) VBlank() bool {
	return ppu.status&0x80 == 0x80
}

// ReadRegister reads one of the eight registers. Only the status, OAM data
// and VRAM data registers are readable; the rest return zero.
func (ppu *PPU) ReadRegister(addr uint16) uint8 {
	switch addr {
	case RegStatus:
		v := ppu.status
		ppu.status &= 0x7f
		ppu.latch = false
		return v
	case RegOAMData:
		return ppu.oam[ppu.oamAddr]
	case RegData:
		return ppu.readData()
	}
	return 0
}

// WriteRegister writes one of the eight registers.
func (ppu *PPU) WriteRegister(addr uint16, data uint8) {
	switch addr {
	case RegCtrl:
		ppu.ctrl = data
	case RegMask:
		ppu.mask = data
	case RegOAMAddr:
		ppu.oamAddr = data
	case RegOAMData:
		ppu.WriteOAM(data)
	case RegScroll:
		if ppu.latch {
			ppu.scrollY = data
		} else {
			ppu.scrollX = data
		}
		ppu.latch = !ppu.latch
	case RegAddr:
		if ppu.latch {
			ppu.vramAddr = ppu.vramAddr&0xff00 | uint16(data)
		} else {
			ppu.vramAddr = uint16(data)<<8 | ppu.vramAddr&0x00ff
		}
		ppu.latch = !ppu.latch
	case RegData:
		ppu.writeData(data)
	}
}

// WriteOAM writes a byte at the current OAM address and increments the
// address. This is the port the OAM DMA transfer uses.
func (ppu *PPU) WriteOAM(data uint8) {
	ppu.oam[ppu.oamAddr] = data
	ppu.oamAddr++
}

// vramIncrement is the amount the VRAM address moves after an access to the
// data register.
func (ppu *PPU) vramIncrement() uint16 {
	if ppu.ctrl&0x04 == 0x04 {
		return 32
	}
	return 1
}

// readData implements the data register read. Reads below the palette range
// arrive one access late.
func (ppu *PPU) readData() uint8 {
	addr := ppu.vramAddr & 0x3fff
	ppu.vramAddr += ppu.vramIncrement()

	if addr >= 0x3f00 {
		return ppu.palette[paletteIndex(addr)]
	}

	v := ppu.readBuffer
	ppu.readBuffer = ppu.readVRAM(addr)
	return v
}

func (ppu *PPU) writeData(data uint8) {
	addr := ppu.vramAddr & 0x3fff
	ppu.vramAddr += ppu.vramIncrement()

	if addr >= 0x3f00 {
		ppu.palette[paletteIndex(addr)] = data
		return
	}
	ppu.writeVRAM(addr, data)
}

func (ppu *PPU) readVRAM(addr uint16) uint8 {
	if addr < 0x2000 {
		return ppu.cart.ReadCHR(addr)
	}
	return ppu.nametable[ppu.nametableIndex(addr)]
}

func (ppu *PPU) writeVRAM(addr uint16, data uint8) {
	if addr < 0x2000 {
		ppu.cart.WriteCHR(addr, data)
		return
	}
	ppu.nametable[ppu.nametableIndex(addr)] = data
}

// nametableIndex maps a VRAM address onto the console's 2k of nametable
// memory according to the mirroring arrangement of the cartridge.
func (ppu *PPU) nametableIndex(addr uint16) uint16 {
	addr &= 0x0fff
	table := addr / 0x0400
	offset := addr & 0x03ff

	if ppu.cart.Mirror() == cartridge.MirrorVertical {
		table &= 0x01
	} else {
		table >>= 1
	}
	return table*0x0400 + offset
}

// paletteIndex maps a VRAM address onto palette memory. The background
// entries of the sprite palettes mirror the background palettes.
func paletteIndex(addr uint16) uint16 {
	addr &= 0x001f
	if addr >= 0x10 && addr&0x03 == 0 {
		addr -= 0x10
	}
	return addr
}
