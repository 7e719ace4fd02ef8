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

package ppu_test

import (
	"testing"

	"github.com/gophernes/gophernes/hardware/memory/cartridge"
	"github.com/gophernes/gophernes/hardware/ppu"
	"github.com/gophernes/gophernes/test"
)

// mockCart is a cartridge with 8k of CHR RAM and a switchable mirror.
type mockCart struct {
	chr    [0x2000]uint8
	mirror cartridge.Mirror
}

func (m *mockCart) ReadCHR(addr uint16) uint8 {
	return m.chr[addr]
}

func (m *mockCart) WriteCHR(addr uint16, data uint8) {
	m.chr[addr] = data
}

func (m *mockCart) Mirror() cartridge.Mirror {
	return m.mirror
}

// stepScanlines steps the PPU to the first dot of the given scanline.
func stepScanlines(p *ppu.PPU, scanline int) {
	for p.Scanline() != scanline || p.Dot() != 1 {
		p.Step()
	}
}

func TestVBlankTiming(t *testing.T) {
	nmis := 0
	p := ppu.NewPPU(&mockCart{}, func() { nmis++ })
	p.WriteRegister(ppu.RegCtrl, 0x80)

	stepScanlines(p, 241)
	test.Equate(t, p.VBlank(), true)
	test.Equate(t, nmis, 1)

	// the flag clears on the pre-render scanline
	stepScanlines(p, 261)
	test.Equate(t, p.VBlank(), false)

	// next frame raises it again
	stepScanlines(p, 241)
	test.Equate(t, nmis, 2)
	test.Equate(t, int(p.Frame()), 1)
}

func TestNMIDisabled(t *testing.T) {
	nmis := 0
	p := ppu.NewPPU(&mockCart{}, func() { nmis++ })

	stepScanlines(p, 241)
	test.Equate(t, p.VBlank(), true)
	test.Equate(t, nmis, 0)
}

func TestStatusReadClearsVBlank(t *testing.T) {
	p := ppu.NewPPU(&mockCart{}, nil)

	stepScanlines(p, 241)
	v := p.ReadRegister(ppu.RegStatus)
	test.Equate(t, v&0x80, 0x80)
	test.Equate(t, p.VBlank(), false)
}

func TestDataRegister(t *testing.T) {
	cart := &mockCart{}
	cart.chr[0x10] = 0xab
	p := ppu.NewPPU(cart, nil)

	// point the VRAM address at CHR memory
	p.WriteRegister(ppu.RegAddr, 0x00)
	p.WriteRegister(ppu.RegAddr, 0x10)

	// reads below the palette range are buffered by one access
	test.Equate(t, p.ReadRegister(ppu.RegData), 0)
	test.Equate(t, p.ReadRegister(ppu.RegData), 0xab)
}

func TestVRAMIncrement(t *testing.T) {
	p := ppu.NewPPU(&mockCart{}, nil)

	p.WriteRegister(ppu.RegAddr, 0x20)
	p.WriteRegister(ppu.RegAddr, 0x00)
	p.WriteRegister(ppu.RegData, 0x11)
	p.WriteRegister(ppu.RegData, 0x22)

	p.WriteRegister(ppu.RegAddr, 0x20)
	p.WriteRegister(ppu.RegAddr, 0x01)
	p.ReadRegister(ppu.RegData)
	test.Equate(t, p.ReadRegister(ppu.RegData), 0x22)

	// 32 byte increments walk down a nametable column
	p.WriteRegister(ppu.RegCtrl, 0x04)
	p.WriteRegister(ppu.RegAddr, 0x20)
	p.WriteRegister(ppu.RegAddr, 0x00)
	p.WriteRegister(ppu.RegData, 0x33)
	p.WriteRegister(ppu.RegData, 0x44)

	p.WriteRegister(ppu.RegCtrl, 0x00)
	p.WriteRegister(ppu.RegAddr, 0x20)
	p.WriteRegister(ppu.RegAddr, 0x20)
	p.ReadRegister(ppu.RegData)
	test.Equate(t, p.ReadRegister(ppu.RegData), 0x44)
}

func TestNametableMirroring(t *testing.T) {
	cart := &mockCart{mirror: cartridge.MirrorVertical}
	p := ppu.NewPPU(cart, nil)

	// with vertical mirroring 0x2000 and 0x2800 are the same memory
	p.WriteRegister(ppu.RegAddr, 0x20)
	p.WriteRegister(ppu.RegAddr, 0x00)
	p.WriteRegister(ppu.RegData, 0x55)

	p.WriteRegister(ppu.RegAddr, 0x28)
	p.WriteRegister(ppu.RegAddr, 0x00)
	p.ReadRegister(ppu.RegData)
	test.Equate(t, p.ReadRegister(ppu.RegData), 0x55)

	// with horizontal mirroring 0x2000 and 0x2400 are the same memory
	cart.mirror = cartridge.MirrorHorizontal
	p.Reset()
	p.WriteRegister(ppu.RegAddr, 0x20)
	p.WriteRegister(ppu.RegAddr, 0x00)
	p.WriteRegister(ppu.RegData, 0x66)

	p.WriteRegister(ppu.RegAddr, 0x24)
	p.WriteRegister(ppu.RegAddr, 0x00)
	p.ReadRegister(ppu.RegData)
	test.Equate(t, p.ReadRegister(ppu.RegData), 0x66)
}

func TestOAM(t *testing.T) {
	p := ppu.NewPPU(&mockCart{}, nil)

	p.WriteRegister(ppu.RegOAMAddr, 0x10)
	p.WriteOAM(0x12)
	p.WriteOAM(0x34)

	p.WriteRegister(ppu.RegOAMAddr, 0x10)
	test.Equate(t, p.ReadRegister(ppu.RegOAMData), 0x12)
	p.WriteRegister(ppu.RegOAMAddr, 0x11)
	test.Equate(t, p.ReadRegister(ppu.RegOAMData), 0x34)

	// the OAM address wraps
	p.WriteRegister(ppu.RegOAMAddr, 0xff)
	p.WriteOAM(0x56)
	p.WriteOAM(0x78)
	p.WriteRegister(ppu.RegOAMAddr, 0x00)
	test.Equate(t, p.ReadRegister(ppu.RegOAMData), 0x78)
}

func TestPaletteMirroring(t *testing.T) {
	p := ppu.NewPPU(&mockCart{}, nil)

	p.WriteRegister(ppu.RegAddr, 0x3f)
	p.WriteRegister(ppu.RegAddr, 0x00)
	p.WriteRegister(ppu.RegData, 0x21)

	// 0x3f10 mirrors 0x3f00. palette reads are not buffered
	p.WriteRegister(ppu.RegAddr, 0x3f)
	p.WriteRegister(ppu.RegAddr, 0x10)
	test.Equate(t, p.ReadRegister(ppu.RegData), 0x21)
}
