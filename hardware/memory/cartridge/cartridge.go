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

package cartridge

import (
	"fmt"

	"github.com/gophernes/gophernes/cartridgeloader"
	"github.com/gophernes/gophernes/curated"
)

// Cartridge defines the information and operations for a NES cartridge.
type Cartridge struct {
	Filename string
	Hash     string

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper cartMapper

	mirror Mirror
}

// NewCartridge is the preferred method of initialisation for the cartridge
// type.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart Cartridge) String() string {
	return fmt.Sprintf("%s\n%s", cart.Filename, cart.mapper)
}

// ID returns the cartridge mapper ID.
func (cart Cartridge) ID() string {
	return cart.mapper.id()
}

// Attach the cartridge loader to the console and make the data available on
// the cartridge ports. The data is loaded first if the loader hasn't done so
// already. On error the previously attached cartridge (if any) remains in
// place.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	if len(cartload.PRG) == 0 {
		if err := cartload.Load(); err != nil {
			return err
		}
	}

	var mapper cartMapper
	var err error

	switch cartload.Mapper {
	case 0:
		mapper, err = newNROM(cartload)
	default:
		return curated.Errorf("cartridge: mapper %d not supported", cartload.Mapper)
	}
	if err != nil {
		return err
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.mapper = mapper
	cart.mirror = MirrorHorizontal
	if cartload.MirrorVertical {
		cart.mirror = MirrorVertical
	}

	return nil
}

// Eject removes memory from cartridge space and unlike the real hardware,
// attaches a bank of empty memory.
func (cart *Cartridge) Eject() {
	cart.Filename = ejectedName
	cart.Hash = ""
	cart.mapper = newEjected()
	cart.mirror = MirrorHorizontal
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.mapper.id() == ejectedID
}

// Mirror returns the nametable mirroring arrangement the cartridge asks
// for.
func (cart *Cartridge) Mirror() Mirror {
	return cart.mirror
}

// Read a byte from the CPU side of the cartridge. Addresses from 0x4020 to
// 0xffff are valid.
func (cart *Cartridge) Read(addr uint16) uint8 {
	return cart.mapper.read(addr)
}

// Write a byte to the CPU side of the cartridge.
func (cart *Cartridge) Write(addr uint16, data uint8) {
	cart.mapper.write(addr, data)
}

// ReadCHR reads a byte from the PPU side of the cartridge. Addresses below
// 0x2000 are valid.
func (cart *Cartridge) ReadCHR(addr uint16) uint8 {
	return cart.mapper.chrRead(addr)
}

// WriteCHR writes a byte to the PPU side of the cartridge. The write is
// ignored by cartridges with CHR ROM.
func (cart *Cartridge) WriteCHR(addr uint16, data uint8) {
	cart.mapper.chrWrite(addr, data)
}
