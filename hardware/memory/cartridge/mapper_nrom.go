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

// nrom implements iNES mapper zero. PRG ROM appears from 0x8000; a single
// bank cartridge mirrors the bank into the top half of the range. 8k of PRG
// RAM sits at 0x6000.
type nrom struct {
	prg   []uint8
	banks int

	// CHR data. cartridges with no CHR ROM get 8k of CHR RAM instead
	chr    []uint8
	chrRAM bool

	ram []uint8
}

func newNROM(cartload cartridgeloader.Loader) (*nrom, error) {
	banks := len(cartload.PRG) / cartridgeloader.PRGBankSize
	if banks != 1 && banks != 2 {
		return nil, curated.Errorf("nrom: wrong number of PRG banks (%d)", banks)
	}

	cart := &nrom{
		prg:   make([]uint8, len(cartload.PRG)),
		banks: banks,
		ram:   make([]uint8, 0x2000),
	}
	copy(cart.prg, cartload.PRG)

	if len(cartload.CHR) == 0 {
		cart.chr = make([]uint8, cartridgeloader.CHRBankSize)
		cart.chrRAM = true
	} else {
		cart.chr = make([]uint8, len(cartload.CHR))
		copy(cart.chr, cartload.CHR)
	}

	return cart, nil
}

func (cart nrom) String() string {
	return fmt.Sprintf("%s: %d PRG banks", cart.id(), cart.banks)
}

func (cart nrom) id() string {
	return "NROM"
}

func (cart *nrom) read(addr uint16) uint8 {
	if addr >= 0x8000 {
		offset := int(addr - 0x8000)
		if cart.banks == 1 {
			offset &= 0x3fff
		}
		return cart.prg[offset]
	}
	if addr >= 0x6000 {
		return cart.ram[addr-0x6000]
	}
	return 0
}

func (cart *nrom) write(addr uint16, data uint8) {
	if addr >= 0x8000 {
		// PRG ROM. there are no mapper registers
		return
	}
	if addr >= 0x6000 {
		cart.ram[addr-0x6000] = data
	}
}

func (cart *nrom) chrRead(addr uint16) uint8 {
	return cart.chr[addr]
}

func (cart *nrom) chrWrite(addr uint16, data uint8) {
	if cart.chrRAM {
		cart.chr[addr] = data
	}
}
