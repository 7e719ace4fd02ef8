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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/gophernes/gophernes/curated"
)

// sizes of the sections of an iNES file. the header counts PRG and CHR data
// in banks of these sizes.
const (
	HeaderSize  = 16
	TrainerSize = 512
	PRGBankSize = 16384
	CHRBankSize = 8192
)

// Loader is used to specify the cartridge to be attached to the emulated
// console. A failed Load() leaves the Loader in whatever state it was in
// before the call.
type Loader struct {
	Filename string

	// sha1 of the file as it was found on disk
	Hash string

	// the mapper named in the iNES header
	Mapper int

	// nametable mirroring requested by the header. false means horizontal
	// mirroring
	MirrorVertical bool

	// whether the cartridge carries battery backed PRG RAM
	Battery bool

	// the sections of the file, in file order. Trainer is nil when the
	// header doesn't flag one. CHR is empty for cartridges that supply CHR
	// RAM instead of ROM
	Trainer []uint8
	PRG     []uint8
	CHR     []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The file is not touched until Load() is called.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// Load the cartridge file and parse the iNES envelope.
func (ld *Loader) Load() error {
	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}
	return ld.parse(data)
}

// parse the iNES envelope. the Loader fields are only assigned once the
// whole file has validated.
func (ld *Loader) parse(data []uint8) error {
	if len(data) < HeaderSize {
		return curated.Errorf("cartridgeloader: file is too short for an iNES header")
	}

	if data[0] != 'N' || data[1] != 'E' || data[2] != 'S' || data[3] != 0x1a {
		return curated.Errorf("cartridgeloader: not an iNES file")
	}

	prgLen := int(data[4]) * PRGBankSize
	chrLen := int(data[5]) * CHRBankSize
	mapper := int(data[6])>>4 | int(data[7])&0xf0
	mirrorVertical := data[6]&0x01 == 0x01
	battery := data[6]&0x02 == 0x02
	hasTrainer := data[6]&0x04 == 0x04

	expected := HeaderSize + prgLen + chrLen
	if hasTrainer {
		expected += TrainerSize
	}
	if len(data) < expected {
		return curated.Errorf("cartridgeloader: file is shorter than the header describes")
	}

	offset := HeaderSize
	var trainer []uint8
	if hasTrainer {
		trainer = data[offset : offset+TrainerSize]
		offset += TrainerSize
	}

	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))
	ld.Mapper = mapper
	ld.MirrorVertical = mirrorVertical
	ld.Battery = battery
	ld.Trainer = trainer
	ld.PRG = data[offset : offset+prgLen]
	ld.CHR = data[offset+prgLen : offset+prgLen+chrLen]

	return nil
}
