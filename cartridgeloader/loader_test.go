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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildINES returns a synthetic iNES file. PRG bytes count upwards from
// zero, CHR bytes count downwards from 0xff.
func buildINES(prgBanks int, chrBanks int, flags6 uint8) []uint8 {
	data := make([]uint8, 0, HeaderSize)
	data = append(data, 'N', 'E', 'S', 0x1a, uint8(prgBanks), uint8(chrBanks), flags6, 0)
	for len(data) < HeaderSize {
		data = append(data, 0)
	}

	if flags6&0x04 == 0x04 {
		for i := 0; i < TrainerSize; i++ {
			data = append(data, 0x55)
		}
	}
	for i := 0; i < prgBanks*PRGBankSize; i++ {
		data = append(data, uint8(i))
	}
	for i := 0; i < chrBanks*CHRBankSize; i++ {
		data = append(data, uint8(0xff-i))
	}
	return data
}

func TestParse(t *testing.T) {
	ld := NewLoader("synthetic.nes")
	err := ld.parse(buildINES(2, 1, 0x01))
	require.NoError(t, err)

	assert.Equal(t, 0, ld.Mapper)
	assert.True(t, ld.MirrorVertical)
	assert.False(t, ld.Battery)
	assert.Nil(t, ld.Trainer)
	assert.Len(t, ld.PRG, 2*PRGBankSize)
	assert.Len(t, ld.CHR, CHRBankSize)
	assert.Equal(t, uint8(0), ld.PRG[0])
	assert.Equal(t, uint8(0xff), ld.CHR[0])
}

func TestParseTrainer(t *testing.T) {
	ld := NewLoader("synthetic.nes")
	err := ld.parse(buildINES(1, 0, 0x04))
	require.NoError(t, err)

	require.Len(t, ld.Trainer, TrainerSize)
	assert.Equal(t, uint8(0x55), ld.Trainer[0])

	// PRG data starts after the trainer, not at the trainer
	assert.Equal(t, uint8(0), ld.PRG[0])
	assert.Equal(t, uint8(1), ld.PRG[1])
}

func TestParseMapperNumber(t *testing.T) {
	data := buildINES(1, 0, 0x10)
	data[7] = 0x20
	ld := NewLoader("synthetic.nes")
	err := ld.parse(data)
	require.NoError(t, err)
	assert.Equal(t, 0x21, ld.Mapper)
}

func TestParseErrors(t *testing.T) {
	ld := NewLoader("synthetic.nes")

	err := ld.parse([]uint8{'N', 'E', 'S', 0x1a})
	assert.ErrorContains(t, err, "too short")

	err = ld.parse(buildINES(1, 0, 0)[1:])
	assert.ErrorContains(t, err, "not an iNES file")

	// truncated PRG section
	err = ld.parse(buildINES(1, 0, 0)[:HeaderSize+100])
	assert.ErrorContains(t, err, "shorter than the header describes")

	// a failed parse leaves the loader unpopulated
	assert.Empty(t, ld.Hash)
	assert.Nil(t, ld.PRG)
	assert.Nil(t, ld.CHR)
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "synthetic.nes")
	require.NoError(t, os.WriteFile(fn, buildINES(1, 1, 0), 0o644))

	ld := NewLoader(fn)
	require.NoError(t, ld.Load())
	assert.NotEmpty(t, ld.Hash)
	assert.Len(t, ld.PRG, PRGBankSize)

	ld = NewLoader(filepath.Join(t.TempDir(), "no-such-file.nes"))
	assert.Error(t, ld.Load())
}
