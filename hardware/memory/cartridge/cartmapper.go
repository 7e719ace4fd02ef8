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

// cartMapper is implemented by the individual mapper types. CPU side
// addresses are in the range 0x4020 to 0xffff. CHR side addresses are in
// the range 0x0000 to 0x1fff.
type cartMapper interface {
	String() string
	id() string

	read(addr uint16) uint8
	write(addr uint16, data uint8)

	chrRead(addr uint16) uint8
	chrWrite(addr uint16, data uint8)
}

// Mirror is the nametable mirroring arrangement requested by the cartridge.
type Mirror int

// List of valid Mirror values.
const (
	MirrorHorizontal Mirror = iota
	MirrorVertical
)

func (m Mirror) String() string {
	if m == MirrorVertical {
		return "vertical"
	}
	return "horizontal"
}
