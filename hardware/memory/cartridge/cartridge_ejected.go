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

const (
	ejectedName = "ejected"
	ejectedID   = "-"
)

// ejected is the mapper in place when no cartridge is attached. all reads
// return zero.
type ejected struct{}

func newEjected() *ejected {
	return &ejected{}
}

func (cart ejected) String() string {
	return ejectedName
}

func (cart ejected) id() string {
	return ejectedID
}

func (cart *ejected) read(addr uint16) uint8 {
	return 0
}

func (cart *ejected) write(addr uint16, data uint8) {
}

func (cart *ejected) chrRead(addr uint16) uint8 {
	return 0
}

func (cart *ejected) chrWrite(addr uint16, data uint8) {
}
