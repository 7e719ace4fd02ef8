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

// Package cartridgeloader is used to specify the cartridge data that is to
// be attached to the emulated console. ROM files in the iNES format are
// supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.NewLoader("roms/nestest.nes")
//
// The Load() function reads and parses the named file. Loading either
// succeeds completely or leaves the Loader unchanged; a truncated or
// malformed file never results in a partially populated Loader.
package cartridgeloader
