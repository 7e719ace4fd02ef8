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

// Package test contains helper functions that remove common boilerplate from
// tests of the emulation core.
//
// The Equate() function compares like-typed values for equality. Some types
// (eg. uint16) can be compared against int literals for convenience.
//
// The ExpectedFailure() and ExpectedSuccess() functions test for failure and
// success under generic conditions. A nil value is interpreted as a success,
// which is how errors work in practice (nil meaning no error).
package test
