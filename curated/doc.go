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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values, like fmt.Errorf(). The pattern
// doubles as the identity of the error:
//
//	e := curated.Errorf("cartridge: %v", err)
//
//	if curated.Is(e, "cartridge: %v") {
//		...
//	}
//
// Is() answers whether an error was created with a specific pattern; Has()
// answers whether the pattern occurs anywhere in the chain of wrapped
// values; IsAny() answers whether the error is curated at all, which in
// practice distinguishes expected failures from unexpected ones.
//
// The Error() implementation normalises the message chain by removing
// duplicate adjacent parts, so wrapping at every level of the call stack
// doesn't produce stuttering messages.
package curated
