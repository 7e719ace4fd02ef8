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

package test

import (
	"strings"
)

// Writer is an implementation of the io.Writer interface. It is useful for
// testing functions that write to an io.Writer, the captured output of which
// can be compared to an expected output.
type Writer struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (tw *Writer) Write(p []byte) (n int, err error) {
	return tw.buffer.Write(p)
}

// Compare buffered output with the expected string.
func (tw *Writer) Compare(expected string) bool {
	return tw.buffer.String() == expected
}

// String implements the Stringer interface.
func (tw *Writer) String() string {
	return tw.buffer.String()
}
