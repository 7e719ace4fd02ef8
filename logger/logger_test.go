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

package logger_test

import (
	"strings"
	"testing"

	"github.com/gophernes/gophernes/logger"
	"github.com/gophernes/gophernes/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.Len(), 0)

	logger.Log("test", "this is a test")
	logger.Write(s)
	test.Equate(t, s.String(), "test: this is a test\n")
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()

	logger.Log("test", "repeated entry")
	logger.Log("test", "repeated entry")

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "test: repeated entry (repeat x2)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("test", "1")
	logger.Log("test", "2")
	logger.Log("test", "3")

	s := &strings.Builder{}
	logger.Tail(s, 2)
	test.Equate(t, s.String(), "test: 2\ntest: 3\n")
}
