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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package,
// with some differences. Whereas with flag.FlagSet you call Parse() with
// the array of strings as the only argument, with modalflag you first call
// NewArgs() with the array of arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() functions.
//
// Adding flags is similar to the flag package. Adding a boolean flag:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// A mode is a special command line argument that when specified puts the
// program into a different mode of operation, with its own set of flags and
// expected arguments (in the manner of the go command's build, doc, test,
// etc). Modes are declared with the AddSubModes() function; the first mode
// listed is the default. Sub-mode comparisons are case insensitive.
//
//	md.AddSubModes("run", "disasm")
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		... add flags for the run mode ...
//		_, _ = md.Parse()
//	}
//
// Modes can be chained as deeply as required, with a call to NewMode() and
// Parse() for each layer.
package modalflag
