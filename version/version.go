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

// Package version reports the version of the running binary, using only the
// information the Go toolchain embeds at build time.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Gophernes"

// Version returns the version and revision strings for the running binary.
//
// The version is the main module version, which is "(devel)" for a build
// made directly from a source checkout. The revision is the vcs commit the
// binary was built from, suffixed with "+dirty" if the working tree had
// uncommitted changes. When the binary was built without vcs information,
// for example with "go run", the revision says so.
func Version() (string, string) {
	version := "unknown"
	revision := "no revision information"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, revision
	}

	if info.Main.Version != "" {
		version = info.Main.Version
	}

	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	return version, revision
}
