// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version and vcs revision of the build.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "GopherNES"

// number is set by the linker for numbered releases:
//
//	go build -ldflags "-X github.com/jetsetilly/gophernes/version.number=v0.1.0"
var number string

// the vcs revision. suffixed with "+dirty" if the source has been modified
// but not committed
var revision string

// "unreleased" if the project has been built from a vcs checkout without a
// version number. "local" if there is no version number and no vcs information
var version string

// Version returns the version string, the revision string and whether this is a
// numbered release version.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Banner returns the application name and version in a single line suitable
// for the VERSION mode and the debugger's startup message.
func Banner() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = fromBuildInfo(number)
}

func fromBuildInfo(number string) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	if number != "" {
		return number, rev
	}
	if vcs {
		return "unreleased", rev
	}
	return "local", rev
}
