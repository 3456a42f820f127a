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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a method of handling program modes (and sub-modes) and
// allows different flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and then parsed with
// Parse(). Flags are added before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TRACE", "DEBUG")
//	p, err := md.Parse()
//
// A mode is a command line argument that puts the program into a different
// mode of operation, each with its own set of flags. After the call to Parse()
// the selected mode is returned by the Mode() function. If no mode was
// specified then the first sub-mode in the list is selected. Sub-mode
// comparisons are case insensitive.
//
// The selected mode can then start a new set of flags with NewMode() and a
// second call to Parse():
//
//	switch md.Mode() {
//	case "TRACE":
//		md.NewMode()
//		limit := md.AddInt("limit", 0, "maximum number of instructions")
//		p, err := md.Parse()
//		...
//		traceROM(md.GetArg(0), *limit)
//	}
//
// The ParseHelp result indicates that help was requested and has already been
// printed to the Output writer.
package modalflag
