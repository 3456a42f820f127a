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

// Package archivefs allows files inside zip archives to be addressed with an
// ordinary looking path. The archive file is treated as a directory. For
// example:
//
//	roms/testroms.zip/nestest.nes
//
// The Read() function is the simplest way of using the package. If the path
// is to the archive itself then the archive must contain exactly one file with
// a recognised extension.
package archivefs
