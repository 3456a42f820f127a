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

package paths

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. The function does not test for this.
//
// Used to generate filenames for saved traces and CPU state dumps.
//
// Format of returned string is:
//
//	prepend_romname_YYYYMMDD_HHMMSS
//
// Where romname is the base name of the cartridge file without its extension.
// If there is no cartridge name the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, romFilename string) string {
	return uniqueFilename(prepend, romFilename, time.Now())
}

func uniqueFilename(prepend string, romFilename string, n time.Time) string {
	timestamp := n.Format("20060102_150405")

	rom := strings.TrimSpace(filepath.Base(romFilename))
	rom = strings.TrimSuffix(rom, filepath.Ext(rom))
	if rom == "." || rom == string(filepath.Separator) {
		rom = ""
	}

	if len(rom) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, rom, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
