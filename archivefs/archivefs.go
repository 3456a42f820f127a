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

package archivefs

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// list of file extensions for the supported archive types
var ArchiveExtensions = [...]string{".ZIP"}

// IsArchive returns true if the filename has the extension of a supported
// archive type.
func IsArchive(filename string) bool {
	return slices.Contains(ArchiveExtensions[:], strings.ToUpper(filepath.Ext(filename)))
}

// Read returns the data for the file. If filename points to an archive then
// the archive is searched for a single file with one of the extensions in the
// list. Extensions should be upper case and include the leading period.
func Read(filename string, extensions []string) ([]byte, error) {
	var afs Path
	defer afs.Close()

	err := afs.Set(filename)
	if err != nil {
		return nil, err
	}

	if afs.IsDir() {
		if !afs.InArchive() {
			return nil, fmt.Errorf("archivefs: read: %s is a directory", filename)
		}

		entries, err := afs.List()
		if err != nil {
			return nil, err
		}

		var found []string
		for _, e := range entries {
			if !e.IsDir && slices.Contains(extensions, strings.ToUpper(filepath.Ext(e.Name))) {
				found = append(found, e.Name)
			}
		}

		switch len(found) {
		case 0:
			return nil, fmt.Errorf("archivefs: read: no suitable file in %s", afs.Base())
		case 1:
		default:
			return nil, fmt.Errorf("archivefs: read: %d suitable files in %s", len(found), afs.Base())
		}

		err = afs.Set(filepath.Join(filename, found[0]))
		if err != nil {
			return nil, err
		}
	}

	return afs.Read()
}
