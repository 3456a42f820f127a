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

package archivefs_test

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/archivefs"
	"github.com/jetsetilly/gophernes/test"
)

// testdir creates a directory with the following structure:
//
//	testfile
//	testarchive.zip
//		archivefile1.nes
//		archivefile2.txt
//		archivedir/
//			archivefile3.nes
func testdir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "testfile"), []byte("testfile contents\n"), 0o644))

	f, err := os.Create(filepath.Join(dir, "testarchive.zip"))
	test.DemandSuccess(t, err)

	zw := zip.NewWriter(f)
	for _, n := range []string{"archivefile1.nes", "archivefile2.txt", "archivedir/", "archivedir/archivefile3.nes"} {
		w, err := zw.Create(n)
		test.DemandSuccess(t, err)
		if n[len(n)-1] != '/' {
			_, err = fmt.Fprintf(w, "%s contents\n", filepath.Base(n))
			test.DemandSuccess(t, err)
		}
	}
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	return dir
}

func TestArchivefsPath(t *testing.T) {
	dir := testdir(t)

	var afs archivefs.Path
	defer afs.Close()

	// non-existant file
	err := afs.Set(filepath.Join(dir, "foo"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, afs.String(), "")

	// a real directory
	test.ExpectSuccess(t, afs.Set(dir))
	test.ExpectEquality(t, afs.String(), dir)
	test.ExpectEquality(t, afs.IsDir(), true)
	test.ExpectEquality(t, afs.InArchive(), false)

	entries, err := afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[testarchive.zip testfile]")
	test.ExpectEquality(t, entries[0].IsArchive, true)

	// a real file. the list is of the containing directory
	test.ExpectSuccess(t, afs.Set(filepath.Join(dir, "testfile")))
	test.ExpectEquality(t, afs.IsDir(), false)
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 2)

	// a path through a file that is not an archive
	test.ExpectFailure(t, afs.Set(filepath.Join(dir, "testfile", "foo")))

	// the root of an archive
	test.ExpectSuccess(t, afs.Set(filepath.Join(dir, "testarchive.zip")))
	test.ExpectEquality(t, afs.IsDir(), true)
	test.ExpectEquality(t, afs.InArchive(), true)
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivedir archivefile1.nes archivefile2.txt]")

	// directory in an archive
	test.ExpectSuccess(t, afs.Set(filepath.Join(dir, "testarchive.zip", "archivedir")))
	test.ExpectEquality(t, afs.IsDir(), true)
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivefile3.nes]")

	// file in an archive
	test.ExpectSuccess(t, afs.Set(filepath.Join(dir, "testarchive.zip", "archivedir", "archivefile3.nes")))
	test.ExpectEquality(t, afs.IsDir(), false)
	test.ExpectEquality(t, afs.InArchive(), true)
	d, err := afs.Read()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivefile3.nes contents\n")

	// non-existant file in an archive
	test.ExpectFailure(t, afs.Set(filepath.Join(dir, "testarchive.zip", "foo")))
	test.ExpectEquality(t, afs.InArchive(), false)
}

func TestRead(t *testing.T) {
	dir := testdir(t)
	nes := []string{".NES"}

	d, err := archivefs.Read(filepath.Join(dir, "testfile"), nes)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "testfile contents\n")

	d, err = archivefs.Read(filepath.Join(dir, "testarchive.zip", "archivefile2.txt"), nes)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivefile2.txt contents\n")

	// single recognised file in the root of the archive
	d, err = archivefs.Read(filepath.Join(dir, "testarchive.zip"), nes)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivefile1.nes contents\n")

	// no recognised file in the root of the archive
	_, err = archivefs.Read(filepath.Join(dir, "testarchive.zip"), []string{".BIN"})
	test.ExpectFailure(t, err)

	// directories can't be read
	_, err = archivefs.Read(dir, nes)
	test.ExpectFailure(t, err)
}

func TestIsArchive(t *testing.T) {
	test.ExpectEquality(t, archivefs.IsArchive("roms.zip"), true)
	test.ExpectEquality(t, archivefs.IsArchive("roms.ZIP"), true)
	test.ExpectEquality(t, archivefs.IsArchive("nestest.nes"), false)
}
