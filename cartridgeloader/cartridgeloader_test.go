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

package cartridgeloader_test

import (
	"archive/zip"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/bus"
	"github.com/jetsetilly/gophernes/test"
)

// makeINES creates iNES data with the PRG banks filled with the bank number
// plus one
func makeINES(prgBanks int, chrBanks int, flags6 uint8, flags7 uint8) []byte {
	d := []byte{'N', 'E', 'S', 0x1a, uint8(prgBanks), uint8(chrBanks), flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	for b := range prgBanks {
		for range cartridgeloader.PRGBankSize {
			d = append(d, uint8(b+1))
		}
	}
	d = append(d, make([]byte, chrBanks*cartridgeloader.CHRBankSize)...)
	return d
}

func TestParseSingleBank(t *testing.T) {
	ines, err := cartridgeloader.ParseINES(makeINES(1, 1, 0, 0))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ines.PRGBanks, 1)
	test.ExpectEquality(t, ines.CHRBanks, 1)
	test.ExpectEquality(t, ines.Mapper, 0)
	test.ExpectEquality(t, len(ines.PRG), cartridgeloader.PRGBankSize)
	test.ExpectEquality(t, len(ines.CHR), cartridgeloader.CHRBankSize)

	// single bank is mirrored
	img := ines.Image()
	test.ExpectEquality(t, img[0x7fff], uint8(0))
	test.ExpectEquality(t, img[0x8000], uint8(1))
	test.ExpectEquality(t, img[0xbfff], uint8(1))
	test.ExpectEquality(t, img[0xc000], uint8(1))
	test.ExpectEquality(t, img[0xffff], uint8(1))
}

func TestParseTwoBanks(t *testing.T) {
	ines, err := cartridgeloader.ParseINES(makeINES(2, 0, 0x01, 0))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ines.VerticalMirroring, true)

	img := ines.Image()
	test.ExpectEquality(t, img[0x8000], uint8(1))
	test.ExpectEquality(t, img[0xbfff], uint8(1))
	test.ExpectEquality(t, img[0xc000], uint8(2))
	test.ExpectEquality(t, img[0xffff], uint8(2))

	b := bus.NewBus()
	test.ExpectSuccess(t, ines.Install(b))
	v, err := b.Read(0xbfff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(1))
	v, err = b.Read(0xc000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(2))
}

func TestFormatErrors(t *testing.T) {
	bad := makeINES(1, 0, 0, 0)
	bad[0] = 'X'

	tests := []struct {
		name string
		data []byte
	}{
		{"short", []byte{'N', 'E', 'S'}},
		{"magic", bad},
		{"version", makeINES(1, 0, 0, 0x08)},
		{"trainer", makeINES(1, 0, 0x04, 0)},
		{"no prg", makeINES(0, 0, 0, 0)},
		{"too many prg", makeINES(4, 0, 0, 0)},
		{"truncated", makeINES(2, 0, 0, 0)[:cartridgeloader.PRGBankSize]},
	}

	for _, tt := range tests {
		_, err := cartridgeloader.ParseINES(tt.data)
		test.ExpectEquality(t, curated.Is(err, cartridgeloader.FormatError), true, tt.name)
	}
}

func TestTruncatedCHR(t *testing.T) {
	d := makeINES(1, 1, 0, 0)
	ines, err := cartridgeloader.ParseINES(d[:len(d)-100])
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(ines.CHR), cartridgeloader.CHRBankSize-100)
}

func TestLoadFile(t *testing.T) {
	data := makeINES(1, 0, 0, 0)
	fn := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectEquality(t, cl.ShortName(), "test")
	test.ExpectEquality(t, cl.IsRecognised(), true)
	test.ExpectEquality(t, cl.HasLoaded(), false)

	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.HasLoaded(), true)
	test.ExpectEquality(t, len(cl.Data), len(data))
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))

	// hash mismatch
	cl = cartridgeloader.NewLoader(fn)
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.LoaderError), true)
	test.ExpectEquality(t, cl.HasLoaded(), false)

	// missing file
	cl = cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.nes"))
	test.ExpectFailure(t, cl.Load())

	cl = cartridgeloader.NewLoader("test.bin")
	test.ExpectEquality(t, cl.IsRecognised(), false)
}

func TestLoadHTTP(t *testing.T) {
	data := makeINES(1, 0, 0, 0)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test.nes" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/test.nes")
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), len(data))

	cl = cartridgeloader.NewLoader(srv.URL + "/missing.nes")
	test.ExpectFailure(t, cl.Load())

	cl = cartridgeloader.NewLoader("ftp://example.com/test.nes")
	test.ExpectFailure(t, cl.Load())
}

func TestLoadArchive(t *testing.T) {
	data := makeINES(1, 0, 0, 0)
	fn := filepath.Join(t.TempDir(), "roms.zip")

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("test.nes")
	test.DemandSuccess(t, err)
	_, err = w.Write(data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	// archive with a single cartridge file
	cl := cartridgeloader.NewLoader(fn)
	test.ExpectEquality(t, cl.IsRecognised(), true)
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), len(data))

	// explicit path into the archive
	cl = cartridgeloader.NewLoader(filepath.Join(fn, "test.nes"))
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), len(data))

	// file scheme
	cl = cartridgeloader.NewLoader("file://" + filepath.Join(fn, "test.nes"))
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), len(data))
}
