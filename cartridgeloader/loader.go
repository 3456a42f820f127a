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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/jetsetilly/gophernes/archivefs"
	"github.com/jetsetilly/gophernes/curated"
)

// Sentinal error patterns.
const (
	LoaderError = "cartridgeloader: %v"
)

// the maximum time allowed for a cartridge to be downloaded
const httpTimeout = 30 * time.Second

// Loader is used to specify the cartridge to use when attaching to the NES.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequence calls to Load() will return a copy
	// of this data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the CartridgeLoader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// IsRecognised returns true if the filename has one of the extensions in the
// FileExtensions list or is a supported archive. Alphabetic characters can be
// in upper or lower case or a mixture of both.
func (cl Loader) IsRecognised() bool {
	return slices.Contains(FileExtensions[:], strings.ToUpper(path.Ext(cl.Filename))) || archivefs.IsArchive(cl.Filename)
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	// the file scheme is removed from the filename
	filename := cl.Filename

	u, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = u.Scheme
		if scheme == "file" {
			filename = u.Path
		}
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		client := http.Client{Timeout: httpTimeout}
		resp, err := client.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoaderError, fmt.Sprintf("http status (%s)", resp.Status))
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	case "file":
		cl.Data, err = archivefs.Read(filename, FileExtensions[:])
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	case "":
		cl.Data, err = archivefs.Read(filename, FileExtensions[:])
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	default:
		// a single letter scheme is probably a windows drive letter
		if len(scheme) == 1 {
			cl.Data, err = archivefs.Read(filename, FileExtensions[:])
			if err != nil {
				return curated.Errorf(LoaderError, err)
			}
			break // switch
		}
		return curated.Errorf(LoaderError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(LoaderError, "unexpected hash value")
	}

	// not generated hash
	cl.Hash = hash

	return nil
}
