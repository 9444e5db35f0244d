// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

// Package cartridgeloader is used to load cartridge files into the
// emulator. A Loader is created with NewLoader() and passed to the
// cartridge attachment functions of the hardware package.
package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopheradvance/curated"
)

// Loader abstracts all the ways data can be obtained from a cartridge
// file.
type Loader struct {
	// filename of cartridge to load
	Filename string

	// empty until Load() is called
	Data []byte

	// empty until Load() is called. SHA1 of the Data
	Hash string
}

// file extensions that are recognised as GamePak images
var fileExtensions = []string{".gba", ".agb", ".bin", ".rom"}

// error messages
const (
	UnrecognisedExtension = "cartridgeloader: unrecognised file extension (%s)"
	LoaderError           = "cartridgeloader: %v"
)

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The filename argument must refer to a file with a recognised extension.
func NewLoader(filename string) (Loader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range fileExtensions {
		if ext == e {
			return Loader{Filename: filename}, nil
		}
	}
	return Loader{}, curated.Errorf(UnrecognisedExtension, ext)
}

// ShortName returns a shortened version of the Loader's Filename field.
func (cl Loader) ShortName() string {
	sn := filepath.Base(cl.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(cl.Filename))
}

// Load the cartridge data and fill the Data and Hash fields.
//
// Loaders with a pre-filled Data field (a ROM constructed in memory, as in
// testing) skip the file access and only need hashing.
func (cl *Loader) Load() error {
	if len(cl.Data) == 0 {
		f, err := os.Open(cl.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		defer f.Close()

		cl.Data, err = io.ReadAll(f)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
	}

	cl.Hash = fmt.Sprintf("%x", sha1.Sum(cl.Data))

	return nil
}
