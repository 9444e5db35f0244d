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

package cartridge

import (
	"strings"

	"github.com/jetsetilly/gopheradvance/curated"
)

// Header is the parsed form of the cartridge header found at the start of
// every GamePak ROM.
type Header struct {
	Title     string
	GameCode  string
	MakerCode string
	Version   uint8

	// whether the complement check byte agrees with the header contents
	ValidComplement bool
}

// offsets into the ROM of the header fields
const (
	titleOffset      = 0xa0
	gameCodeOffset   = 0xac
	makerCodeOffset  = 0xb0
	fixedValueOffset = 0xb2
	versionOffset    = 0xbc
	complementOffset = 0xbd

	headerSize = 0xc0
)

// the byte at fixedValueOffset is required to have this value
const fixedValue = 0x96

// error messages
const (
	ShortROM      = "cartridge: ROM too small for a header (%d bytes)"
	NotAGamePak   = "cartridge: fixed header byte is %#02x (expected 0x96)"
	OversizedROM  = "cartridge: ROM too large (%d bytes)"
	UnrecognisedE = "cartridge: unrecognised file extension (%s)"
)

func decodeHeader(rom []byte) (Header, error) {
	hdr := Header{}

	if len(rom) < headerSize {
		return hdr, curated.Errorf(ShortROM, len(rom))
	}

	if rom[fixedValueOffset] != fixedValue {
		return hdr, curated.Errorf(NotAGamePak, rom[fixedValueOffset])
	}

	hdr.Title = strings.TrimRight(string(rom[titleOffset:titleOffset+12]), "\x00")
	hdr.GameCode = strings.TrimRight(string(rom[gameCodeOffset:gameCodeOffset+4]), "\x00")
	hdr.MakerCode = strings.TrimRight(string(rom[makerCodeOffset:makerCodeOffset+2]), "\x00")
	hdr.Version = rom[versionOffset]

	// the complement byte makes the checksum over the header fields come
	// out at zero
	chk := uint8(0)
	for _, b := range rom[titleOffset:complementOffset] {
		chk -= b
	}
	chk -= 0x19
	hdr.ValidComplement = chk == rom[complementOffset]

	return hdr, nil
}

func (hdr Header) String() string {
	s := strings.Builder{}
	s.WriteString(hdr.Title)
	if hdr.GameCode != "" {
		s.WriteString(" [")
		s.WriteString(hdr.GameCode)
		s.WriteString("]")
	}
	return s.String()
}
