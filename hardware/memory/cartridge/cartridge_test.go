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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/memory/cartridge"
	"github.com/jetsetilly/gopheradvance/test"
)

func testROM(title string) []byte {
	rom := make([]byte, 0x200)
	copy(rom[0xa0:], title)
	copy(rom[0xac:], "ATSE")
	copy(rom[0xb0:], "01")
	rom[0xb2] = 0x96
	rom[0xbc] = 0x01
	chk := uint8(0)
	for _, b := range rom[0xa0:0xbd] {
		chk -= b
	}
	rom[0xbd] = chk - 0x19
	return rom
}

func TestAttach(t *testing.T) {
	cart := cartridge.NewCartridge()
	test.ExpectedFailure(t, cart.Attached())

	cartload := cartridgeloader.Loader{Filename: "test.gba", Data: testROM("HELLO")}
	err := cart.Attach(cartload)
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	test.Equate(t, cart.Header.Title, "HELLO")
	test.Equate(t, cart.Header.GameCode, "ATSE")
	test.Equate(t, cart.Header.MakerCode, "01")
	test.Equate(t, cart.Header.Version, uint8(0x01))
	test.ExpectedSuccess(t, cart.Header.ValidComplement)

	b, ok := cart.ROM(0xa0)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, b, uint8('H'))

	// reads past the end of the image report not-ok
	_, ok = cart.ROM(0x10000)
	test.ExpectedFailure(t, ok)

	test.ExpectedSuccess(t, cart.Attached())
	cart.Eject()
	test.ExpectedFailure(t, cart.Attached())
}

func TestBadHeaders(t *testing.T) {
	cart := cartridge.NewCartridge()

	// too small for a header
	err := cart.Attach(cartridgeloader.Loader{Filename: "small.gba", Data: make([]byte, 0x10)})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.ShortROM))

	// bad fixed value byte
	rom := testROM("BAD")
	rom[0xb2] = 0x00
	err = cart.Attach(cartridgeloader.Loader{Filename: "bad.gba", Data: rom})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.NotAGamePak))
}

func TestComplementMismatch(t *testing.T) {
	cart := cartridge.NewCartridge()

	// a header with a wrong complement byte still attaches. the mismatch
	// is reported through the header
	rom := testROM("WONKY")
	rom[0xbd] ^= 0xff
	err := cart.Attach(cartridgeloader.Loader{Filename: "wonky.gba", Data: rom})
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	test.ExpectedFailure(t, cart.Header.ValidComplement)
}

func TestSRAM(t *testing.T) {
	cart := cartridge.NewCartridge()

	cart.SetSRAM(0x0100, 0x5a)
	test.Equate(t, cart.SRAM(0x0100), uint8(0x5a))

	// SRAM survives without a cartridge but is cleared by a new attach
	err := cart.Attach(cartridgeloader.Loader{Filename: "test.gba", Data: testROM("FRESH")})
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	test.Equate(t, cart.SRAM(0x0100), uint8(0x00))
}
