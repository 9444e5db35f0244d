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

// Package cartridge represents the GamePak that is inserted into the
// console. It holds the ROM image and the battery backed SRAM that most
// cartridges carry.
package cartridge

import (
	"fmt"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/logger"
)

// Cartridge is the attached GamePak.
type Cartridge struct {
	Filename string
	Hash     string
	Header   Header

	rom  []byte
	sram []byte
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	if len(cart.rom) == 0 {
		return "ejected"
	}
	return fmt.Sprintf("%s (%dk)", cart.Header.String(), len(cart.rom)/1024)
}

// Eject removes any attached GamePak, leaving the cartridge windows open
// bus.
func (cart *Cartridge) Eject() {
	cart.Filename = "ejected"
	cart.Hash = ""
	cart.Header = Header{}
	cart.rom = nil
	cart.sram = make([]byte, memorymap.SizeSRAM)
}

// Attached returns true if a GamePak is currently inserted.
func (cart *Cartridge) Attached() bool {
	return len(cart.rom) > 0
}

// Attach the GamePak described by the cartridgeloader.Loader instance.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	err := cartload.Load()
	if err != nil {
		return err
	}

	if len(cartload.Data) > memorymap.MaxGamePak {
		return curated.Errorf(OversizedROM, len(cartload.Data))
	}

	hdr, err := decodeHeader(cartload.Data)
	if err != nil {
		return err
	}

	if !hdr.ValidComplement {
		logger.Logf("cartridge", "header complement check failed for %s", cartload.ShortName())
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.Header = hdr
	cart.rom = cartload.Data
	cart.sram = make([]byte, memorymap.SizeSRAM)

	logger.Logf("cartridge", "attached %s", cart.String())

	return nil
}

// ROM returns a byte from the cartridge ROM. The ok return value is false
// if the offset is past the end of the image, in which case the bus treats
// the access as open bus.
func (cart *Cartridge) ROM(offset uint32) (uint8, bool) {
	if offset >= uint32(len(cart.rom)) {
		return 0, false
	}
	return cart.rom[offset], true
}

// SRAM access is over an 8-bit bus. wider accesses are handled by the
// memory package.
func (cart *Cartridge) SRAM(offset uint32) uint8 {
	return cart.sram[offset&(memorymap.SizeSRAM-1)]
}

// SetSRAM writes a byte to the battery backed RAM.
func (cart *Cartridge) SetSRAM(offset uint32, data uint8) {
	cart.sram[offset&(memorymap.SizeSRAM-1)] = data
}
