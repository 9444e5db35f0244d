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

// Package memory implements the memory system of the Game Boy Advance. It
// routes CPU accesses to the memory area named by the memorymap package
// and handles the quirks of the bus itself. Reads of unmapped addresses
// return open bus values and writes to read only regions are dropped.
package memory

import (
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/memory/cartridge"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/logger"
)

// value seen on every byte lane of an open bus access
const openBus = uint8(0xff)

// error messages
const (
	ShortBIOS = "memory: BIOS image is %d bytes (expected at most %d)"
)

// Memory is the bus between the CPU and everything attached to it.
type Memory struct {
	Cart *cartridge.Cartridge

	bios   []byte
	ewram  []byte
	iwram  []byte
	io     []byte
	palram []byte
	vram   []byte
	oam    []byte
}

// NewMemory is the preferred method of initialisation for the memory
// system.
func NewMemory() *Memory {
	mem := &Memory{
		Cart: cartridge.NewCartridge(),
	}
	mem.Reset()
	return mem
}

// Reset the state of all RAM areas. The BIOS image and the attached
// cartridge survive a reset.
func (mem *Memory) Reset() {
	if mem.bios == nil {
		mem.bios = make([]byte, memorymap.SizeBIOS)
	}
	mem.ewram = make([]byte, memorymap.SizeEWRAM)
	mem.iwram = make([]byte, memorymap.SizeIWRAM)
	mem.io = make([]byte, memorymap.SizeIO)
	mem.palram = make([]byte, memorymap.SizePALRAM)
	mem.vram = make([]byte, memorymap.SizeVRAM)
	mem.oam = make([]byte, memorymap.SizeOAM)
}

// LoadBIOS installs a BIOS image. Images shorter than the BIOS area are
// padded with zeros.
func (mem *Memory) LoadBIOS(data []byte) error {
	if len(data) > memorymap.SizeBIOS {
		return curated.Errorf(ShortBIOS, len(data), memorymap.SizeBIOS)
	}
	mem.bios = make([]byte, memorymap.SizeBIOS)
	copy(mem.bios, data)
	return nil
}

// read a single byte without any bus width handling. the ok return value
// is false for open bus accesses.
func (mem *Memory) read(address uint32) (uint8, bool) {
	area, o := memorymap.MapAddress(address)
	switch area {
	case memorymap.BIOS:
		return mem.bios[o], true
	case memorymap.EWRAM:
		return mem.ewram[o], true
	case memorymap.IWRAM:
		return mem.iwram[o], true
	case memorymap.IO:
		return mem.io[o], true
	case memorymap.PALRAM:
		return mem.palram[o], true
	case memorymap.VRAM:
		return mem.vram[o], true
	case memorymap.OAM:
		return mem.oam[o], true
	case memorymap.GamePak:
		return mem.Cart.ROM(o)
	case memorymap.SRAM:
		return mem.Cart.SRAM(o), true
	}
	return openBus, false
}

// write a single byte. the ok return value is false if the write was
// dropped.
func (mem *Memory) write(address uint32, data uint8) bool {
	area, o := memorymap.MapAddress(address)
	switch area {
	case memorymap.EWRAM:
		mem.ewram[o] = data
	case memorymap.IWRAM:
		mem.iwram[o] = data
	case memorymap.IO:
		mem.io[o] = data
	case memorymap.PALRAM:
		mem.palram[o] = data
	case memorymap.VRAM:
		mem.vram[o] = data
	case memorymap.OAM:
		mem.oam[o] = data
	case memorymap.SRAM:
		mem.Cart.SetSRAM(o, data)
	default:
		return false
	}
	return true
}

// Read8 returns the byte at the address.
func (mem *Memory) Read8(address uint32) uint8 {
	b, ok := mem.read(address)
	if !ok {
		return openBus
	}
	return b
}

// Read16 returns the halfword at the address. The address is aligned
// before the access and the result of a misaligned read is rotated, as it
// is by the real bus.
func (mem *Memory) Read16(address uint32) uint16 {
	aligned := address &^ 0x01
	lo, ok := mem.read(aligned)
	if !ok {
		return uint16(openBus) | uint16(openBus)<<8
	}
	hi, _ := mem.read(aligned + 1)
	v := uint16(lo) | uint16(hi)<<8

	if address&0x01 == 0x01 {
		v = v>>8 | v<<8
	}

	return v
}

// Read32 returns the word at the address. The address is aligned before
// the access and the result of a misaligned read is rotated, as it is by
// the real bus.
func (mem *Memory) Read32(address uint32) uint32 {
	aligned := address &^ 0x03
	b0, ok := mem.read(aligned)
	if !ok {
		return uint32(openBus) | uint32(openBus)<<8 | uint32(openBus)<<16 | uint32(openBus)<<24
	}
	b1, _ := mem.read(aligned + 1)
	b2, _ := mem.read(aligned + 2)
	b3, _ := mem.read(aligned + 3)
	v := uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16 | uint32(b3)<<24

	if shift := 8 * (address & 0x03); shift != 0 {
		v = v>>shift | v<<(32-shift)
	}

	return v
}

// Write8 writes a byte to the address. Writes to ROM areas are dropped.
func (mem *Memory) Write8(address uint32, data uint8) {
	if !mem.write(address, data) {
		logger.Logf("memory", "write of %#02x to unwritable address %#08x", data, address)
	}
}

// Write16 writes a halfword to the address. The address is aligned before
// the access.
func (mem *Memory) Write16(address uint32, data uint16) {
	address &^= 0x01

	// SRAM sits on an 8-bit bus. a wide write stores a single byte
	if area, o := memorymap.MapAddress(address); area == memorymap.SRAM {
		mem.Cart.SetSRAM(o, uint8(data))
		return
	}

	ok := mem.write(address, uint8(data))
	mem.write(address+1, uint8(data>>8))
	if !ok {
		logger.Logf("memory", "write of %#04x to unwritable address %#08x", data, address)
	}
}

// Write32 writes a word to the address. The address is aligned before the
// access.
func (mem *Memory) Write32(address uint32, data uint32) {
	address &^= 0x03

	if area, o := memorymap.MapAddress(address); area == memorymap.SRAM {
		mem.Cart.SetSRAM(o, uint8(data))
		return
	}

	ok := mem.write(address, uint8(data))
	mem.write(address+1, uint8(data>>8))
	mem.write(address+2, uint8(data>>16))
	mem.write(address+3, uint8(data>>24))
	if !ok {
		logger.Logf("memory", "write of %#08x to unwritable address %#08x", data, address)
	}
}

// Peek returns the byte at the address without any of the logging that a
// CPU access would cause. Used by the debugger.
func (mem *Memory) Peek(address uint32) (uint8, bool) {
	return mem.read(address)
}

// Poke writes a byte to the address, ignoring write protection. Used by
// the debugger.
func (mem *Memory) Poke(address uint32, data uint8) bool {
	if mem.write(address, data) {
		return true
	}

	// pokes are allowed to reach into the read only areas
	area, o := memorymap.MapAddress(address)
	switch area {
	case memorymap.BIOS:
		mem.bios[o] = data
		return true
	}
	return false
}
