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

// Package memorymap describes the Game Boy Advance address space. The
// MapAddress() function normalises a 32-bit address to a memory area and an
// offset into that area, resolving the mirrors of the RAM regions and of
// the three cartridge wait-state windows.
package memorymap

// Area identifies one of the regions of the address space.
type Area int

// The memory areas of the Game Boy Advance.
const (
	Undefined Area = iota
	BIOS
	EWRAM
	IWRAM
	IO
	PALRAM
	VRAM
	OAM
	GamePak
	SRAM
)

// Origin addresses of each memory area.
const (
	OriginBIOS    = uint32(0x00000000)
	OriginEWRAM   = uint32(0x02000000)
	OriginIWRAM   = uint32(0x03000000)
	OriginIO      = uint32(0x04000000)
	OriginPALRAM  = uint32(0x05000000)
	OriginVRAM    = uint32(0x06000000)
	OriginOAM     = uint32(0x07000000)
	OriginGamePak = uint32(0x08000000)
	OriginSRAM    = uint32(0x0e000000)
)

// Sizes of each memory area in bytes.
const (
	SizeBIOS   = 0x4000  // 16KB
	SizeEWRAM  = 0x40000 // 256KB
	SizeIWRAM  = 0x8000  // 32KB
	SizeIO     = 0x400   // 1KB
	SizePALRAM = 0x400   // 1KB
	SizeVRAM   = 0x18000 // 96KB
	SizeOAM    = 0x400   // 1KB
	SizeSRAM   = 0x10000 // 64KB

	// largest supported cartridge ROM
	MaxGamePak = 0x2000000 // 32MB
)

func (a Area) String() string {
	switch a {
	case BIOS:
		return "BIOS"
	case EWRAM:
		return "EWRAM"
	case IWRAM:
		return "IWRAM"
	case IO:
		return "IO"
	case PALRAM:
		return "PALRAM"
	case VRAM:
		return "VRAM"
	case OAM:
		return "OAM"
	case GamePak:
		return "GamePak"
	case SRAM:
		return "SRAM"
	}
	return "undefined"
}

// MapAddress returns the memory area an address falls in and the offset of
// the address within that area. The RAM regions mirror throughout their
// 16MB block; the three cartridge wait-state windows fold onto a single ROM
// offset. Addresses that fall in no region return Undefined.
func MapAddress(address uint32) (Area, uint32) {
	switch address >> 24 {
	case 0x00:
		if address < SizeBIOS {
			return BIOS, address
		}
	case 0x02:
		return EWRAM, address & (SizeEWRAM - 1)
	case 0x03:
		return IWRAM, address & (SizeIWRAM - 1)
	case 0x04:
		o := address - OriginIO
		if o < SizeIO {
			return IO, o
		}
	case 0x05:
		return PALRAM, address & (SizePALRAM - 1)
	case 0x06:
		// VRAM is 96KB mirrored in a 128KB window. the upper 32KB of the
		// window maps onto the upper 32KB of VRAM
		o := address & 0x1ffff
		if o >= SizeVRAM {
			o -= 0x8000
		}
		return VRAM, o
	case 0x07:
		return OAM, address & (SizeOAM - 1)
	case 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d:
		return GamePak, address & (MaxGamePak - 1)
	case 0x0e, 0x0f:
		return SRAM, address & (SizeSRAM - 1)
	}
	return Undefined, address
}
