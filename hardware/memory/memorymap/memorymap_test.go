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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestMapAddress(t *testing.T) {
	tests := []struct {
		address uint32
		area    memorymap.Area
		offset  uint32
	}{
		{0x00000000, memorymap.BIOS, 0x0000},
		{0x00003fff, memorymap.BIOS, 0x3fff},
		{0x00004000, memorymap.Undefined, 0x4000},
		{0x02000000, memorymap.EWRAM, 0x0000},
		{0x02040000, memorymap.EWRAM, 0x0000},
		{0x02ffffff, memorymap.EWRAM, 0x3ffff},
		{0x03000000, memorymap.IWRAM, 0x0000},
		{0x03008000, memorymap.IWRAM, 0x0000},
		{0x04000000, memorymap.IO, 0x0000},
		{0x040003ff, memorymap.IO, 0x03ff},
		{0x04000400, memorymap.Undefined, 0x04000400},
		{0x05000400, memorymap.PALRAM, 0x0000},
		{0x06000000, memorymap.VRAM, 0x00000},
		{0x06017fff, memorymap.VRAM, 0x17fff},

		// the upper 32KB of the 128KB VRAM window folds back onto the
		// upper 32KB of VRAM
		{0x06018000, memorymap.VRAM, 0x10000},
		{0x0601ffff, memorymap.VRAM, 0x17fff},
		{0x06020000, memorymap.VRAM, 0x00000},

		{0x07000400, memorymap.OAM, 0x0000},
		{0x08000000, memorymap.GamePak, 0x0000},
		{0x080000a0, memorymap.GamePak, 0x00a0},

		// all three wait state windows map onto the same ROM offset
		{0x0a000010, memorymap.GamePak, 0x0010},
		{0x0c000010, memorymap.GamePak, 0x0010},

		{0x0e000000, memorymap.SRAM, 0x0000},
		{0x0e010000, memorymap.SRAM, 0x0000},
		{0x10000000, memorymap.Undefined, 0x10000000},
	}

	for _, tst := range tests {
		area, offset := memorymap.MapAddress(tst.address)
		if area != tst.area {
			t.Errorf("%#08x mapped to %s (expected %s)", tst.address, area, tst.area)
		}
		test.Equate(t, offset, tst.offset)
	}
}
