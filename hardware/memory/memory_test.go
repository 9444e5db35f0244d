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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestReadWriteRoundTrip(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write32(0x03000010, 0x12345678)
	test.Equate(t, mem.Read32(0x03000010), uint32(0x12345678))
	test.Equate(t, mem.Read16(0x03000010), uint16(0x5678))
	test.Equate(t, mem.Read16(0x03000012), uint16(0x1234))
	test.Equate(t, mem.Read8(0x03000013), uint8(0x12))

	mem.Write16(0x02000000, 0xbeef)
	test.Equate(t, mem.Read8(0x02000000), uint8(0xef))
	test.Equate(t, mem.Read8(0x02000001), uint8(0xbe))
}

func TestMirrors(t *testing.T) {
	mem := memory.NewMemory()

	// IWRAM mirrors every 32KB
	mem.Write8(0x03000020, 0xaa)
	test.Equate(t, mem.Read8(0x03008020), uint8(0xaa))
	test.Equate(t, mem.Read8(0x03ff8020), uint8(0xaa))

	// EWRAM mirrors every 256KB
	mem.Write8(0x02000100, 0xbb)
	test.Equate(t, mem.Read8(0x02040100), uint8(0xbb))
}

func TestMisalignedRead(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write32(0x03000000, 0x11223344)

	// a misaligned word read returns the aligned word rotated so that the
	// addressed byte lands in the low lane
	test.Equate(t, mem.Read32(0x03000001), uint32(0x44112233))
	test.Equate(t, mem.Read32(0x03000002), uint32(0x33441122))
	test.Equate(t, mem.Read32(0x03000003), uint32(0x22334411))

	// misaligned halfword reads are rotated the same way
	test.Equate(t, mem.Read16(0x03000001), uint16(0x4433))
	test.Equate(t, mem.Read16(0x03000002), uint16(0x1122))
	test.Equate(t, mem.Read16(0x03000003), uint16(0x2211))
}

func TestOpenBus(t *testing.T) {
	mem := memory.NewMemory()

	test.Equate(t, mem.Read8(0x00004000), uint8(0xff))
	test.Equate(t, mem.Read16(0x10000000), uint16(0xffff))
	test.Equate(t, mem.Read32(0x04000400), uint32(0xffffffff))

	// cartridge windows with no cartridge attached are open bus too
	test.Equate(t, mem.Read32(0x08000000), uint32(0xffffffff))
}

func TestDroppedWrites(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write8(0x00000100, 0x42)
	test.Equate(t, mem.Read8(0x00000100), uint8(0x00))

	attachTestCart(t, mem)
	mem.Write32(0x08000000, 0xdeadbeef)
	v := mem.Read32(0x08000000)
	if v == 0xdeadbeef {
		t.Errorf("write to cartridge ROM was not dropped")
	}
}

func TestSRAM(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write8(0x0e000005, 0x99)
	test.Equate(t, mem.Read8(0x0e000005), uint8(0x99))

	// SRAM mirrors through the whole region
	test.Equate(t, mem.Read8(0x0e010005), uint8(0x99))

	// wide writes to the 8-bit SRAM bus store a single byte
	mem.Write32(0x0e000010, 0x12345678)
	test.Equate(t, mem.Read8(0x0e000010), uint8(0x78))
	test.Equate(t, mem.Read8(0x0e000011), uint8(0x00))
}

func TestPoke(t *testing.T) {
	mem := memory.NewMemory()

	// pokes can reach into the BIOS area
	test.ExpectedSuccess(t, mem.Poke(0x00000000, 0xea))
	b, ok := mem.Peek(0x00000000)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, b, uint8(0xea))
}

// attachTestCart builds a minimal but valid ROM image and attaches it.
func attachTestCart(t *testing.T, mem *memory.Memory) {
	t.Helper()

	rom := make([]byte, 0x100)
	copy(rom[0xa0:], "TESTROM")
	rom[0xb2] = 0x96
	chk := uint8(0)
	for _, b := range rom[0xa0:0xbd] {
		chk -= b
	}
	rom[0xbd] = chk - 0x19

	cartload := cartridgeloader.Loader{Filename: "test.gba", Data: rom}
	err := mem.Cart.Attach(cartload)
	if err != nil {
		t.Fatalf("cartridge attach failed: %v", err)
	}
}
