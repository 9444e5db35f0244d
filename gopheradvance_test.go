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

package main_test

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/hardware"
)

// benchmarkROM is a cartridge image with a valid header and a busy loop at
// the entry point.
func benchmarkROM() []byte {
	rom := make([]byte, 0x200)

	program := []uint32{
		0xe3a00000, // mov r0, #0
		0xe2800001, // add r0, r0, #1
		0xeafffffd, // b -12
	}
	for i, p := range program {
		binary.LittleEndian.PutUint32(rom[i*4:], p)
	}

	copy(rom[0xa0:], "BENCH")
	copy(rom[0xac:], "ATSE")
	copy(rom[0xb0:], "01")
	rom[0xb2] = 0x96
	chk := uint8(0)
	for _, b := range rom[0xa0:0xbd] {
		chk -= b
	}
	rom[0xbd] = chk - 0x19

	return rom
}

func BenchmarkCPU(b *testing.B) {
	gba := hardware.NewGBA()

	err := gba.AttachCartridge(cartridgeloader.Loader{Filename: "bench.gba", Data: benchmarkROM()})
	if err != nil {
		b.Fatalf("error preparing GBA: %v", err)
	}
	gba.BootDirect()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := gba.Step(); err != nil {
			b.Fatal(err)
		}
	}
}
