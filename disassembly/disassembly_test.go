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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/disassembly"
	"github.com/jetsetilly/gopheradvance/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestARMDisassembly(t *testing.T) {
	tests := []struct {
		raw      uint32
		expected string
	}{
		// the all-zero and all-one words decode like any other pattern
		{0x00000000, "andeq\tR0, R0, R0"},
		{0xffffffff, "swinv\t#0xFFFFFF"},

		// every condition code on SWI
		{0x0f777777, "swieq\t#0x777777"},
		{0x1f777777, "swine\t#0x777777"},
		{0x2f777777, "swihs\t#0x777777"},
		{0x3f777777, "swilo\t#0x777777"},
		{0x4f777777, "swimi\t#0x777777"},
		{0x5f777777, "swipl\t#0x777777"},
		{0x6f777777, "swivs\t#0x777777"},
		{0x7f777777, "swivc\t#0x777777"},
		{0x8f777777, "swihi\t#0x777777"},
		{0x9f777777, "swils\t#0x777777"},
		{0xaf777777, "swige\t#0x777777"},
		{0xbf777777, "swilt\t#0x777777"},
		{0xcf777777, "swigt\t#0x777777"},
		{0xdf777777, "swile\t#0x777777"},
		{0xef777777, "swi\t#0x777777"},
		{0xff777777, "swinv\t#0x777777"},

		// branches. the printed offset is relative to the instruction
		{0x012fff17, "bxeq\tR7"},
		{0x0afffffd, "beq\t#-4"},
		{0x0a000001, "beq\t#12"},
		{0x0bfffffd, "bleq\t#-4"},
		{0x0b000001, "bleq\t#12"},

		{0x06ccccd6, "<unknown>"},

		// data processing, covering every operation and shift form
		{0x02012345, "andeq\tR2, R1, #335544321"},
		{0x00312383, "eoreqs\tR2, R1, R3, lsl #7"},
		{0x004123a3, "subeq\tR2, R1, R3, lsr #7"},
		{0x006123c3, "rsbeq\tR2, R1, R3, asr #7"},
		{0x008123e3, "addeq\tR2, R1, R3, ror #7"},
		{0x00a12063, "adceq\tR2, R1, R3, rrx"},
		{0x00c12003, "sbceq\tR2, R1, R3"},
		{0x00e12413, "rsceq\tR2, R1, R3, lsl R4"},
		{0x01012433, "tsteq\tR1, R3, lsr R4"},
		{0x01212453, "teqeq\tR1, R3, asr R4"},
		{0x01412473, "cmpeq\tR1, R3, ror R4"},
		{0x01612003, "cmneq\tR1, R3"},
		{0x01812003, "orreq\tR2, R1, R3"},
		{0x01a12003, "moveq\tR2, R3"},
		{0x01c12003, "biceq\tR2, R1, R3"},
		{0x01e12003, "mvneq\tR2, R3"},

		// status register access
		{0x010f1000, "mrseq\tR1, CPSR"},
		{0x014f1000, "mrseq\tR1, SPSR"},
		{0x0129f002, "msreq\tCPSR, R2"},
		{0x0128f007, "msreq\tCPSR_flg, R7"},
		{0x0168fff7, "msreq\tSPSR_flg, R7"},
		{0x0328f20f, "msreq\tCPSR_flg, #0xF0000000"},

		// multiplies
		{0x00012394, "muleq\tR1, R4, R3"},
		{0x00112394, "mulseq\tR1, R4, R3"},
		{0x00212394, "mlaeq\tR1, R4, R3, R2"},
		{0x00312394, "mlaseq\tR1, R4, R3, R2"},
		{0x00812394, "umulleq\tR2, R1, R4, R3"},
		{0x00912394, "umullseq\tR2, R1, R4, R3"},
		{0x00a12394, "umlaleq\tR2, R1, R4, R3"},
		{0x00b12394, "umlalseq\tR2, R1, R4, R3"},
		{0x00c12394, "smulleq\tR2, R1, R4, R3"},
		{0x00d12394, "smullseq\tR2, R1, R4, R3"},
		{0x00e12394, "smlaleq\tR2, R1, R4, R3"},
		{0x00f12394, "smlalseq\tR2, R1, R4, R3"},

		// loads and stores
		{0x04012777, "streq\tR2, [R1], #-1911"},
		{0x04112777, "ldreq\tR2, [R1], #-1911"},
		{0xe5912004, "ldr\tR2, [R1, #4]"},
		{0xe5b21008, "ldr\tR1, [R2, #8]!"},
		{0xe7912003, "ldr\tR2, [R1, R3]"},
		{0xe1d130b4, "ldrh\tR3, [R1, #4]"},
		{0xe1c130b4, "strh\tR3, [R1, #4]"},
		{0xe19130d2, "ldrsb\tR3, [R1, R2]"},
		{0xe19130f2, "ldrsh\tR3, [R1, R2]"},

		// swap and block transfers
		{0xe1012092, "swp\tR2, R2, [R1]"},
		{0xe1412092, "swpb\tR2, R2, [R1]"},
		{0xe8a0000e, "stmia\tR0!, {R1, R2, R3}"},
		{0xe9100030, "ldmdb\tR0, {R4, R5}"},
		{0xe92d4003, "stmdb\tSP!, {R0, R1, LR}"},
	}

	for _, tst := range tests {
		ins := instructions.DecodeARM(tst.raw)
		test.Equate(t, disassembly.FormatARM(ins), tst.expected)
	}
}

func TestThumbDisassembly(t *testing.T) {
	tests := []struct {
		raw      uint16
		expected string
	}{
		{0x1888, "adds\tR0, R1, R2"},
		{0x1e48, "subs\tR0, R1, #1"},
		{0x0111, "lsls\tR1, R2, #4"},
		{0x0851, "lsrs\tR1, R2, #1"},
		{0x2005, "movs\tR0, #5"},
		{0x2805, "cmp \tR0, #5"},
		{0x3003, "adds\tR0, #3"},
		{0x4351, "muls\tR1, R2"},
		{0x4011, "ands\tR1, R2"},
		{0x4251, "rsbs\tR1, R2"},
		{0x4091, "lsls\tR1, R2"},
		{0x4448, "add\tR0, R9"},
		{0x4590, "cmp\tR8, R2"},
		{0x46c0, "mov\tR8, R8"},
		{0x4770, "bx\tLR"},
		{0x4905, "ldr\tR1, [PC, #20]"},
		{0x5088, "str \tR0, [R1, R2]"},
		{0x5c88, "ldrb\tR0, [R1, R2]"},
		{0x5288, "strh\tR0, [R1, R2]"},
		{0x5a88, "ldrh\tR0, [R1, R2]"},
		{0x5688, "ldsb\tR0, [R1, R2]"},
		{0x6048, "str \tR0, [R1, #4]"},
		{0x7848, "ldrb\tR0, [R1, #1]"},
		{0x8048, "strh\tR0, [R1, #2]"},
		{0x9101, "str\tR1, [SP, #4]"},
		{0x9901, "ldr\tR1, [SP, #4]"},
		{0xa501, "add\tR5, PC, #4"},
		{0xad01, "add\tR5, SP, #4"},
		{0xb004, "add\tSP, #16"},
		{0xb084, "add\tSP, #-16"},
		{0xb501, "push\t{R0, LR}"},
		{0xbd01, "pop\t{R0, PC}"},
		{0xc107, "stmia\tR1!, {R0, R1, R2}"},
		{0xc907, "ldmia\tR1!, {R0, R1, R2}"},
		{0xdf2a, "swi\t42"},
		{0xd0fe, "beq\t-4"},
		{0xe7fe, "b\t#-4"},
		{0xf000, "bl0\t#0000000000"},
		{0xf802, "bl1\t#0000000004"},
	}

	for _, tst := range tests {
		ins, err := instructions.DecodeThumb(tst.raw)
		test.ExpectedSuccess(t, err)
		test.Equate(t, disassembly.FormatThumb(ins), tst.expected)
	}
}

// mockBus serves decoded words from a map rather than a full memory
// implementation.
type mockBus map[uint32]uint32

func (m mockBus) Read16(address uint32) uint16 {
	return uint16(m[address&^0x03] >> (8 * (address & 0x02)))
}

func (m mockBus) Read32(address uint32) uint32 {
	return m[address]
}

func TestFromMemory(t *testing.T) {
	mem := mockBus{
		0x08000000: 0xea000000, // b #8
		0x08000004: 0xe1a00000, // mov r0, r0
	}

	e := disassembly.FromMemory(mem, 0x08000000, false)
	test.Equate(t, e.String(), "0xEA000000\tb\t#8")

	entries := disassembly.Disassemble(mem, 0x08000000, 0x08000008, false)
	test.Equate(t, len(entries), 2)
	test.Equate(t, entries[1].Instruction, "mov\tR0, R0")
}

func TestUndefinedThumb(t *testing.T) {
	mem := mockBus{0x08000000: 0x0000de00}
	e := disassembly.FromMemory(mem, 0x08000000, true)
	test.Equate(t, e.Instruction, "<unknown>")
}
