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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestARMDecodeClasses(t *testing.T) {
	classes := []struct {
		raw uint32
		op  instructions.ARMOpcode
	}{
		{0xe12fff17, instructions.ARMBX},
		{0xea000001, instructions.ARMBranch},
		{0xeb000001, instructions.ARMBranch},
		{0xe6cccd76, instructions.ARMUnknown},
		{0xe1012093, instructions.ARMSWP},
		{0xe0012394, instructions.ARMMultiply},
		{0xe0812394, instructions.ARMMultiplyLong},
		{0xe10f1000, instructions.ARMMRS},
		{0xe129f002, instructions.ARMMSRReg},
		{0xe128f007, instructions.ARMMSRFlags},
		{0xe5912000, instructions.ARMLoadStore},
		{0xe19120b3, instructions.ARMHalfwordReg},
		{0xe1d124b3, instructions.ARMHalfwordImm},
		{0xe8bd000f, instructions.ARMBlockTransfer},
		{0xef777777, instructions.ARMSWI},
		{0xee012304, instructions.ARMCoprocData},
		{0xee012314, instructions.ARMCoprocRegister},
		{0xec012300, instructions.ARMCoprocTransfer},
		{0xe0812003, instructions.ARMDataProcessing},
		{0xe3a02012, instructions.ARMDataProcessing},
	}

	for _, c := range classes {
		ins := instructions.DecodeARM(c.raw)
		test.Equate(t, int(ins.Op), int(c.op))
	}
}

func TestARMFields(t *testing.T) {
	// add r2, r1, r3, lsl #7 with the S bit clear
	ins := instructions.DecodeARM(0xe0812383)
	test.Equate(t, ins.Rn(), 1)
	test.Equate(t, ins.Rd(), 2)
	test.Equate(t, ins.Rm(), 3)
	test.Equate(t, ins.SetFlags(), false)
	test.Equate(t, ins.DataOp().String(), "add")
	test.Equate(t, ins.Shift().String(), "lsl #7")

	// rotated immediate: mov r2, #0xf0000000
	ins = instructions.DecodeARM(0xe3a0220f)
	test.Equate(t, ins.ImmediateOperand(), true)
	test.Equate(t, ins.RotatedImmediate(), uint32(0xf0000000))
}

func TestARMBranchOffset(t *testing.T) {
	// offset field 0xfffffd is -3 words, so -12 bytes
	ins := instructions.DecodeARM(0xeafffffd)
	test.Equate(t, int(ins.BranchOffset()), -12)

	ins = instructions.DecodeARM(0xea000001)
	test.Equate(t, int(ins.BranchOffset()), 4)

	// offset of zero
	ins = instructions.DecodeARM(0xea000000)
	test.Equate(t, int(ins.BranchOffset()), 0)
}

func TestConditionTable(t *testing.T) {
	// n, z, c, v
	test.Equate(t, instructions.EQ.Passed(false, true, false, false), true)
	test.Equate(t, instructions.EQ.Passed(false, false, false, false), false)
	test.Equate(t, instructions.NE.Passed(false, false, false, false), true)
	test.Equate(t, instructions.HS.Passed(false, false, true, false), true)
	test.Equate(t, instructions.LO.Passed(false, false, true, false), false)
	test.Equate(t, instructions.MI.Passed(true, false, false, false), true)
	test.Equate(t, instructions.PL.Passed(true, false, false, false), false)
	test.Equate(t, instructions.VS.Passed(false, false, false, true), true)
	test.Equate(t, instructions.VC.Passed(false, false, false, true), false)
	test.Equate(t, instructions.HI.Passed(false, false, true, false), true)
	test.Equate(t, instructions.HI.Passed(false, true, true, false), false)
	test.Equate(t, instructions.LS.Passed(false, true, true, false), true)
	test.Equate(t, instructions.GE.Passed(true, false, false, true), true)
	test.Equate(t, instructions.GE.Passed(true, false, false, false), false)
	test.Equate(t, instructions.LT.Passed(true, false, false, false), true)
	test.Equate(t, instructions.GT.Passed(false, false, false, false), true)
	test.Equate(t, instructions.GT.Passed(false, true, false, false), false)
	test.Equate(t, instructions.LE.Passed(false, true, false, false), true)
	test.Equate(t, instructions.AL.Passed(false, false, false, false), true)
	test.Equate(t, instructions.NV.Passed(true, true, true, true), false)
}

func TestThumbDecodeClasses(t *testing.T) {
	classes := []struct {
		raw uint16
		op  instructions.ThumbOpcode
	}{
		{0x1880, instructions.ThumbAddSub},
		{0x0111, instructions.ThumbMoveShifted},
		{0x2205, instructions.ThumbImmediate},
		{0x4351, instructions.ThumbMul},
		{0x4011, instructions.ThumbALU},
		{0x46c0, instructions.ThumbHiReg},
		{0x4904, instructions.ThumbLoadPC},
		{0x5088, instructions.ThumbLoadStoreReg},
		{0x5288, instructions.ThumbHalfwordReg},
		{0x6808, instructions.ThumbLoadStoreImm},
		{0x8808, instructions.ThumbHalfwordImm},
		{0x9801, instructions.ThumbLoadStoreSP},
		{0xa801, instructions.ThumbCalcAddress},
		{0xb082, instructions.ThumbAddSP},
		{0xb510, instructions.ThumbPushPop},
		{0xc803, instructions.ThumbBlockTransfer},
		{0xdf05, instructions.ThumbSWI},
		{0xd0fe, instructions.ThumbCondBranch},
		{0xe7fe, instructions.ThumbBranch},
		{0xf000, instructions.ThumbLongBranch},
		{0xf801, instructions.ThumbLongBranch},
	}

	for _, c := range classes {
		ins, err := instructions.DecodeThumb(c.raw)
		test.ExpectedSuccess(t, err)
		test.Equate(t, int(ins.Op), int(c.op))
	}
}

func TestThumbUndefined(t *testing.T) {
	// the "b always" hole in the conditional branch space
	_, err := instructions.DecodeThumb(0xde00)
	test.ExpectedFailure(t, err)
}

func TestThumbFields(t *testing.T) {
	// add r0, r1, r2
	ins, err := instructions.DecodeThumb(0x1888)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Rd(), 0)
	test.Equate(t, ins.Rs(), 1)
	test.Equate(t, ins.Rn(), 2)
	test.Equate(t, ins.AddSubOp().String(), "add")
	test.Equate(t, ins.ImmediateRn(), false)

	// mov r8, r8 (the pipeline nop)
	ins, err = instructions.DecodeThumb(instructions.ThumbNop)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Op), int(instructions.ThumbHiReg))
	test.Equate(t, ins.Hd(), 8)
	test.Equate(t, ins.Hs(), 8)
	test.Equate(t, int(ins.HiRegOp()), int(instructions.HiRegMov))

	// conditional branch offset is sign extended and doubled
	ins, err = instructions.DecodeThumb(0xd0fe)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Offset9()), -4)

	// unconditional branch offset
	ins, err = instructions.DecodeThumb(0xe7fe)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Offset12()), -4)
}

func TestShiftDecode(t *testing.T) {
	// the imm==0 special encodings
	test.Equate(t, instructions.DecodeImmShift(0, 0).String(), "")
	test.Equate(t, instructions.DecodeImmShift(1, 0).String(), "lsr #32")
	test.Equate(t, instructions.DecodeImmShift(2, 0).String(), "asr #32")
	test.Equate(t, instructions.DecodeImmShift(3, 0).String(), "rrx")

	test.Equate(t, instructions.DecodeImmShift(0, 7).String(), "lsl #7")
	test.Equate(t, instructions.DecodeImmShift(3, 7).String(), "ror #7")
	test.Equate(t, instructions.DecodeRegShift(1, 4).String(), "lsr R4")
}
