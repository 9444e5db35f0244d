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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopheradvance/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheradvance/hardware/cpu/registers"
)

// FormatThumb returns the assembly text for a decoded Thumb instruction.
// The mnemonic and the operands are separated by a tab.
//
// Byte and word loads pad the mnemonic to the same width, so columns of
// disassembly line up.
func FormatThumb(ins instructions.Thumb) string {
	switch ins.Op {
	case instructions.ThumbAddSub:
		rhs := registers.Name(ins.Rn())
		if ins.ImmediateRn() {
			rhs = fmt.Sprintf("#%d", ins.Rn())
		}
		return fmt.Sprintf("%ss\t%s, %s, %s", ins.AddSubOp(),
			registers.Name(ins.Rd()), registers.Name(ins.Rs()), rhs)

	case instructions.ThumbMoveShifted:
		sh := ins.MoveShift()
		amount := sh.Amount
		switch sh.Kind {
		case instructions.LSR32, instructions.ASR32:
			amount = 32
		}
		return fmt.Sprintf("%ss\t%s, %s, #%d", sh.Name(),
			registers.Name(ins.Rd()), registers.Name(ins.Rs()), amount)

	case instructions.ThumbImmediate:
		op := ins.ImmediateOp()
		s := "s"
		if op.IsTest() {
			s = " "
		}
		return fmt.Sprintf("%s%s\t%s, #%d", op, s, registers.Name(ins.Rm()), ins.Imm8())

	case instructions.ThumbMul:
		return fmt.Sprintf("muls\t%s, %s", registers.Name(ins.Rd()), registers.Name(ins.Rs()))

	case instructions.ThumbALU:
		op, sh := ins.ALUOp()
		rd := registers.Name(ins.Rd())
		rs := registers.Name(ins.Rs())
		if op == instructions.OpMOV && sh.Kind != instructions.ShiftNone {
			return fmt.Sprintf("%ss\t%s, %s", sh.Name(), rd, rs)
		}
		s := "s"
		if op.IsTest() {
			s = " "
		}
		return fmt.Sprintf("%s%s\t%s, %s", op, s, rd, rs)

	case instructions.ThumbHiReg:
		hd := registers.Name(ins.Hd())
		hs := registers.Name(ins.Hs())
		switch ins.HiRegOp() {
		case instructions.HiRegAdd:
			return fmt.Sprintf("add\t%s, %s", hd, hs)
		case instructions.HiRegCmp:
			return fmt.Sprintf("cmp\t%s, %s", hd, hs)
		case instructions.HiRegMov:
			return fmt.Sprintf("mov\t%s, %s", hd, hs)
		}
		return fmt.Sprintf("bx\t%s", hs)

	case instructions.ThumbLoadPC:
		return fmt.Sprintf("ldr\t%s, [PC, #%d]", registers.Name(ins.Rm()), ins.Imm10())

	case instructions.ThumbLoadStoreReg:
		return fmt.Sprintf("%s\t%s, [%s, %s]", loadStoreMnemonic(ins),
			registers.Name(ins.Rd()), registers.Name(ins.Rs()), registers.Name(ins.Rn()))

	case instructions.ThumbHalfwordReg:
		var mn string
		switch ins.HalfwordOp() {
		case instructions.StoreHalf:
			mn = "strh"
		case instructions.LoadHalf:
			mn = "ldrh"
		case instructions.LoadSignedByte:
			mn = "ldsb"
		case instructions.LoadSignedHalf:
			mn = "ldsh"
		}
		return fmt.Sprintf("%s\t%s, [%s, %s]", mn,
			registers.Name(ins.Rd()), registers.Name(ins.Rs()), registers.Name(ins.Rn()))

	case instructions.ThumbLoadStoreImm:
		mn := "str"
		if ins.Load() {
			mn = "ldr"
		}
		imm := ins.Imm7()
		if ins.TransferBytesImm() {
			mn += "b"
			imm = ins.Imm5()
		} else {
			mn += " "
		}
		return fmt.Sprintf("%s\t%s, [%s, #%d]", mn,
			registers.Name(ins.Rd()), registers.Name(ins.Rs()), imm)

	case instructions.ThumbHalfwordImm:
		mn := "strh"
		if ins.Load() {
			mn = "ldrh"
		}
		return fmt.Sprintf("%s\t%s, [%s, #%d]", mn,
			registers.Name(ins.Rd()), registers.Name(ins.Rs()), ins.Imm6())

	case instructions.ThumbLoadStoreSP:
		mn := "str"
		if ins.Load() {
			mn = "ldr"
		}
		return fmt.Sprintf("%s\t%s, [SP, #%d]", mn, registers.Name(ins.Rm()), ins.Imm10())

	case instructions.ThumbCalcAddress:
		base := "PC"
		if ins.BaseSP() {
			base = "SP"
		}
		return fmt.Sprintf("add\t%s, %s, #%d", registers.Name(ins.Rm()), base, ins.Imm10())

	case instructions.ThumbAddSP:
		offset := int32(ins.Raw&0x7f) << 2
		if ins.Raw&0x80 != 0 {
			offset = -offset
		}
		return fmt.Sprintf("add\tSP, #%d", offset)

	case instructions.ThumbPushPop:
		mn := "push"
		extra := -1
		if ins.Load() {
			mn = "pop"
			if ins.PCLRBit() {
				extra = registers.PC
			}
		} else if ins.PCLRBit() {
			extra = registers.LR
		}
		return fmt.Sprintf("%s\t%s", mn, registerList(uint16(ins.RegisterList()), extra))

	case instructions.ThumbBlockTransfer:
		mn := "stmia"
		if ins.Load() {
			mn = "ldmia"
		}
		return fmt.Sprintf("%s\t%s!, %s", mn, registers.Name(ins.Rm()),
			registerList(uint16(ins.RegisterList()), -1))

	case instructions.ThumbSWI:
		return fmt.Sprintf("swi\t%d", ins.Comment())

	case instructions.ThumbCondBranch:
		return fmt.Sprintf("b%s\t%d", ins.Condition(), ins.Offset9())

	case instructions.ThumbBranch:
		return fmt.Sprintf("b\t#%d", ins.Offset12())

	case instructions.ThumbLongBranch:
		if ins.LowHalf() {
			return fmt.Sprintf("bl1\t#%010X", ins.LongOffset()<<1)
		}
		return fmt.Sprintf("bl0\t#%010X", uint32(int32(ins.LongOffset()<<21)>>21)<<12)
	}

	return "<unknown>"
}

func loadStoreMnemonic(ins instructions.Thumb) string {
	mn := "str"
	if ins.Load() {
		mn = "ldr"
	}
	if ins.TransferBytes() {
		return mn + "b"
	}
	return mn + " "
}
