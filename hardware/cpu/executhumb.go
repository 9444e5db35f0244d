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

package cpu

import (
	"math/bits"

	"github.com/jetsetilly/gopheradvance/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheradvance/hardware/cpu/registers"
)

// Thumb instructions reuse the ARM ALU and barrel shifter. Most formats
// reduce to a data processing operation with the S bit implied.
func (mc *CPU) executeThumb(addr uint32, ins instructions.Thumb) (action, error) {
	switch ins.Op {
	case instructions.ThumbAddSub:
		var b uint32
		if ins.ImmediateRn() {
			b = uint32(ins.Rn())
		} else {
			b = mc.Reg.R(ins.Rn())
		}
		r, _ := mc.dataProcessing(ins.AddSubOp(), mc.Reg.R(ins.Rs()), b, false, true)
		mc.Reg.SetR(ins.Rd(), r)

	case instructions.ThumbMoveShifted:
		v, carry := mc.barrelShift(mc.Reg.R(ins.Rs()), ins.MoveShift())
		mc.Reg.SetR(ins.Rd(), v)
		mc.logicFlags(v, carry)

	case instructions.ThumbImmediate:
		op := ins.ImmediateOp()
		r, writeback := mc.dataProcessing(op, mc.Reg.R(ins.Rm()), ins.Imm8(), mc.Reg.Status.Carry, true)
		if writeback {
			mc.Reg.SetR(ins.Rm(), r)
		}

	case instructions.ThumbMul:
		r := mc.Reg.R(ins.Rd()) * mc.Reg.R(ins.Rs())
		mc.Reg.SetR(ins.Rd(), r)
		mc.mulFlags(r&0x80000000 != 0, r == 0)

	case instructions.ThumbALU:
		op, shift := ins.ALUOp()

		a := mc.Reg.R(ins.Rd())
		var b uint32
		var shiftCarry bool

		if shift.Kind == instructions.ShiftNone {
			b = mc.Reg.R(ins.Rs())
			shiftCarry = mc.Reg.Status.Carry
			if op == instructions.OpRSB {
				// NEG Rd, Rs
				a = mc.Reg.R(ins.Rs())
				b = 0
			}
		} else {
			// the shift-by-register operations are a MOV of the shifted Rd
			b, shiftCarry = mc.barrelShift(a, shift)
		}

		r, writeback := mc.dataProcessing(op, a, b, shiftCarry, true)
		if writeback {
			mc.Reg.SetR(ins.Rd(), r)
		}

	case instructions.ThumbHiReg:
		return mc.execHiReg(ins)

	case instructions.ThumbLoadPC:
		ea := (mc.Reg.PC() &^ 0x03) + ins.Imm10()
		mc.Reg.SetR(ins.Rd(), mc.mem.Read32(ea))

	case instructions.ThumbLoadStoreReg:
		ea := mc.Reg.R(ins.Rs()) + mc.Reg.R(ins.Rn())
		if ins.Load() {
			if ins.TransferBytes() {
				mc.Reg.SetR(ins.Rd(), uint32(mc.mem.Read8(ea)))
			} else {
				mc.Reg.SetR(ins.Rd(), mc.mem.Read32(ea))
			}
		} else {
			if ins.TransferBytes() {
				mc.mem.Write8(ea, uint8(mc.Reg.R(ins.Rd())))
			} else {
				mc.mem.Write32(ea, mc.Reg.R(ins.Rd()))
			}
		}

	case instructions.ThumbHalfwordReg:
		ea := mc.Reg.R(ins.Rs()) + mc.Reg.R(ins.Rn())
		switch ins.HalfwordOp() {
		case instructions.StoreHalf:
			mc.mem.Write16(ea, uint16(mc.Reg.R(ins.Rd())))
		case instructions.LoadHalf:
			mc.Reg.SetR(ins.Rd(), uint32(mc.mem.Read16(ea)))
		case instructions.LoadSignedByte:
			mc.Reg.SetR(ins.Rd(), uint32(int32(int8(mc.mem.Read8(ea)))))
		case instructions.LoadSignedHalf:
			mc.Reg.SetR(ins.Rd(), uint32(int32(int16(mc.mem.Read16(ea)))))
		}

	case instructions.ThumbLoadStoreImm:
		var ea uint32
		if ins.TransferBytesImm() {
			ea = mc.Reg.R(ins.Rs()) + ins.Imm5()
		} else {
			ea = mc.Reg.R(ins.Rs()) + ins.Imm7()
		}
		if ins.Load() {
			if ins.TransferBytesImm() {
				mc.Reg.SetR(ins.Rd(), uint32(mc.mem.Read8(ea)))
			} else {
				mc.Reg.SetR(ins.Rd(), mc.mem.Read32(ea))
			}
		} else {
			if ins.TransferBytesImm() {
				mc.mem.Write8(ea, uint8(mc.Reg.R(ins.Rd())))
			} else {
				mc.mem.Write32(ea, mc.Reg.R(ins.Rd()))
			}
		}

	case instructions.ThumbHalfwordImm:
		ea := mc.Reg.R(ins.Rs()) + ins.Imm6()
		if ins.Load() {
			mc.Reg.SetR(ins.Rd(), uint32(mc.mem.Read16(ea)))
		} else {
			mc.mem.Write16(ea, uint16(mc.Reg.R(ins.Rd())))
		}

	case instructions.ThumbLoadStoreSP:
		ea := mc.Reg.R(registers.SP) + ins.Imm10()
		if ins.Load() {
			mc.Reg.SetR(ins.Rm(), mc.mem.Read32(ea))
		} else {
			mc.mem.Write32(ea, mc.Reg.R(ins.Rm()))
		}

	case instructions.ThumbCalcAddress:
		var base uint32
		if ins.BaseSP() {
			base = mc.Reg.R(registers.SP)
		} else {
			base = mc.Reg.PC() &^ 0x03
		}
		mc.Reg.SetR(ins.Rm(), base+ins.Imm10())

	case instructions.ThumbAddSP:
		sp := mc.Reg.R(registers.SP)
		offset := uint32(ins.Raw&0x7f) << 2
		if ins.Raw&0x80 == 0 {
			sp += offset
		} else {
			sp -= offset
		}
		mc.Reg.SetR(registers.SP, sp)

	case instructions.ThumbPushPop:
		return mc.execPushPop(ins)

	case instructions.ThumbBlockTransfer:
		return mc.execThumbBlockTransfer(ins)

	case instructions.ThumbSWI:
		mc.exception(ExceptionSoftwareInterrupt, addr+2)
		return actionFlush, nil

	case instructions.ThumbCondBranch:
		st := mc.Reg.Status
		if ins.Condition().Passed(st.Negative, st.Zero, st.Carry, st.Overflow) {
			mc.Reg.SetPC(mc.Reg.PC() + uint32(ins.Offset9()))
			return actionFlush, nil
		}

	case instructions.ThumbBranch:
		mc.Reg.SetPC(mc.Reg.PC() + uint32(ins.Offset12()))
		return actionFlush, nil

	case instructions.ThumbLongBranch:
		return mc.execLongBranch(addr, ins), nil
	}

	return actionNone, nil
}

func (mc *CPU) execHiReg(ins instructions.Thumb) (action, error) {
	rd := ins.Hd()
	rs := ins.Hs()

	switch ins.HiRegOp() {
	case instructions.HiRegAdd:
		mc.Reg.SetR(rd, mc.Reg.R(rd)+mc.Reg.R(rs))
		if rd == registers.PC {
			mc.Reg.SetPC(mc.Reg.PC() &^ 0x01)
			return actionFlush, nil
		}

	case instructions.HiRegCmp:
		// the only high register operation that sets flags
		mc.sub(mc.Reg.R(rd), mc.Reg.R(rs), false, true)

	case instructions.HiRegMov:
		mc.Reg.SetR(rd, mc.Reg.R(rs))
		if rd == registers.PC {
			mc.Reg.SetPC(mc.Reg.PC() &^ 0x01)
			return actionFlush, nil
		}

	case instructions.HiRegBx:
		return mc.execBranchExchange(mc.Reg.R(rs)), nil
	}

	return actionNone, nil
}

func (mc *CPU) execPushPop(ins instructions.Thumb) (action, error) {
	list := ins.RegisterList()
	count := uint32(bits.OnesCount8(list))
	if ins.PCLRBit() {
		count++
	}

	sp := mc.Reg.R(registers.SP)

	if !ins.Load() {
		// push
		sp -= count * 4
		mc.Reg.SetR(registers.SP, sp)

		ea := sp
		for reg := 0; reg < 8; reg++ {
			if list&(1<<reg) != 0 {
				mc.mem.Write32(ea, mc.Reg.R(reg))
				ea += 4
			}
		}
		if ins.PCLRBit() {
			mc.mem.Write32(ea, mc.Reg.R(registers.LR))
		}
		return actionNone, nil
	}

	// pop
	ea := sp
	for reg := 0; reg < 8; reg++ {
		if list&(1<<reg) != 0 {
			mc.Reg.SetR(reg, mc.mem.Read32(ea))
			ea += 4
		}
	}

	act := actionNone
	if ins.PCLRBit() {
		mc.Reg.SetPC(mc.mem.Read32(ea) &^ 0x01)
		act = actionFlush
	}

	mc.Reg.SetR(registers.SP, sp+count*4)
	return act, nil
}

func (mc *CPU) execThumbBlockTransfer(ins instructions.Thumb) (action, error) {
	list := ins.RegisterList()
	base := mc.Reg.R(ins.Rm())

	// writeback happens before the transfer. a load that includes the
	// base register overwrites the written back value
	mc.Reg.SetR(ins.Rm(), base+uint32(bits.OnesCount8(list))*4)

	ea := base
	for reg := 0; reg < 8; reg++ {
		if list&(1<<reg) == 0 {
			continue
		}
		if ins.Load() {
			mc.Reg.SetR(reg, mc.mem.Read32(ea))
		} else {
			mc.mem.Write32(ea, mc.Reg.R(reg))
		}
		ea += 4
	}

	return actionNone, nil
}

// execLongBranch implements the two halves of the BL instruction pair. The
// first half stages the upper bits of the target in LR. The second half
// completes the branch and leaves the return address in LR with bit 0 set.
func (mc *CPU) execLongBranch(addr uint32, ins instructions.Thumb) action {
	if !ins.LowHalf() {
		offset := uint32(int32(ins.LongOffset()<<21)>>21) << 12
		mc.Reg.SetR(registers.LR, mc.Reg.PC()+offset)
		return actionNone
	}

	target := mc.Reg.R(registers.LR) + ins.LongOffset()<<1
	mc.Reg.SetR(registers.LR, (addr+2)|0x01)
	mc.Reg.SetPC(target &^ 0x01)
	return actionFlush
}
