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

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheradvance/hardware/cpu/registers"
	"github.com/jetsetilly/gopheradvance/logger"
)

func (mc *CPU) executeARM(addr uint32, ins instructions.ARM) (action, error) {
	switch ins.Op {
	case instructions.ARMBX:
		return mc.execBranchExchange(mc.Reg.R(ins.Rm())), nil

	case instructions.ARMBranch:
		if ins.Link() {
			mc.Reg.SetR(registers.LR, addr+4)
		}
		mc.Reg.SetPC(mc.Reg.PC() + uint32(ins.BranchOffset()))
		return actionFlush, nil

	case instructions.ARMSWP:
		return mc.execSwap(ins)

	case instructions.ARMMultiply:
		return mc.execMultiply(ins)

	case instructions.ARMMultiplyLong:
		return mc.execMultiplyLong(ins)

	case instructions.ARMMRS:
		return mc.execStatusRead(ins)

	case instructions.ARMMSRReg, instructions.ARMMSRFlags:
		return mc.execStatusWrite(ins)

	case instructions.ARMLoadStore:
		return mc.execLoadStore(ins)

	case instructions.ARMHalfwordReg, instructions.ARMHalfwordImm:
		return mc.execHalfword(ins)

	case instructions.ARMBlockTransfer:
		return mc.execBlockTransfer(ins)

	case instructions.ARMSWI:
		mc.exception(ExceptionSoftwareInterrupt, addr+4)
		return actionFlush, nil

	case instructions.ARMCoprocData, instructions.ARMCoprocRegister, instructions.ARMCoprocTransfer:
		// the GBA has no coprocessors. accesses take the undefined trap
		mc.exception(ExceptionUndefined, addr+4)
		return actionFlush, nil

	case instructions.ARMDataProcessing:
		return mc.execDataProcessing(addr, ins)
	}

	logger.Logf("cpu", "undecodable opcode %#08x at %#08x", ins.Raw, addr)
	mc.exception(ExceptionUndefined, addr+4)
	return actionFlush, nil
}

// execBranchExchange implements BX, switching between ARM and Thumb state
// on bit 0 of the target.
func (mc *CPU) execBranchExchange(target uint32) action {
	if target&0x01 == 0x01 {
		mc.Reg.Status.Thumb = true
		mc.Reg.SetPC(target &^ 0x01)
	} else {
		mc.Reg.Status.Thumb = false
		mc.Reg.SetPC(target &^ 0x03)
	}
	return actionFlush
}

func (mc *CPU) execSwap(ins instructions.ARM) (action, error) {
	ea := mc.Reg.R(ins.Rn())
	src := mc.Reg.R(ins.Rm())

	if ins.TransferBytes() {
		old := mc.mem.Read8(ea)
		mc.mem.Write8(ea, uint8(src))
		mc.Reg.SetR(ins.Rd(), uint32(old))
	} else {
		old := mc.mem.Read32(ea)
		mc.mem.Write32(ea, src)
		mc.Reg.SetR(ins.Rd(), old)
	}

	return actionNone, nil
}

func (mc *CPU) execMultiply(ins instructions.ARM) (action, error) {
	// the destination register occupies the Rn slot of the instruction
	r := mc.Reg.R(ins.Rm()) * mc.Reg.R(ins.Rs())
	if ins.Accumulate() {
		r += mc.Reg.R(ins.Rd())
	}
	mc.Reg.SetR(ins.Rn(), r)

	if ins.SetFlags() {
		mc.mulFlags(r&0x80000000 != 0, r == 0)
	}

	return actionNone, nil
}

func (mc *CPU) execMultiplyLong(ins instructions.ARM) (action, error) {
	hi := ins.Rn()
	lo := ins.Rd()

	var r uint64
	if ins.Signed() {
		r = uint64(int64(int32(mc.Reg.R(ins.Rm()))) * int64(int32(mc.Reg.R(ins.Rs()))))
	} else {
		r = uint64(mc.Reg.R(ins.Rm())) * uint64(mc.Reg.R(ins.Rs()))
	}

	if ins.Accumulate() {
		r += uint64(mc.Reg.R(hi))<<32 | uint64(mc.Reg.R(lo))
	}

	mc.Reg.SetR(hi, uint32(r>>32))
	mc.Reg.SetR(lo, uint32(r))

	if ins.SetFlags() {
		mc.mulFlags(r&0x8000000000000000 != 0, r == 0)
	}

	return actionNone, nil
}

func (mc *CPU) execStatusRead(ins instructions.ARM) (action, error) {
	if ins.SPSRAccess() {
		spsr, err := mc.Reg.SPSR()
		if err != nil {
			return actionNone, err
		}
		mc.Reg.SetR(ins.Rd(), spsr.Value())
		return actionNone, nil
	}

	mc.Reg.SetR(ins.Rd(), mc.Reg.Status.Value())
	return actionNone, nil
}

func (mc *CPU) execStatusWrite(ins instructions.ARM) (action, error) {
	var v uint32
	if ins.ImmediateOperand() {
		v = ins.RotatedImmediate()
	} else {
		v = mc.Reg.R(ins.Rm())
	}

	flagsOnly := ins.Op == instructions.ARMMSRFlags

	if ins.SPSRAccess() {
		spsr, err := mc.Reg.SPSR()
		if err != nil {
			return actionNone, err
		}
		if flagsOnly {
			spsr.LoadFlags(v)
		} else {
			if err := spsr.Load(v); err != nil {
				return actionNone, err
			}
		}
		return actionNone, mc.Reg.SetSPSR(spsr)
	}

	// unprivileged code can only touch the condition flags of the CPSR. a
	// control field write from User mode is restricted to the flag bits
	// rather than rejected
	if flagsOnly || !mc.Reg.Status.Mode.Privileged() {
		mc.Reg.Status.LoadFlags(v)
		return actionNone, nil
	}

	return actionNone, mc.writeCPSR(v)
}

// writeCPSR loads a full 32-bit value into the CPSR, switching register
// banks if the mode field changes.
func (mc *CPU) writeCPSR(v uint32) error {
	m := registers.Mode(v & 0b11111)
	if !m.Valid() {
		return curated.Errorf(registers.InvalidMode, uint32(m))
	}
	mc.Reg.SetMode(m)
	return mc.Reg.Status.Load(v)
}

// restoreCPSR copies the current mode's SPSR into the CPSR. Used when an
// instruction with the S bit set loads the program counter.
func (mc *CPU) restoreCPSR() error {
	spsr, err := mc.Reg.SPSR()
	if err != nil {
		return err
	}
	mc.Reg.SetMode(spsr.Mode)
	mc.Reg.Status = spsr
	return nil
}

func (mc *CPU) execDataProcessing(addr uint32, ins instructions.ARM) (action, error) {
	op := ins.DataOp()
	setFlags := ins.SetFlags()

	var b uint32
	shiftCarry := mc.Reg.Status.Carry

	if ins.ImmediateOperand() {
		b = ins.RotatedImmediate()
		if rot := (ins.Raw >> 8) & 0xf; rot != 0 {
			shiftCarry = b&0x80000000 != 0
		}
	} else {
		v := mc.Reg.R(ins.Rm())

		// when the shift amount comes from a register the prefetch has
		// advanced a further word by the time the operands are read
		if ins.ShiftByRegister() && ins.Rm() == registers.PC {
			v += 4
		}

		b, shiftCarry = mc.barrelShift(v, ins.Shift())
	}

	a := mc.Reg.R(ins.Rn())
	if ins.ShiftByRegister() && ins.Rn() == registers.PC {
		a += 4
	}

	r, writeback := mc.dataProcessing(op, a, b, shiftCarry, setFlags)

	if !writeback {
		return actionNone, nil
	}

	mc.Reg.SetR(ins.Rd(), r)

	if ins.Rd() == registers.PC {
		if setFlags {
			// MOVS PC and friends return from an exception
			if err := mc.restoreCPSR(); err != nil {
				return actionNone, err
			}
		}
		return actionFlush, nil
	}

	return actionNone, nil
}

func (mc *CPU) execLoadStore(ins instructions.ARM) (action, error) {
	base := mc.Reg.R(ins.Rn())

	var offset int32
	if ins.ImmediateOffset() {
		offset = ins.Offset12()
	} else {
		// register offsets are shifted by an immediate amount only. the
		// shifter carry is discarded
		v, _ := mc.barrelShift(mc.Reg.R(ins.Rm()), ins.Shift())
		offset = int32(v)
		if !ins.OffsetAdded() {
			offset = -offset
		}
	}

	ea := base
	if ins.PreIndexed() {
		ea += uint32(offset)
	}

	// post-indexing always writes back. pre-indexing only with the W bit
	if !ins.PreIndexed() {
		mc.Reg.SetR(ins.Rn(), base+uint32(offset))
	} else if ins.WriteBack() {
		mc.Reg.SetR(ins.Rn(), ea)
	}

	if ins.Load() {
		var v uint32
		if ins.TransferBytes() {
			v = uint32(mc.mem.Read8(ea))
		} else {
			v = mc.mem.Read32(ea)
		}
		mc.Reg.SetR(ins.Rd(), v)
		if ins.Rd() == registers.PC {
			mc.Reg.SetPC(v &^ 0x03)
			return actionFlush, nil
		}
		return actionNone, nil
	}

	if ins.TransferBytes() {
		mc.mem.Write8(ea, uint8(mc.Reg.R(ins.Rd())))
	} else {
		mc.mem.Write32(ea, mc.Reg.R(ins.Rd()))
	}

	return actionNone, nil
}

func (mc *CPU) execHalfword(ins instructions.ARM) (action, error) {
	base := mc.Reg.R(ins.Rn())

	var offset int32
	if ins.Op == instructions.ARMHalfwordImm {
		offset = ins.SplitOffset8()
	} else {
		offset = int32(mc.Reg.R(ins.Rm()))
		if !ins.OffsetAdded() {
			offset = -offset
		}
	}

	ea := base
	if ins.PreIndexed() {
		ea += uint32(offset)
	}

	if !ins.PreIndexed() {
		mc.Reg.SetR(ins.Rn(), base+uint32(offset))
	} else if ins.WriteBack() {
		mc.Reg.SetR(ins.Rn(), ea)
	}

	if !ins.Load() {
		mc.mem.Write16(ea, uint16(mc.Reg.R(ins.Rd())))
		return actionNone, nil
	}

	var v uint32
	switch ins.HalfwordOp() {
	case instructions.HalfwordUnsigned:
		v = uint32(mc.mem.Read16(ea))
	case instructions.HalfwordSignedByte:
		v = uint32(int32(int8(mc.mem.Read8(ea))))
	case instructions.HalfwordSignedHalf:
		v = uint32(int32(int16(mc.mem.Read16(ea))))
	}

	mc.Reg.SetR(ins.Rd(), v)
	if ins.Rd() == registers.PC {
		mc.Reg.SetPC(v &^ 0x03)
		return actionFlush, nil
	}

	return actionNone, nil
}

func (mc *CPU) execBlockTransfer(ins instructions.ARM) (action, error) {
	list := ins.RegisterList()
	if list == 0 {
		logger.Logf("cpu", "block transfer with empty register list at %#08x", mc.LastResult.Address)
		return actionNone, nil
	}

	count := uint32(bits.OnesCount16(list))
	base := mc.Reg.R(ins.Rn())

	// transfers always proceed upwards in memory from the lowest address
	// of the block, regardless of the U bit
	var start, final uint32
	if ins.OffsetAdded() {
		start = base
		if ins.PreIndexed() {
			start += 4
		}
		final = base + count*4
	} else {
		final = base - count*4
		start = final
		if !ins.PreIndexed() {
			start += 4
		}
	}

	if ins.WriteBack() {
		mc.Reg.SetR(ins.Rn(), final)
	}

	loadsPC := ins.Load() && list&(1<<registers.PC) != 0

	// the S bit transfers user bank registers, except for a load that
	// includes the PC, which restores the CPSR instead
	userBank := ins.UserBank() && !loadsPC

	act := actionNone
	ea := start
	for reg := 0; reg <= registers.PC; reg++ {
		if list&(1<<reg) == 0 {
			continue
		}

		if ins.Load() {
			v := mc.mem.Read32(ea)
			if userBank {
				mc.Reg.SetUserR(reg, v)
			} else {
				mc.Reg.SetR(reg, v)
			}
			if reg == registers.PC {
				if ins.UserBank() {
					if err := mc.restoreCPSR(); err != nil {
						return actionNone, err
					}
				}
				if mc.Reg.Status.Thumb {
					mc.Reg.SetPC(v &^ 0x01)
				} else {
					mc.Reg.SetPC(v &^ 0x03)
				}
				act = actionFlush
			}
		} else {
			if userBank {
				mc.mem.Write32(ea, mc.Reg.UserR(reg))
			} else {
				mc.mem.Write32(ea, mc.Reg.R(reg))
			}
		}

		ea += 4
	}

	return act, nil
}
