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
	"github.com/jetsetilly/gopheradvance/hardware/cpu/instructions"
)

// add performs a 32-bit addition with optional carry in, updating the
// arithmetic flags when setFlags is true. The carry flag takes bit 32 of
// the widened result.
func (mc *CPU) add(a, b uint32, carryIn bool, setFlags bool) uint32 {
	r64 := uint64(a) + uint64(b)
	if carryIn {
		r64++
	}
	r := uint32(r64)

	if setFlags {
		mc.Reg.Status.Negative = r&0x80000000 != 0
		mc.Reg.Status.Zero = r == 0
		mc.Reg.Status.Carry = r64&0x100000000 != 0
		mc.Reg.Status.Overflow = (^(a^b)&(a^r))&0x80000000 != 0
	}

	return r
}

// sub performs a 32-bit subtraction with optional borrow in, updating the
// arithmetic flags when setFlags is true.
//
// The carry flag takes bit 32 of the widened difference, meaning it is SET
// when the subtraction borrows. This is the inverse of the convention
// described in the ARM manual but SBC below consumes the flag with the
// same polarity so subtract chains still come out right.
func (mc *CPU) sub(a, b uint32, borrowIn bool, setFlags bool) uint32 {
	r64 := uint64(a) - uint64(b)
	if borrowIn {
		r64--
	}
	r := uint32(r64)

	if setFlags {
		mc.Reg.Status.Negative = r&0x80000000 != 0
		mc.Reg.Status.Zero = r == 0
		mc.Reg.Status.Carry = r64&0x100000000 != 0
		mc.Reg.Status.Overflow = ((a^b)&(a^r))&0x80000000 != 0
	}

	return r
}

// logicFlags updates the flags for the result of a logical operation. The
// carry flag takes the barrel shifter's carry out.
func (mc *CPU) logicFlags(r uint32, shiftCarry bool) {
	mc.Reg.Status.Negative = r&0x80000000 != 0
	mc.Reg.Status.Zero = r == 0
	mc.Reg.Status.Carry = shiftCarry
}

// mulFlags updates the flags for the result of a multiply. The carry flag
// is destroyed.
func (mc *CPU) mulFlags(neg, zero bool) {
	mc.Reg.Status.Negative = neg
	mc.Reg.Status.Zero = zero
	mc.Reg.Status.Carry = false
}

// dataProcessing performs one ALU operation on the two operands. The
// writeback return value is false for the test operations, which only set
// flags.
func (mc *CPU) dataProcessing(op instructions.DataOp, a, b uint32, shiftCarry bool, setFlags bool) (uint32, bool) {
	var r uint32

	switch op {
	case instructions.OpAND, instructions.OpTST:
		r = a & b
	case instructions.OpEOR, instructions.OpTEQ:
		r = a ^ b
	case instructions.OpSUB, instructions.OpCMP:
		return mc.sub(a, b, false, setFlags), !op.IsTest()
	case instructions.OpRSB:
		return mc.sub(b, a, false, setFlags), true
	case instructions.OpADD, instructions.OpCMN:
		return mc.add(a, b, false, setFlags), !op.IsTest()
	case instructions.OpADC:
		return mc.add(a, b, mc.Reg.Status.Carry, setFlags), true
	case instructions.OpSBC:
		return mc.sub(a, b, mc.Reg.Status.Carry, setFlags), true
	case instructions.OpRSC:
		return mc.sub(b, a, mc.Reg.Status.Carry, setFlags), true
	case instructions.OpORR:
		r = a | b
	case instructions.OpMOV:
		r = b
	case instructions.OpBIC:
		r = a &^ b
	case instructions.OpMVN:
		r = ^b
	}

	if setFlags {
		mc.logicFlags(r, shiftCarry)
	}

	return r, !op.IsTest()
}
