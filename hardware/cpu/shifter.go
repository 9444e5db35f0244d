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
)

// barrelShift applies a decoded shift operation to a value, returning the
// shifted value and the shifter's carry out. For ShiftNone and for a
// register shift amount of zero the carry out is the current carry flag.
func (mc *CPU) barrelShift(value uint32, s instructions.Shift) (uint32, bool) {
	carry := mc.Reg.Status.Carry

	switch s.Kind {
	case instructions.ShiftNone:
		return value, carry

	case instructions.LSLImm:
		return value << s.Amount, value&(1<<(32-s.Amount)) != 0

	case instructions.LSRImm:
		return value >> s.Amount, value&(1<<(s.Amount-1)) != 0

	case instructions.ASRImm:
		return uint32(int32(value) >> s.Amount), value&(1<<(s.Amount-1)) != 0

	case instructions.RORImm:
		return bits.RotateLeft32(value, -int(s.Amount)), value&(1<<(s.Amount-1)) != 0

	case instructions.LSR32:
		return 0, value&0x80000000 != 0

	case instructions.ASR32:
		return uint32(int32(value) >> 31), value&0x80000000 != 0

	case instructions.RRX:
		v := value >> 1
		if carry {
			v |= 0x80000000
		}
		return v, value&0x01 != 0
	}

	// shift amount from the bottom byte of a register
	amount := mc.Reg.R(s.Register) & 0xff

	if amount == 0 {
		return value, carry
	}

	switch s.Kind {
	case instructions.LSLReg:
		switch {
		case amount < 32:
			return value << amount, value&(1<<(32-amount)) != 0
		case amount == 32:
			return 0, value&0x01 != 0
		}
		return 0, false

	case instructions.LSRReg:
		switch {
		case amount < 32:
			return value >> amount, value&(1<<(amount-1)) != 0
		case amount == 32:
			return 0, value&0x80000000 != 0
		}
		return 0, false

	case instructions.ASRReg:
		if amount < 32 {
			return uint32(int32(value) >> amount), value&(1<<(amount-1)) != 0
		}
		return uint32(int32(value) >> 31), value&0x80000000 != 0

	case instructions.RORReg:
		amount &= 0x1f
		if amount == 0 {
			return value, value&0x80000000 != 0
		}
		return bits.RotateLeft32(value, -int(amount)), value&(1<<(amount-1)) != 0
	}

	return value, carry
}
