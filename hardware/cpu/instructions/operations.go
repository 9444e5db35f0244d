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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/gopheradvance/hardware/cpu/registers"
)

// DataOp is the 4-bit opcode field of a data processing instruction. The
// Thumb formats reuse these values when they map onto the ARM ALU.
type DataOp uint8

// The sixteen data processing operations in field order.
const (
	OpAND DataOp = iota
	OpEOR
	OpSUB
	OpRSB
	OpADD
	OpADC
	OpSBC
	OpRSC
	OpTST
	OpTEQ
	OpCMP
	OpCMN
	OpORR
	OpMOV
	OpBIC
	OpMVN
)

// IsTest returns true for the four operations that only set flags and write
// no result register.
func (op DataOp) IsTest() bool {
	return op >= OpTST && op <= OpCMN
}

// IsMove returns true for MOV and MVN, which take no first operand.
func (op DataOp) IsMove() bool {
	return op == OpMOV || op == OpMVN
}

// IsLogical returns true for the operations whose carry flag comes from the
// barrel shifter rather than from arithmetic.
func (op DataOp) IsLogical() bool {
	switch op {
	case OpAND, OpEOR, OpTST, OpTEQ, OpORR, OpMOV, OpBIC, OpMVN:
		return true
	}
	return false
}

var dataOpNames = [16]string{
	"and", "eor", "sub", "rsb", "add", "adc", "sbc", "rsc",
	"tst", "teq", "cmp", "cmn", "orr", "mov", "bic", "mvn",
}

func (op DataOp) String() string {
	return dataOpNames[op&0xf]
}

// ShiftKind describes how a barrel shifter operand is to be produced.
type ShiftKind uint8

// Shift operations, including the special encodings that the immediate
// shift amount of zero stands in for.
const (
	ShiftNone ShiftKind = iota
	LSLImm
	LSRImm
	ASRImm
	RORImm
	LSR32
	ASR32
	RRX
	LSLReg
	LSRReg
	ASRReg
	RORReg
)

// Shift is a decoded barrel shifter operation. Amount is valid for the
// immediate kinds, Register for the register kinds.
type Shift struct {
	Kind     ShiftKind
	Amount   uint32
	Register int
}

// DecodeImmShift decodes a 2-bit shift opcode with an immediate shift
// amount. An amount of zero selects the special encodings: LSL #0 is no
// shift, LSR #0 and ASR #0 mean a shift by 32, and ROR #0 is RRX.
func DecodeImmShift(op uint32, amount uint32) Shift {
	switch op & 0b11 {
	case 0:
		if amount == 0 {
			return Shift{Kind: ShiftNone}
		}
		return Shift{Kind: LSLImm, Amount: amount}
	case 1:
		if amount == 0 {
			return Shift{Kind: LSR32}
		}
		return Shift{Kind: LSRImm, Amount: amount}
	case 2:
		if amount == 0 {
			return Shift{Kind: ASR32}
		}
		return Shift{Kind: ASRImm, Amount: amount}
	}
	if amount == 0 {
		return Shift{Kind: RRX}
	}
	return Shift{Kind: RORImm, Amount: amount}
}

// DecodeRegShift decodes a 2-bit shift opcode with the shift amount taken
// from a register.
func DecodeRegShift(op uint32, reg int) Shift {
	switch op & 0b11 {
	case 0:
		return Shift{Kind: LSLReg, Register: reg}
	case 1:
		return Shift{Kind: LSRReg, Register: reg}
	case 2:
		return Shift{Kind: ASRReg, Register: reg}
	}
	return Shift{Kind: RORReg, Register: reg}
}

// Name returns the bare assembly mnemonic of the shift operation. The name
// for ShiftNone is "lsl", matching how the Thumb move-shifted-register
// format disassembles a zero shift.
func (s Shift) Name() string {
	switch s.Kind {
	case LSLImm, LSLReg, ShiftNone:
		return "lsl"
	case LSRImm, LSRReg, LSR32:
		return "lsr"
	case ASRImm, ASRReg, ASR32:
		return "asr"
	case RORImm, RORReg:
		return "ror"
	case RRX:
		return "rrx"
	}
	return ""
}

// String returns the assembly form of the shift as it appears after an
// operand register. The empty string for no shift.
func (s Shift) String() string {
	switch s.Kind {
	case ShiftNone:
		return ""
	case LSLImm, LSRImm, ASRImm, RORImm:
		return fmt.Sprintf("%s #%d", s.Name(), s.Amount)
	case LSR32:
		return "lsr #32"
	case ASR32:
		return "asr #32"
	case RRX:
		return "rrx"
	}
	return fmt.Sprintf("%s %s", s.Name(), registers.Name(s.Register))
}
