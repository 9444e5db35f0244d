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
	"github.com/jetsetilly/gopheradvance/curated"
)

// ThumbOpcode classifies a 16-bit Thumb instruction.
type ThumbOpcode int

// The twenty Thumb instruction formats.
const (
	ThumbAddSub ThumbOpcode = iota
	ThumbMoveShifted
	ThumbImmediate
	ThumbMul
	ThumbALU
	ThumbHiReg
	ThumbLoadPC
	ThumbLoadStoreReg
	ThumbHalfwordReg
	ThumbLoadStoreImm
	ThumbHalfwordImm
	ThumbLoadStoreSP
	ThumbCalcAddress
	ThumbAddSP
	ThumbPushPop
	ThumbBlockTransfer
	ThumbSWI
	ThumbCondBranch
	ThumbBranch
	ThumbLongBranch
)

// HiRegOp is the 2-bit operation field of the Thumb high register format.
type HiRegOp uint32

// High register operations. Only CMP updates the flags.
const (
	HiRegAdd HiRegOp = iota
	HiRegCmp
	HiRegMov
	HiRegBx
)

// Thumb is a decoded 16-bit Thumb instruction.
type Thumb struct {
	Raw uint16
	Op  ThumbOpcode
}

// ThumbNop is the raw encoding used to fill the pipeline after a flush. It
// decodes as "mov r8, r8", with no flag update.
const ThumbNop = uint16(0x46c0)

// thumbDecodeEntry pairs a mask/value pattern with the format it selects.
type thumbDecodeEntry struct {
	mask  uint16
	value uint16
	op    ThumbOpcode
}

// order matters throughout. add/sub must precede move shifted; mul must
// precede the ALU format; the 0xde00 hole in the conditional branch space is
// checked before the conditional branch pattern.
var thumbDecodeTable = []thumbDecodeEntry{
	{0xf800, 0x1800, ThumbAddSub},
	{0xe000, 0x0000, ThumbMoveShifted},
	{0xe000, 0x2000, ThumbImmediate},
	{0xffc0, 0x4340, ThumbMul},
	{0xfc00, 0x4000, ThumbALU},
	{0xfc00, 0x4400, ThumbHiReg},
	{0xf800, 0x4800, ThumbLoadPC},
	{0xf200, 0x5000, ThumbLoadStoreReg},
	{0xf200, 0x5200, ThumbHalfwordReg},
	{0xe000, 0x6000, ThumbLoadStoreImm},
	{0xf000, 0x8000, ThumbHalfwordImm},
	{0xf000, 0x9000, ThumbLoadStoreSP},
	{0xf000, 0xa000, ThumbCalcAddress},
	{0xff00, 0xb000, ThumbAddSP},
	{0xf600, 0xb400, ThumbPushPop},
	{0xf000, 0xc000, ThumbBlockTransfer},
	{0xff00, 0xdf00, ThumbSWI},
	{0xf000, 0xd000, ThumbCondBranch},
	{0xf800, 0xe000, ThumbBranch},
	{0xf000, 0xf000, ThumbLongBranch},
}

// DecodeThumb classifies a raw 16-bit word. The undefined "b always"
// encoding and the holes in the format space return an error.
func DecodeThumb(raw uint16) (Thumb, error) {
	// the condition field value of 0b1110 inside the conditional branch
	// format is undefined
	if raw&0xff00 == 0xde00 {
		return Thumb{Raw: raw}, curated.Errorf(InvalidThumbInstruction, raw)
	}

	for _, e := range thumbDecodeTable {
		if raw&e.mask == e.value {
			return Thumb{Raw: raw, Op: e.op}, nil
		}
	}

	return Thumb{Raw: raw}, curated.Errorf(InvalidThumbInstruction, raw)
}

// Rd returns the destination register index (bits 0-2).
func (ins Thumb) Rd() int { return int(ins.Raw & 0b111) }

// Rs returns the source register index (bits 3-5).
func (ins Thumb) Rs() int { return int((ins.Raw >> 3) & 0b111) }

// Rn returns the third operand register index (bits 6-8).
func (ins Thumb) Rn() int { return int((ins.Raw >> 6) & 0b111) }

// Rm returns the register index held in bits 8-10, used by the PC/SP
// relative formats.
func (ins Thumb) Rm() int { return int((ins.Raw >> 8) & 0b111) }

// Hd returns the 4-bit destination index of the high register format. The
// fourth bit comes from the instruction's "H1" flag.
func (ins Thumb) Hd() int { return ins.Rd() | int((ins.Raw>>4)&0b1000) }

// Hs returns the 4-bit source index of the high register format. The fourth
// bit comes from the instruction's "H2" flag.
func (ins Thumb) Hs() int { return ins.Rs() | int((ins.Raw>>3)&0b1000) }

// Imm5 returns the 5-bit immediate (bits 6-10).
func (ins Thumb) Imm5() uint32 { return uint32((ins.Raw >> 6) & 0x1f) }

// Imm6 returns the 5-bit immediate doubled, as used by the halfword
// transfer offset.
func (ins Thumb) Imm6() uint32 { return ins.Imm5() << 1 }

// Imm7 returns the 5-bit immediate quadrupled, as used by the word transfer
// offset.
func (ins Thumb) Imm7() uint32 { return ins.Imm5() << 2 }

// Imm8 returns the 8-bit immediate (bits 0-7).
func (ins Thumb) Imm8() uint32 { return uint32(ins.Raw & 0xff) }

// Imm10 returns the 8-bit immediate quadrupled, as used by the PC/SP
// relative formats.
func (ins Thumb) Imm10() uint32 { return ins.Imm8() << 2 }

// Offset9 returns the sign-extended 9-bit offset of a conditional branch or
// ADD SP.
func (ins Thumb) Offset9() int32 {
	return int32(uint32(ins.Raw&0xff)<<24) >> 23
}

// Offset12 returns the sign-extended 12-bit offset of an unconditional
// branch.
func (ins Thumb) Offset12() int32 {
	return int32(uint32(ins.Raw&0x7ff)<<21) >> 20
}

// LongOffset returns the raw 11-bit half of a long branch offset.
func (ins Thumb) LongOffset() uint32 { return uint32(ins.Raw & 0x7ff) }

// Comment returns the 8-bit comment field of a SWI instruction.
func (ins Thumb) Comment() uint32 { return ins.Imm8() }

// RegisterList returns the 8-bit register bitmap of the push/pop and block
// transfer formats.
func (ins Thumb) RegisterList() uint8 { return uint8(ins.Raw & 0xff) }

// Condition returns the condition field of a conditional branch.
func (ins Thumb) Condition() Condition {
	return Condition((ins.Raw >> 8) & 0xf)
}

// AddSubOp returns either OpADD or OpSUB for the add/subtract format.
func (ins Thumb) AddSubOp() DataOp {
	if ins.Raw&(1<<9) == 0 {
		return OpADD
	}
	return OpSUB
}

// ImmediateOp returns the operation of the move/compare/add/subtract
// immediate format.
func (ins Thumb) ImmediateOp() DataOp {
	switch (ins.Raw >> 11) & 0b11 {
	case 0:
		return OpMOV
	case 1:
		return OpCMP
	case 2:
		return OpADD
	}
	return OpSUB
}

// MoveShift returns the barrel shifter operation of the move shifted
// register format.
func (ins Thumb) MoveShift() Shift {
	return DecodeImmShift(uint32(ins.Raw>>11), ins.Imm5())
}

// ALUOp returns the data processing and barrel shifter operations that
// implement the ALU format. The shift register operations map to a MOV with
// a register shift.
func (ins Thumb) ALUOp() (DataOp, Shift) {
	switch (ins.Raw >> 6) & 0xf {
	case 0:
		return OpAND, Shift{Kind: ShiftNone}
	case 1:
		return OpEOR, Shift{Kind: ShiftNone}
	case 2:
		return OpMOV, Shift{Kind: LSLReg, Register: ins.Rs()}
	case 3:
		return OpMOV, Shift{Kind: LSRReg, Register: ins.Rs()}
	case 4:
		return OpMOV, Shift{Kind: ASRReg, Register: ins.Rs()}
	case 5:
		return OpADC, Shift{Kind: ShiftNone}
	case 6:
		return OpSBC, Shift{Kind: ShiftNone}
	case 7:
		return OpMOV, Shift{Kind: RORReg, Register: ins.Rs()}
	case 8:
		return OpTST, Shift{Kind: ShiftNone}
	case 9:
		// NEG Rd, Rs is RSB Rd, Rs, #0
		return OpRSB, Shift{Kind: ShiftNone}
	case 10:
		return OpCMP, Shift{Kind: ShiftNone}
	case 11:
		return OpCMN, Shift{Kind: ShiftNone}
	case 12:
		return OpORR, Shift{Kind: ShiftNone}
	case 14:
		return OpBIC, Shift{Kind: ShiftNone}
	}
	return OpMVN, Shift{Kind: ShiftNone}
}

// HiRegOp returns the operation of the high register format.
func (ins Thumb) HiRegOp() HiRegOp {
	return HiRegOp((ins.Raw >> 8) & 0b11)
}

// ThumbHalfwordOp is the transfer type of the Thumb halfword register
// offset format.
type ThumbHalfwordOp uint32

// Thumb halfword and signed transfer types.
const (
	StoreHalf ThumbHalfwordOp = iota
	LoadHalf
	LoadSignedByte
	LoadSignedHalf
)

// HalfwordOp returns the transfer type of the halfword register offset
// format.
func (ins Thumb) HalfwordOp() ThumbHalfwordOp {
	switch (ins.Raw >> 10) & 0b11 {
	case 0b00:
		return StoreHalf
	case 0b01:
		return LoadSignedByte
	case 0b10:
		return LoadHalf
	}
	return LoadSignedHalf
}

// ImmediateRn reports whether the add/subtract format's third operand is an
// immediate rather than a register.
func (ins Thumb) ImmediateRn() bool { return ins.Raw&(1<<10) != 0 }

// Load reports whether the instruction is a load rather than a store.
func (ins Thumb) Load() bool { return ins.Raw&(1<<11) != 0 }

// TransferBytes reports whether a register offset load/store moves a byte
// instead of a word.
func (ins Thumb) TransferBytes() bool { return ins.Raw&(1<<10) != 0 }

// TransferBytesImm reports whether an immediate offset load/store moves a
// byte. The immediate offset format carries the byte flag one bit higher
// than the register offset format.
func (ins Thumb) TransferBytesImm() bool { return ins.Raw&(1<<12) != 0 }

// BaseSP reports whether the calculate-address format uses SP as the base
// rather than PC. Same bit as Load.
func (ins Thumb) BaseSP() bool { return ins.Load() }

// PCLRBit reports whether a push stores LR or a pop loads PC.
func (ins Thumb) PCLRBit() bool { return ins.Raw&(1<<8) != 0 }

// LowHalf reports whether a long branch instruction carries the low half of
// the offset and performs the branch. Same bit as Load.
func (ins Thumb) LowHalf() bool { return ins.Load() }
