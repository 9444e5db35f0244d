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
	"math/bits"
)

// error patterns for the instructions package.
const (
	InvalidARMInstruction   = "decode: unrecognised arm word (%#08x)"
	InvalidThumbInstruction = "decode: unrecognised thumb word (%#04x)"
)

// ARMOpcode classifies a 32-bit ARM instruction.
type ARMOpcode int

// The ARM instruction classes. Unknown is the architecturally undefined
// encoding; executing it raises the undefined instruction exception.
const (
	ARMUnknown ARMOpcode = iota
	ARMBX
	ARMBranch
	ARMSWP
	ARMMultiply
	ARMMultiplyLong
	ARMMRS
	ARMMSRReg
	ARMMSRFlags
	ARMLoadStore
	ARMHalfwordReg
	ARMHalfwordImm
	ARMBlockTransfer
	ARMSWI
	ARMCoprocData
	ARMCoprocRegister
	ARMCoprocTransfer
	ARMDataProcessing
)

// HalfwordOp is the 2-bit transfer type field of the halfword and signed
// transfer instructions.
type HalfwordOp uint32

// Halfword transfer types. The zero pattern belongs to SWP and the multiply
// instructions and never reaches a halfword transfer.
const (
	HalfwordSWP HalfwordOp = iota
	HalfwordUnsigned
	HalfwordSignedByte
	HalfwordSignedHalf
)

// armDecodeEntry pairs a mask/value pattern with the opcode it selects.
type armDecodeEntry struct {
	mask  uint32
	value uint32
	op    ARMOpcode
}

// the order of this table matters. the MRS/MSR patterns are subsets of the
// data processing encoding and the halfword patterns are subsets of the
// multiply encodings.
var armDecodeTable = []armDecodeEntry{
	{0x0ffffff0, 0x012fff10, ARMBX},
	{0x0e000000, 0x0a000000, ARMBranch},
	{0x0e000010, 0x06000010, ARMUnknown},
	{0x0fb00ff0, 0x01000090, ARMSWP},
	{0x0fc000f0, 0x00000090, ARMMultiply},
	{0x0f8000f0, 0x00800090, ARMMultiplyLong},
	{0x0fbf0fff, 0x010f0000, ARMMRS},
	{0x0fbffff0, 0x0129f000, ARMMSRReg},
	{0x0dbff000, 0x0128f000, ARMMSRFlags},
	{0x0c000000, 0x04000000, ARMLoadStore},
	{0x0e400f90, 0x00000090, ARMHalfwordReg},
	{0x0e400090, 0x00400090, ARMHalfwordImm},
	{0x0e000000, 0x08000000, ARMBlockTransfer},
	{0x0f000000, 0x0f000000, ARMSWI},
	{0x0f000010, 0x0e000000, ARMCoprocData},
	{0x0f000010, 0x0e000010, ARMCoprocRegister},
	{0x0e000000, 0x0c000000, ARMCoprocTransfer},
	{0x0c000000, 0x00000000, ARMDataProcessing},
}

// ARM is a decoded 32-bit ARM instruction. The raw word is retained; the
// field accessors extract operands from it on demand.
type ARM struct {
	Raw uint32
	Op  ARMOpcode
}

// ARMNop is the raw encoding used to fill the pipeline after a flush. It
// decodes as "mov r0, r0".
const ARMNop = uint32(0xe1a00000)

// DecodeARM classifies a raw 32-bit word. Every word matches an entry in the
// decode table, including the architecturally undefined encoding, so decode
// is total.
func DecodeARM(raw uint32) ARM {
	for _, e := range armDecodeTable {
		if raw&e.mask == e.value {
			return ARM{Raw: raw, Op: e.op}
		}
	}

	// unreachable. the data processing pattern has a zero mask over the
	// bits every other pattern tests
	return ARM{Raw: raw, Op: ARMUnknown}
}

// Condition returns the condition field.
func (ins ARM) Condition() Condition {
	return Condition((ins.Raw >> 28) & 0xf)
}

// DataOp returns the data processing opcode field.
func (ins ARM) DataOp() DataOp {
	return DataOp((ins.Raw >> 21) & 0xf)
}

// HalfwordOp returns the transfer type of a halfword instruction.
func (ins ARM) HalfwordOp() HalfwordOp {
	return HalfwordOp((ins.Raw >> 5) & 0b11)
}

// Rn returns the first operand register index.
func (ins ARM) Rn() int { return int((ins.Raw >> 16) & 0xf) }

// Rd returns the destination register index.
func (ins ARM) Rd() int { return int((ins.Raw >> 12) & 0xf) }

// Rs returns the shift amount register index.
func (ins ARM) Rs() int { return int((ins.Raw >> 8) & 0xf) }

// Rm returns the second operand register index.
func (ins ARM) Rm() int { return int(ins.Raw & 0xf) }

// CoprocID returns the target coprocessor number.
func (ins ARM) CoprocID() int { return ins.Rs() }

// CoprocOp4 returns the 4-bit coprocessor opcode of a CDP instruction.
func (ins ARM) CoprocOp4() uint32 { return (ins.Raw >> 20) & 0xf }

// CoprocOp3 returns the 3-bit coprocessor opcode of an MRC/MCR instruction.
func (ins ARM) CoprocOp3() uint32 { return (ins.Raw >> 21) & 0b111 }

// CoprocInfo returns the 3-bit coprocessor info field.
func (ins ARM) CoprocInfo() uint32 { return (ins.Raw >> 5) & 0b111 }

// RotatedImmediate decodes the 8-bit immediate rotated right by twice the
// 4-bit rotate field.
func (ins ARM) RotatedImmediate() uint32 {
	rot := 2 * ((ins.Raw >> 8) & 0xf)
	return bits.RotateLeft32(ins.Raw&0xff, -int(rot))
}

// ShiftAmount returns the 5-bit immediate shift amount of a shifted register
// operand.
func (ins ARM) ShiftAmount() uint32 { return (ins.Raw >> 7) & 0x1f }

// Shift decodes the shift applied to the Rm operand of a data processing
// instruction or a register offset load/store.
func (ins ARM) Shift() Shift {
	op := (ins.Raw >> 5) & 0b11
	if ins.ShiftByRegister() {
		return DecodeRegShift(op, ins.Rs())
	}
	return DecodeImmShift(op, ins.ShiftAmount())
}

// Offset12 returns the 12-bit load/store offset, negated when the offset is
// to be subtracted.
func (ins ARM) Offset12() int32 {
	off := int32(ins.Raw & 0xfff)
	if ins.OffsetAdded() {
		return off
	}
	return -off
}

// Offset8 returns the 8-bit coprocessor transfer offset, negated when the
// offset is to be subtracted.
func (ins ARM) Offset8() int32 {
	off := int32(ins.Raw & 0xff)
	if ins.OffsetAdded() {
		return off
	}
	return -off
}

// SplitOffset8 recombines the two nibbles of a halfword transfer offset,
// negated when the offset is to be subtracted.
func (ins ARM) SplitOffset8() int32 {
	off := int32(((ins.Raw >> 4) & 0xf0) | (ins.Raw & 0x0f))
	if ins.OffsetAdded() {
		return off
	}
	return -off
}

// BranchOffset returns the 24-bit branch offset, sign extended and shifted
// left twice.
func (ins ARM) BranchOffset() int32 {
	return (int32(ins.Raw<<8) >> 6)
}

// Comment returns the 24-bit comment field of a SWI instruction.
func (ins ARM) Comment() uint32 { return ins.Raw & 0x00ffffff }

// RegisterList returns the 16-bit register bitmap of a block transfer.
func (ins ARM) RegisterList() uint16 { return uint16(ins.Raw & 0xffff) }

// ImmediateOperand reports whether the second operand is a rotated
// immediate rather than a shifted register.
func (ins ARM) ImmediateOperand() bool { return ins.Raw&(1<<25) != 0 }

// ImmediateOffset reports whether a load/store offset is a plain immediate
// rather than a shifted register. Note that the bit has the opposite sense
// to ImmediateOperand.
func (ins ARM) ImmediateOffset() bool { return ins.Raw&(1<<25) == 0 }

// Link reports whether a branch stores the return address in R14.
func (ins ARM) Link() bool { return ins.Raw&(1<<24) != 0 }

// PreIndexed reports whether the offset is applied before the transfer.
func (ins ARM) PreIndexed() bool { return ins.Raw&(1<<24) != 0 }

// OffsetAdded reports whether the offset is added to or subtracted from the
// base address.
func (ins ARM) OffsetAdded() bool { return ins.Raw&(1<<23) != 0 }

// SPSRAccess reports whether a PSR transfer targets the SPSR of the current
// mode rather than the CPSR.
func (ins ARM) SPSRAccess() bool { return ins.Raw&(1<<22) != 0 }

// Signed reports whether a long multiply is signed.
func (ins ARM) Signed() bool { return ins.Raw&(1<<22) != 0 }

// TransferBytes reports whether a single transfer moves a byte instead of a
// word.
func (ins ARM) TransferBytes() bool { return ins.Raw&(1<<22) != 0 }

// UserBank reports whether a block transfer accesses the user register bank
// (or restores the SPSR when R15 is loaded).
func (ins ARM) UserBank() bool { return ins.Raw&(1<<22) != 0 }

// CoprocLong reports whether a coprocessor transfer moves a block of
// registers.
func (ins ARM) CoprocLong() bool { return ins.Raw&(1<<22) != 0 }

// Accumulate reports whether a multiply adds the accumulator operand.
func (ins ARM) Accumulate() bool { return ins.Raw&(1<<21) != 0 }

// WriteBack reports whether the calculated address is written back to the
// base register.
func (ins ARM) WriteBack() bool { return ins.Raw&(1<<21) != 0 }

// SetFlags reports whether the instruction updates the condition flags.
func (ins ARM) SetFlags() bool { return ins.Raw&(1<<20) != 0 }

// Load reports whether the instruction is a load rather than a store.
func (ins ARM) Load() bool { return ins.Raw&(1<<20) != 0 }

// ShiftByRegister reports whether the shift amount comes from a register
// rather than an immediate field.
func (ins ARM) ShiftByRegister() bool {
	return !ins.ImmediateOperand() && ins.Raw&(1<<4) != 0
}
