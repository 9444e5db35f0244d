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
	"strings"

	"github.com/jetsetilly/gopheradvance/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheradvance/hardware/cpu/registers"
)

// FormatARM returns the assembly text for a decoded ARM instruction. The
// mnemonic and the operands are separated by a tab.
func FormatARM(ins instructions.ARM) string {
	cond := ins.Condition().String()

	switch ins.Op {
	case instructions.ARMSWI:
		return fmt.Sprintf("swi%s\t#0x%06X", cond, ins.Comment())

	case instructions.ARMBX:
		return fmt.Sprintf("bx%s\t%s", cond, registers.Name(ins.Rm()))

	case instructions.ARMBranch:
		mn := "b"
		if ins.Link() {
			mn = "bl"
		}

		// the offset is relative to the branch instruction rather than to
		// the PC value the CPU adds it to
		return fmt.Sprintf("%s%s\t#%d", mn, cond, ins.BranchOffset()+8)

	case instructions.ARMMRS:
		return fmt.Sprintf("mrs%s\t%s, %s", cond, registers.Name(ins.Rd()), psrName(ins))

	case instructions.ARMMSRReg:
		return fmt.Sprintf("msr%s\t%s, %s", cond, psrName(ins), registers.Name(ins.Rm()))

	case instructions.ARMMSRFlags:
		if ins.ImmediateOperand() {
			return fmt.Sprintf("msr%s\t%s_flg, #0x%08X", cond, psrName(ins), ins.RotatedImmediate())
		}
		return fmt.Sprintf("msr%s\t%s_flg, %s", cond, psrName(ins), registers.Name(ins.Rm()))

	case instructions.ARMSWP:
		b := ""
		if ins.TransferBytes() {
			b = "b"
		}
		return fmt.Sprintf("swp%s%s\t%s, %s, [%s]", b, cond,
			registers.Name(ins.Rd()), registers.Name(ins.Rm()), registers.Name(ins.Rn()))

	case instructions.ARMMultiply:
		mn := "mul"
		if ins.Accumulate() {
			mn = "mla"
		}
		s := fmt.Sprintf("%s%s%s\t%s, %s, %s", mn, sFlag(ins), cond,
			registers.Name(ins.Rn()), registers.Name(ins.Rm()), registers.Name(ins.Rs()))
		if ins.Accumulate() {
			s += fmt.Sprintf(", %s", registers.Name(ins.Rd()))
		}
		return s

	case instructions.ARMMultiplyLong:
		u := "u"
		if ins.Signed() {
			u = "s"
		}
		mn := "mull"
		if ins.Accumulate() {
			mn = "mlal"
		}
		return fmt.Sprintf("%s%s%s%s\t%s, %s, %s, %s", u, mn, sFlag(ins), cond,
			registers.Name(ins.Rd()), registers.Name(ins.Rn()),
			registers.Name(ins.Rm()), registers.Name(ins.Rs()))

	case instructions.ARMLoadStore:
		mn := "str"
		if ins.Load() {
			mn = "ldr"
		}
		b := ""
		if ins.TransferBytes() {
			b = "b"
		}
		t := ""
		if !ins.PreIndexed() && ins.WriteBack() {
			t = "t"
		}
		return fmt.Sprintf("%s%s%s%s\t%s, %s", mn, b, cond, t,
			registers.Name(ins.Rd()), loadStoreOffset(ins))

	case instructions.ARMHalfwordReg:
		sgn := ""
		if !ins.OffsetAdded() {
			sgn = "-"
		}
		return fmt.Sprintf("%s\t%s, %s", halfwordMnemonic(ins, cond), registers.Name(ins.Rd()),
			indexedOperand(ins, sgn+registers.Name(ins.Rm())))

	case instructions.ARMHalfwordImm:
		return fmt.Sprintf("%s\t%s, %s", halfwordMnemonic(ins, cond), registers.Name(ins.Rd()),
			indexedOperand(ins, fmt.Sprintf("#%d", ins.SplitOffset8())))

	case instructions.ARMBlockTransfer:
		mn := "stm"
		if ins.Load() {
			mn = "ldm"
		}
		dir := "d"
		if ins.OffsetAdded() {
			dir = "i"
		}
		idx := "a"
		if ins.PreIndexed() {
			idx = "b"
		}
		wb := ""
		if ins.WriteBack() {
			wb = "!"
		}
		return fmt.Sprintf("%s%s%s%s\t%s%s, %s", mn, dir, idx, cond,
			registers.Name(ins.Rn()), wb, registerList(ins.RegisterList(), -1))

	case instructions.ARMCoprocData:
		return fmt.Sprintf("cdp%s\tP%d, %d, CR%d, CR%d, CR%d, %d", cond,
			ins.CoprocID(), ins.CoprocOp4(), ins.Rd(), ins.Rn(), ins.Rm(), ins.CoprocInfo())

	case instructions.ARMCoprocRegister:
		mn := "mcr"
		if ins.Load() {
			mn = "mrc"
		}
		return fmt.Sprintf("%s%s\tP%d, %d, %s, CR%d, CR%d, %d", mn, cond,
			ins.CoprocID(), ins.CoprocOp3(), registers.Name(ins.Rd()),
			ins.Rn(), ins.Rm(), ins.CoprocInfo())

	case instructions.ARMCoprocTransfer:
		mn := "stc"
		if ins.Load() {
			mn = "ldc"
		}
		l := ""
		if ins.CoprocLong() {
			l = "l"
		}
		return fmt.Sprintf("%s%s%s\tP%d, C%d, %s", mn, l, cond,
			ins.CoprocID(), ins.Rd(), indexedOperand(ins, fmt.Sprintf("#%d", ins.Offset8())))

	case instructions.ARMDataProcessing:
		return formatDataProcessing(ins, cond)
	}

	return "<unknown>"
}

func sFlag(ins instructions.ARM) string {
	if ins.SetFlags() {
		return "s"
	}
	return ""
}

func psrName(ins instructions.ARM) string {
	if ins.SPSRAccess() {
		return "SPSR"
	}
	return "CPSR"
}

func halfwordMnemonic(ins instructions.ARM, cond string) string {
	mn := "str"
	if ins.Load() {
		mn = "ldr"
	}
	var sub string
	switch ins.HalfwordOp() {
	case instructions.HalfwordUnsigned:
		sub = "h"
	case instructions.HalfwordSignedByte:
		sub = "sb"
	case instructions.HalfwordSignedHalf:
		sub = "sh"
	}
	return mn + sub + cond
}

// indexedOperand renders the addressing half of a load/store, placing the
// offset inside or after the brackets according to the indexing mode.
func indexedOperand(ins instructions.ARM, offset string) string {
	rn := registers.Name(ins.Rn())
	if !ins.PreIndexed() {
		return fmt.Sprintf("[%s], %s", rn, offset)
	}
	wb := ""
	if ins.WriteBack() {
		wb = "!"
	}
	return fmt.Sprintf("[%s, %s]%s", rn, offset, wb)
}

func loadStoreOffset(ins instructions.ARM) string {
	if ins.ImmediateOffset() {
		return indexedOperand(ins, fmt.Sprintf("#%d", ins.Offset12()))
	}

	sgn := ""
	if !ins.OffsetAdded() {
		sgn = "-"
	}
	operand := sgn + registers.Name(ins.Rm())
	if sh := ins.Shift().String(); sh != "" {
		operand += ", " + sh
	}
	return indexedOperand(ins, operand)
}

func formatDataProcessing(ins instructions.ARM, cond string) string {
	op := ins.DataOp()

	s := strings.Builder{}
	s.WriteString(op.String())
	s.WriteString(cond)
	if ins.SetFlags() && !op.IsTest() {
		s.WriteString("s")
	}
	s.WriteString("\t")
	if !op.IsTest() {
		s.WriteString(registers.Name(ins.Rd()))
		s.WriteString(", ")
	}
	if !op.IsMove() {
		s.WriteString(registers.Name(ins.Rn()))
		s.WriteString(", ")
	}

	if ins.ImmediateOperand() {
		s.WriteString(fmt.Sprintf("#%d", int32(ins.RotatedImmediate())))
	} else {
		s.WriteString(registers.Name(ins.Rm()))
		if sh := ins.Shift().String(); sh != "" {
			s.WriteString(", ")
			s.WriteString(sh)
		}
	}

	return s.String()
}

// registerList renders an ARM style register list. The extra argument
// appends one more register, which is how the Thumb push/pop formats name
// LR and PC. -1 for none.
func registerList(list uint16, extra int) string {
	s := strings.Builder{}
	s.WriteString("{")
	comma := false
	for reg := 0; reg < 16; reg++ {
		if list&(1<<reg) == 0 {
			continue
		}
		if comma {
			s.WriteString(", ")
		}
		comma = true
		s.WriteString(registers.Name(reg))
	}
	if extra >= 0 {
		if comma {
			s.WriteString(", ")
		}
		s.WriteString(registers.Name(extra))
	}
	s.WriteString("}")
	return s.String()
}
