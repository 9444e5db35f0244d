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

package registers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopheradvance/curated"
)

// Conventional indices into the register file.
const (
	SP = 13
	LR = 14
	PC = 15
)

// NumRegisters is the number of registers visible at any one time.
const NumRegisters = 16

// Name returns the conventional assembly name for a register index.
func Name(reg int) string {
	switch reg {
	case SP:
		return "SP"
	case LR:
		return "LR"
	case PC:
		return "PC"
	}
	return fmt.Sprintf("R%d", reg)
}

// File is the ARM7TDMI register file. Sixteen registers are visible at any
// one time; which physical registers they map to depends on the processor
// mode. R13 and R14 are banked for every exception mode and FIQ additionally
// banks R8 to R12.
type File struct {
	// the visible window. registers for the current mode
	reg [16]uint32

	// banked copies of R13/R14 and the saved status registers, indexed by
	// Mode.bank(). the entries for the current mode are stale while that
	// mode is active; the visible window is authoritative
	sp   [numBanks]uint32
	lr   [numBanks]uint32
	spsr [numBanks]Status

	// the inactive set of R8-R12. while in FIQ mode this holds the user
	// registers and vice versa
	fiq [5]uint32

	// the CPSR
	Status Status
}

// NewFile is the preferred method of initialisation for the File type.
func NewFile() *File {
	f := &File{}
	f.Reset()
	return f
}

// Reset the register file to its power-on state: all registers zero,
// Supervisor mode, interrupts disabled, ARM state.
func (f *File) Reset() {
	f.reg = [16]uint32{}
	f.sp = [numBanks]uint32{}
	f.lr = [numBanks]uint32{}
	f.spsr = [numBanks]Status{}
	f.fiq = [5]uint32{}
	f.Status.Reset()
}

// R returns the value of a visible register.
func (f *File) R(reg int) uint32 {
	return f.reg[reg&0xf]
}

// SetR sets the value of a visible register.
func (f *File) SetR(reg int, v uint32) {
	f.reg[reg&0xf] = v
}

// PC returns the value of R15.
func (f *File) PC() uint32 {
	return f.reg[PC]
}

// SetPC sets the value of R15.
func (f *File) SetPC(v uint32) {
	f.reg[PC] = v
}

// SetMode switches the visible window to the banked registers of the new
// mode and updates the mode field of the CPSR. Switching to the current mode
// is a no-op.
func (f *File) SetMode(m Mode) {
	old := f.Status.Mode
	if m == old {
		return
	}

	ob := old.bank()
	nb := m.bank()

	f.sp[ob] = f.reg[SP]
	f.lr[ob] = f.reg[LR]
	f.reg[SP] = f.sp[nb]
	f.reg[LR] = f.lr[nb]

	// R8-R12 swap in and out only when crossing the FIQ boundary
	if (old == FIQ) != (m == FIQ) {
		for i := 0; i < 5; i++ {
			f.reg[8+i], f.fiq[i] = f.fiq[i], f.reg[8+i]
		}
	}

	f.Status.Mode = m
}

// SPSR returns the saved status register for the current mode. User and
// System modes have no SPSR.
func (f *File) SPSR() (Status, error) {
	m := f.Status.Mode
	if !m.hasSPSR() {
		return Status{}, curated.Errorf(NoSPSR, m)
	}
	return f.spsr[m.bank()], nil
}

// SetSPSR sets the saved status register for the current mode.
func (f *File) SetSPSR(sr Status) error {
	m := f.Status.Mode
	if !m.hasSPSR() {
		return curated.Errorf(NoSPSR, m)
	}
	f.spsr[m.bank()] = sr
	return nil
}

// UserR returns the user bank value of a register regardless of the current
// mode. Required by the S-bit forms of LDM/STM.
func (f *File) UserR(reg int) uint32 {
	reg &= 0xf
	m := f.Status.Mode

	switch {
	case reg == SP:
		if m.bank() == 0 {
			return f.reg[SP]
		}
		return f.sp[0]
	case reg == LR:
		if m.bank() == 0 {
			return f.reg[LR]
		}
		return f.lr[0]
	case reg >= 8 && reg <= 12 && m == FIQ:
		return f.fiq[reg-8]
	}

	return f.reg[reg]
}

// SetUserR sets the user bank value of a register regardless of the current
// mode.
func (f *File) SetUserR(reg int, v uint32) {
	reg &= 0xf
	m := f.Status.Mode

	switch {
	case reg == SP:
		if m.bank() == 0 {
			f.reg[SP] = v
		} else {
			f.sp[0] = v
		}
		return
	case reg == LR:
		if m.bank() == 0 {
			f.reg[LR] = v
		} else {
			f.lr[0] = v
		}
		return
	case reg >= 8 && reg <= 12 && m == FIQ:
		f.fiq[reg-8] = v
		return
	}

	f.reg[reg] = v
}

// String returns the visible registers in a four column grid, followed by
// the CPSR.
func (f *File) String() string {
	s := strings.Builder{}
	for i := 0; i < 16; i++ {
		s.WriteString(fmt.Sprintf("%-4s%08x", Name(i), f.reg[i]))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString("   ")
		}
	}
	s.WriteString(fmt.Sprintf("CPSR %s", f.Status.String()))
	return s.String()
}
