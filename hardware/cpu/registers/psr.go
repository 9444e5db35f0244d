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
	"strings"

	"github.com/jetsetilly/gopheradvance/curated"
)

// Mode is the processor mode field of a program status register.
type Mode uint32

// The ARM7TDMI processor modes. Any other bit pattern in the mode field is
// invalid.
const (
	User       Mode = 0b10000
	FIQ        Mode = 0b10001
	IRQ        Mode = 0b10010
	Supervisor Mode = 0b10011
	Abort      Mode = 0b10111
	Undefined  Mode = 0b11011
	System     Mode = 0b11111
)

// error patterns for the registers package.
const (
	InvalidMode = "psr: invalid mode field (%#07b)"
	NoSPSR      = "psr: mode %s has no SPSR"
)

// Valid returns false if the mode field is one of the unassigned bit
// patterns.
func (m Mode) Valid() bool {
	switch m {
	case User, FIQ, IRQ, Supervisor, Abort, Undefined, System:
		return true
	}
	return false
}

func (m Mode) String() string {
	switch m {
	case User:
		return "USR"
	case FIQ:
		return "FIQ"
	case IRQ:
		return "IRQ"
	case Supervisor:
		return "SVC"
	case Abort:
		return "ABT"
	case Undefined:
		return "UND"
	case System:
		return "SYS"
	}
	return "???"
}

// Privileged returns true for every mode except User.
func (m Mode) Privileged() bool {
	return m != User
}

// Exception modes have a SPSR of their own. User and System use the shared
// bank but have no saved status.
func (m Mode) hasSPSR() bool {
	return m != User && m != System
}

// bank returns the index into the banked register arrays for the mode. User
// and System share a bank.
func (m Mode) bank() int {
	switch m {
	case FIQ:
		return 1
	case IRQ:
		return 2
	case Supervisor:
		return 3
	case Abort:
		return 4
	case Undefined:
		return 5
	}
	return 0 // User and System
}

// numBanks is the number of register banks indexed by Mode.bank().
const numBanks = 6

// bit positions in the 32-bit status register value.
const (
	maskNegative   = 1 << 31
	maskZero       = 1 << 30
	maskCarry      = 1 << 29
	maskOverflow   = 1 << 28
	maskIRQDisable = 1 << 7
	maskFIQDisable = 1 << 6
	maskThumb      = 1 << 5
	maskMode       = 0b11111
)

// Status is a program status register (CPSR or one of the SPSRs). The flag
// fields can be read and assigned directly; Value() and Load() convert to
// and from the 32-bit register format.
type Status struct {
	// condition flags
	Negative bool
	Zero     bool
	Carry    bool
	Overflow bool

	// interrupt disable flags
	IRQDisable bool
	FIQDisable bool

	// instruction set state. true means the CPU is executing 16-bit Thumb
	// instructions
	Thumb bool

	Mode Mode
}

// Reset the status register to its power-on state.
func (sr *Status) Reset() {
	*sr = Status{
		IRQDisable: true,
		FIQDisable: true,
		Mode:       Supervisor,
	}
}

// Value returns the status register as a 32-bit value, suitable for MRS and
// for saving as a SPSR.
func (sr Status) Value() uint32 {
	var v uint32
	if sr.Negative {
		v |= maskNegative
	}
	if sr.Zero {
		v |= maskZero
	}
	if sr.Carry {
		v |= maskCarry
	}
	if sr.Overflow {
		v |= maskOverflow
	}
	if sr.IRQDisable {
		v |= maskIRQDisable
	}
	if sr.FIQDisable {
		v |= maskFIQDisable
	}
	if sr.Thumb {
		v |= maskThumb
	}
	v |= uint32(sr.Mode) & maskMode
	return v
}

// Load the status register from a 32-bit value. An invalid mode field leaves
// the register untouched and returns an error.
func (sr *Status) Load(v uint32) error {
	m := Mode(v & maskMode)
	if !m.Valid() {
		return curated.Errorf(InvalidMode, m)
	}

	sr.Negative = v&maskNegative != 0
	sr.Zero = v&maskZero != 0
	sr.Carry = v&maskCarry != 0
	sr.Overflow = v&maskOverflow != 0
	sr.IRQDisable = v&maskIRQDisable != 0
	sr.FIQDisable = v&maskFIQDisable != 0
	sr.Thumb = v&maskThumb != 0
	sr.Mode = m

	return nil
}

// LoadFlags replaces only the condition flags (the top four bits), leaving
// control bits untouched. This is the MSR behaviour for unprivileged code
// and for the flag-only MSR encoding.
func (sr *Status) LoadFlags(v uint32) {
	sr.Negative = v&maskNegative != 0
	sr.Zero = v&maskZero != 0
	sr.Carry = v&maskCarry != 0
	sr.Overflow = v&maskOverflow != 0
}

// String returns the status register in the style "NzcV if arm SVC". Flag
// letters are upper-case when set.
func (sr Status) String() string {
	s := strings.Builder{}

	flag := func(b bool, t string, f string) {
		if b {
			s.WriteString(t)
		} else {
			s.WriteString(f)
		}
	}

	flag(sr.Negative, "N", "n")
	flag(sr.Zero, "Z", "z")
	flag(sr.Carry, "C", "c")
	flag(sr.Overflow, "V", "v")
	s.WriteString(" ")
	flag(sr.IRQDisable, "I", "i")
	flag(sr.FIQDisable, "F", "f")
	s.WriteString(" ")
	flag(sr.Thumb, "thumb", "arm")
	s.WriteString(" ")
	s.WriteString(sr.Mode.String())

	return s.String()
}
