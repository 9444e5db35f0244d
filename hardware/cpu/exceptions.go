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
	"github.com/jetsetilly/gopheradvance/hardware/cpu/registers"
)

// Exception identifies one of the CPU exceptions. The numeric value gives
// the position of the exception's hardware vector.
type Exception int

// The exceptions of the ARM7TDMI, in vector order.
const (
	ExceptionReset Exception = iota
	ExceptionUndefined
	ExceptionSoftwareInterrupt
	ExceptionPrefetchAbort
	ExceptionDataAbort
	ExceptionAddress26
	ExceptionInterrupt
	ExceptionFastInterrupt
)

func (exc Exception) String() string {
	switch exc {
	case ExceptionReset:
		return "reset"
	case ExceptionUndefined:
		return "undefined instruction"
	case ExceptionSoftwareInterrupt:
		return "software interrupt"
	case ExceptionPrefetchAbort:
		return "prefetch abort"
	case ExceptionDataAbort:
		return "data abort"
	case ExceptionAddress26:
		return "address exceeded"
	case ExceptionInterrupt:
		return "interrupt"
	case ExceptionFastInterrupt:
		return "fast interrupt"
	}
	return "unknown exception"
}

// vector returns the address the exception traps to.
func (exc Exception) vector() uint32 {
	return uint32(exc) * 4
}

// mode returns the privileged mode the exception is taken in.
func (exc Exception) mode() registers.Mode {
	switch exc {
	case ExceptionReset, ExceptionSoftwareInterrupt:
		return registers.Supervisor
	case ExceptionUndefined:
		return registers.Undefined
	case ExceptionPrefetchAbort, ExceptionDataAbort, ExceptionAddress26:
		return registers.Abort
	case ExceptionInterrupt:
		return registers.IRQ
	}
	return registers.FIQ
}

// exception switches to the exception's mode, saving the old status into
// the new mode's SPSR and the return address into the new mode's LR, and
// jumps through the hardware vector. Execution resumes in ARM state with
// interrupts disabled.
func (mc *CPU) exception(exc Exception, ret uint32) {
	old := mc.Reg.Status

	mc.Reg.SetMode(exc.mode())

	// user and system have no SPSR but no exception targets those modes
	_ = mc.Reg.SetSPSR(old)

	mc.Reg.SetR(registers.LR, ret)

	mc.Reg.Status.IRQDisable = true
	if exc == ExceptionReset || exc == ExceptionFastInterrupt {
		mc.Reg.Status.FIQDisable = true
	}
	mc.Reg.Status.Thumb = false

	mc.Reg.SetPC(exc.vector())
}

// Interrupt asserts the IRQ line. The exception is ignored while the
// status register's I flag is set. Returns true if the exception was
// taken.
func (mc *CPU) Interrupt() bool {
	if mc.Reg.Status.IRQDisable {
		return false
	}

	// the return address compensates for the pipeline so that a SUBS
	// PC,LR,#4 in the handler resumes correctly
	mc.exception(ExceptionInterrupt, mc.Reg.PC()+4)
	return true
}

// FastInterrupt asserts the FIQ line. The exception is ignored while the
// status register's F flag is set. Returns true if the exception was
// taken.
func (mc *CPU) FastInterrupt() bool {
	if mc.Reg.Status.FIQDisable {
		return false
	}
	mc.exception(ExceptionFastInterrupt, mc.Reg.PC()+4)
	return true
}
