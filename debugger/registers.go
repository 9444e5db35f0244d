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

package debugger

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/hardware/cpu/registers"
)

// snapshotRegisters records the register file so that later changes can be
// marked by printRegisters(). called at the start of every STEP and RUN.
func (dbg *Debugger) snapshotRegisters() {
	for i := 0; i < registers.NumRegisters; i++ {
		dbg.lastRegs[i] = dbg.gba.CPU.Reg.R(i)
	}
	dbg.lastStatus = dbg.gba.CPU.Reg.Status
}

// printRegisters shows the register file in a four column grid. registers
// that have changed since the last snapshot are marked with an asterisk.
func (dbg *Debugger) printRegisters() {
	f := dbg.gba.CPU.Reg

	s := strings.Builder{}
	for i := 0; i < registers.NumRegisters; i++ {
		mark := " "
		if f.R(i) != dbg.lastRegs[i] {
			mark = "*"
		}
		s.WriteString(fmt.Sprintf("%-4s%08x%s", registers.Name(i), f.R(i), mark))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString("  ")
		}
	}

	s.WriteString(fmt.Sprintf("CPSR %s", f.Status.String()))
	if f.Status.Value() != dbg.lastStatus.Value() {
		s.WriteString(" *")
	}

	dbg.printLine(terminal.StyleInstrument, s.String())
}
