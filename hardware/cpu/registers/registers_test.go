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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/cpu/registers"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestStatusValue(t *testing.T) {
	var sr registers.Status
	sr.Reset()

	// power-on state: SVC mode, interrupts disabled, ARM state
	test.Equate(t, sr.Value(), uint32(0x0000_00d3))

	sr.Negative = true
	sr.Carry = true
	test.Equate(t, sr.Value(), uint32(0xa000_00d3))

	var lr registers.Status
	err := lr.Load(sr.Value())
	test.ExpectedSuccess(t, err)
	test.Equate(t, lr.Negative, true)
	test.Equate(t, lr.Zero, false)
	test.Equate(t, lr.Carry, true)
	test.Equate(t, lr.Mode.String(), "SVC")
}

func TestStatusInvalidMode(t *testing.T) {
	var sr registers.Status
	err := sr.Load(0x0000_0001)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, registers.InvalidMode), true)
}

func TestBankedSPLR(t *testing.T) {
	f := registers.NewFile()
	test.Equate(t, f.Status.Mode.String(), "SVC")

	f.SetR(registers.SP, 0x03007fe0)
	f.SetR(registers.LR, 0x08000004)

	f.SetMode(registers.IRQ)
	test.Equate(t, f.R(registers.SP), 0)
	test.Equate(t, f.R(registers.LR), 0)
	f.SetR(registers.SP, 0x03007fa0)

	// returning to supervisor restores its registers
	f.SetMode(registers.Supervisor)
	test.Equate(t, f.R(registers.SP), uint32(0x03007fe0))
	test.Equate(t, f.R(registers.LR), uint32(0x08000004))

	f.SetMode(registers.IRQ)
	test.Equate(t, f.R(registers.SP), uint32(0x03007fa0))
}

func TestUserSystemShareBank(t *testing.T) {
	f := registers.NewFile()
	f.SetMode(registers.System)
	f.SetR(registers.SP, 0x03007f00)

	f.SetMode(registers.User)
	test.Equate(t, f.R(registers.SP), uint32(0x03007f00))
}

func TestFIQBank(t *testing.T) {
	f := registers.NewFile()
	f.SetMode(registers.System)

	for i := 8; i <= 12; i++ {
		f.SetR(i, uint32(i))
	}

	f.SetMode(registers.FIQ)
	for i := 8; i <= 12; i++ {
		test.Equate(t, f.R(i), 0)
		f.SetR(i, uint32(i*100))
	}

	// R0-R7 are not banked
	f.SetR(0, 0xdeadbeef)

	f.SetMode(registers.System)
	for i := 8; i <= 12; i++ {
		test.Equate(t, f.R(i), uint32(i))
	}
	test.Equate(t, f.R(0), uint32(0xdeadbeef))

	// IRQ mode sees the user copies of R8-R12
	f.SetMode(registers.IRQ)
	for i := 8; i <= 12; i++ {
		test.Equate(t, f.R(i), uint32(i))
	}
}

func TestSPSR(t *testing.T) {
	f := registers.NewFile()
	f.SetMode(registers.User)

	// user mode has no SPSR
	_, err := f.SPSR()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, registers.NoSPSR), true)

	f.SetMode(registers.IRQ)
	var sr registers.Status
	sr.Reset()
	sr.Zero = true
	test.ExpectedSuccess(t, f.SetSPSR(sr))

	r, err := f.SPSR()
	test.ExpectedSuccess(t, err)
	test.Equate(t, r.Zero, true)
}

func TestUserBankAccess(t *testing.T) {
	f := registers.NewFile()
	f.SetMode(registers.User)
	f.SetR(registers.SP, 0x100)
	f.SetR(8, 0x200)

	f.SetMode(registers.FIQ)
	f.SetR(registers.SP, 0x300)
	f.SetR(8, 0x400)

	test.Equate(t, f.UserR(registers.SP), uint32(0x100))
	test.Equate(t, f.UserR(8), uint32(0x200))

	f.SetUserR(registers.SP, 0x101)
	f.SetMode(registers.User)
	test.Equate(t, f.R(registers.SP), uint32(0x101))
}
