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
	"fmt"

	"github.com/jetsetilly/gopheradvance/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheradvance/hardware/cpu/registers"
)

// Bus is the memory seen by the CPU.
type Bus interface {
	Read8(address uint32) uint8
	Read16(address uint32) uint16
	Read32(address uint32) uint32
	Write8(address uint32, data uint8)
	Write16(address uint32, data uint16)
	Write32(address uint32, data uint32)
}

// Result records the instruction most recently executed by the CPU. Used
// by the debugger for reflection.
type Result struct {
	// the address the instruction was fetched from
	Address uint32

	// the fetched opcode. 16 bits wide when Thumb is true
	Opcode uint32
	Thumb  bool
}

func (r Result) String() string {
	if r.Thumb {
		return fmt.Sprintf("%08x: %04x", r.Address, uint16(r.Opcode))
	}
	return fmt.Sprintf("%08x: %08x", r.Address, r.Opcode)
}

// what an executed instruction did to the program counter
type action int

const (
	// PC advances to the next instruction
	actionNone action = iota

	// the instruction wrote PC itself and the prefetch queue is flushed
	actionFlush
)

// CPU is an ARM7TDMI.
type CPU struct {
	Reg *registers.File
	mem Bus

	// the most recently executed instruction
	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem Bus) *CPU {
	return &CPU{
		Reg: registers.NewFile(),
		mem: mem,
	}
}

func (mc *CPU) String() string {
	return mc.Reg.String()
}

// Reset the CPU. Equivalent to asserting the reset exception.
func (mc *CPU) Reset() {
	mc.Reg.Reset()
	mc.LastResult = Result{}
	mc.exception(ExceptionReset, 0)
}

// Step executes the instruction at the current program counter.
//
// The program counter reads as the instruction address plus eight (plus
// four in Thumb state) for the duration of the instruction, mirroring the
// fetch/decode/execute pipeline of the real CPU.
func (mc *CPU) Step() error {
	if mc.Reg.Status.Thumb {
		return mc.stepThumb()
	}
	return mc.stepARM()
}

func (mc *CPU) stepARM() error {
	addr := mc.Reg.PC() &^ 0x03
	raw := mc.mem.Read32(addr)
	ins := instructions.DecodeARM(raw)

	mc.LastResult = Result{Address: addr, Opcode: raw}

	st := mc.Reg.Status
	if !ins.Condition().Passed(st.Negative, st.Zero, st.Carry, st.Overflow) {
		mc.Reg.SetPC(addr + 4)
		return nil
	}

	mc.Reg.SetPC(addr + 8)

	act, err := mc.executeARM(addr, ins)
	if err != nil {
		return err
	}

	if act == actionNone {
		mc.Reg.SetPC(addr + 4)
	}

	return nil
}

func (mc *CPU) stepThumb() error {
	addr := mc.Reg.PC() &^ 0x01
	raw := mc.mem.Read16(addr)

	mc.LastResult = Result{Address: addr, Opcode: uint32(raw), Thumb: true}

	ins, err := instructions.DecodeThumb(raw)
	if err != nil {
		// an undefined pattern takes the undefined instruction trap
		mc.exception(ExceptionUndefined, addr+2)
		return nil
	}

	mc.Reg.SetPC(addr + 4)

	act, err := mc.executeThumb(addr, ins)
	if err != nil {
		return err
	}

	if act == actionNone {
		mc.Reg.SetPC(addr + 2)
	}

	return nil
}
