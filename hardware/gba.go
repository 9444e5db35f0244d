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

// Package hardware connects the emulated components of the Game Boy
// Advance into a console. The CPU and the memory system are accessible
// through the GBA type but for many purposes the GBA type itself is
// sufficient.
package hardware

import (
	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/hardware/cpu"
	"github.com/jetsetilly/gopheradvance/hardware/cpu/registers"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
)

// initial stack pointers as left by the BIOS boot sequence
const (
	stackUser       = uint32(0x03007f00)
	stackIRQ        = uint32(0x03007fa0)
	stackSupervisor = uint32(0x03007fe0)
)

// GBA is the console.
type GBA struct {
	CPU *cpu.CPU
	Mem *memory.Memory
}

// NewGBA creates a new emulated console.
func NewGBA() *GBA {
	mem := memory.NewMemory()
	return &GBA{
		CPU: cpu.NewCPU(mem),
		Mem: mem,
	}
}

// AttachCartridge inserts the GamePak named by the loader and resets the
// console.
func (gba *GBA) AttachCartridge(cartload cartridgeloader.Loader) error {
	if err := gba.Mem.Cart.Attach(cartload); err != nil {
		return err
	}
	gba.Reset()
	return nil
}

// Reset the console. Execution restarts at the reset vector, which without
// a BIOS image is an empty BIOS area. Most callers will want BootDirect().
func (gba *GBA) Reset() {
	gba.Mem.Reset()
	gba.CPU.Reset()
}

// BootDirect arranges the CPU as the BIOS boot code leaves it and starts
// execution at the cartridge entry point, skipping the BIOS entirely.
func (gba *GBA) BootDirect() {
	gba.Reset()

	reg := gba.CPU.Reg
	reg.SetR(registers.SP, stackSupervisor)
	reg.SetMode(registers.IRQ)
	reg.SetR(registers.SP, stackIRQ)
	reg.SetMode(registers.System)
	reg.SetR(registers.SP, stackUser)
	reg.Status.IRQDisable = false
	reg.Status.FIQDisable = false
	reg.SetPC(0x08000000)
}

// Step runs the console for one instruction.
func (gba *GBA) Step() error {
	return gba.CPU.Step()
}
