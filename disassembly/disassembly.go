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

// Package disassembly produces assembly text from machine code. It decodes
// with the same tables the CPU executes from, so anything the CPU can run
// can be disassembled and anything it cannot is shown as <unknown>.
package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopheradvance/hardware/cpu/instructions"
)

// Bus is the read only view of memory the disassembler works from.
type Bus interface {
	Read16(address uint32) uint16
	Read32(address uint32) uint32
}

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint32

	// the opcode as fetched. 16 bits wide when Thumb is true
	Opcode uint32
	Thumb  bool

	// mnemonic and operands, tab separated
	Instruction string
}

func (e Entry) String() string {
	if e.Thumb {
		return fmt.Sprintf("0x%04X\t%s", uint16(e.Opcode), e.Instruction)
	}
	return fmt.Sprintf("0x%08X\t%s", e.Opcode, e.Instruction)
}

// FromMemory disassembles the instruction at the address.
func FromMemory(mem Bus, address uint32, thumb bool) Entry {
	if thumb {
		raw := mem.Read16(address &^ 0x01)
		e := Entry{Address: address &^ 0x01, Opcode: uint32(raw), Thumb: true}
		ins, err := instructions.DecodeThumb(raw)
		if err != nil {
			e.Instruction = "<unknown>"
			return e
		}
		e.Instruction = FormatThumb(ins)
		return e
	}

	raw := mem.Read32(address &^ 0x03)
	return Entry{
		Address:     address &^ 0x03,
		Opcode:      raw,
		Instruction: FormatARM(instructions.DecodeARM(raw)),
	}
}

// Disassemble returns entries for every instruction from the start address
// up to but not including the end address.
func Disassemble(mem Bus, start, end uint32, thumb bool) []Entry {
	width := uint32(4)
	if thumb {
		width = 2
	}

	entries := make([]Entry, 0, (end-start)/width)
	for address := start; address < end; address += width {
		entries = append(entries, FromMemory(mem, address, thumb))
	}
	return entries
}

// Write writes disassembled entries one per line with the address in the
// left column.
func Write(output io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(output, "0x%08X\t%s\n", e.Address, e.String()); err != nil {
			return err
		}
	}
	return nil
}
