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

package debugger_test

import (
	"encoding/binary"
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/debugger"
	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/test"
)

// mockTerm is a scripted terminal. each TermRead() returns the next line of
// the script and output is collected for inspection.
type mockTerm struct {
	script []string
	idx    int
	output []string
}

func (trm *mockTerm) Initialise() error { return nil }

func (trm *mockTerm) CleanUp() {}

func (trm *mockTerm) RegisterTabCompletion(terminal.TabCompletion) {}

func (trm *mockTerm) Silence(bool) {}

func (trm *mockTerm) TermReadCheck() bool { return false }

func (trm *mockTerm) IsInteractive() bool { return false }

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	trm.output = append(trm.output, s)
}

func (trm *mockTerm) TermRead(_ terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	if trm.idx >= len(trm.script) {
		return "", io.EOF
	}
	s := trm.script[trm.idx]
	trm.idx++
	return s, nil
}

func (trm *mockTerm) contains(sub string) bool {
	for _, s := range trm.output {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// testROM builds a cartridge image with a valid header and a short program
// at the entry point.
func testROM(program []uint32) []byte {
	rom := make([]byte, 0x200)

	for i, p := range program {
		binary.LittleEndian.PutUint32(rom[i*4:], p)
	}

	copy(rom[0xa0:], "TEST")
	copy(rom[0xac:], "ATSE")
	copy(rom[0xb0:], "01")
	rom[0xb2] = 0x96
	chk := uint8(0)
	for _, b := range rom[0xa0:0xbd] {
		chk -= b
	}
	rom[0xbd] = chk - 0x19

	return rom
}

func startDebugger(t *testing.T, script []string) *mockTerm {
	t.Helper()

	rom := testROM([]uint32{
		0xe3a0002a, // mov r0, #42
		0xe2800001, // add r0, r0, #1
		0xeafffffe, // b -8
	})

	trm := &mockTerm{script: script}

	dbg, err := debugger.NewDebugger(hardware.NewGBA(), trm)
	if err != nil {
		t.Fatalf("could not create debugger: %v", err)
	}

	err = dbg.Start(cartridgeloader.Loader{Filename: "test.gba", Data: rom})
	if err != nil {
		t.Fatalf("debugger returned error: %v", err)
	}

	return trm
}

func TestStepAndRegisters(t *testing.T) {
	trm := startDebugger(t, []string{"STEP", "REGISTERS", "QUIT"})

	test.ExpectedSuccess(t, trm.contains("mov\tR0, #42"))

	// R0 has changed since the snapshot so it carries the change marker
	test.ExpectedSuccess(t, trm.contains("R0  0000002a*"))
}

func TestEmptyInputSteps(t *testing.T) {
	trm := startDebugger(t, []string{"", "", "QUIT"})

	test.ExpectedSuccess(t, trm.contains("mov\tR0, #42"))
	test.ExpectedSuccess(t, trm.contains("add\tR0, R0, #1"))
}

func TestPeekPoke(t *testing.T) {
	trm := startDebugger(t, []string{"POKE 03000000 ff", "PEEK 03000000 1", "QUIT"})

	test.ExpectedSuccess(t, trm.contains("0x03000000  ff"))
}

func TestDisasm(t *testing.T) {
	trm := startDebugger(t, []string{"DISASM 08000000 2", "QUIT"})

	test.ExpectedSuccess(t, trm.contains("mov\tR0, #42"))
	test.ExpectedSuccess(t, trm.contains("add\tR0, R0, #1"))
}

func TestUnrecognisedCommand(t *testing.T) {
	trm := startDebugger(t, []string{"WOBBLE", "QUIT"})

	test.ExpectedSuccess(t, trm.contains("unrecognised command (WOBBLE)"))
}

func TestCartridgeCommand(t *testing.T) {
	trm := startDebugger(t, []string{"CARTRIDGE", "QUIT"})

	test.ExpectedSuccess(t, trm.contains("test.gba"))
}

func TestNoCartridge(t *testing.T) {
	trm := &mockTerm{script: []string{"CARTRIDGE", "RESET", "QUIT"}}

	dbg, err := debugger.NewDebugger(hardware.NewGBA(), trm)
	if err != nil {
		t.Fatalf("could not create debugger: %v", err)
	}

	// the debugger can start with nothing in the cartridge windows
	err = dbg.Start(cartridgeloader.Loader{})
	if err != nil {
		t.Fatalf("debugger returned error: %v", err)
	}

	test.ExpectedSuccess(t, trm.contains("no cartridge attached"))
	test.ExpectedSuccess(t, trm.contains("machine reset"))
}
