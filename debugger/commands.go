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
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/disassembly"
	"github.com/jetsetilly/gopheradvance/logger"
)

// the list of debugger commands and the help text for each. order is
// meaningful, this is the order they are presented by the HELP command.
var commands = []struct {
	name string
	help string
}{
	{"HELP", "show this help"},
	{"STEP", "STEP [n] - execute the next instruction (or the next n instructions)"},
	{"RUN", "RUN [n] - run until interrupted (or for n instructions)"},
	{"REGISTERS", "show the register file. changed entries are marked"},
	{"DISASM", "DISASM address [n] [THUMB|ARM] - disassemble n instructions from address"},
	{"PEEK", "PEEK address [n] - show n bytes of memory from address"},
	{"POKE", "POKE address value [value...] - write bytes to memory"},
	{"CARTRIDGE", "show information about the attached cartridge"},
	{"LOG", "show the contents of the permanent log"},
	{"MEMVIZ", "MEMVIZ [filename] - write the hardware graph in graphviz dot format"},
	{"RESET", "reset the machine"},
	{"QUIT", "quit the debugger"},
}

// parseInput dispatches a single line of input from the terminal. an empty
// line steps the machine.
func (dbg *Debugger) parseInput(input string) error {
	toks := strings.Fields(input)
	if len(toks) == 0 {
		return dbg.step(1)
	}

	cmd := strings.ToUpper(toks[0])
	args := toks[1:]

	switch cmd {
	case "HELP":
		for _, c := range commands {
			dbg.printLine(terminal.StyleHelp, "%-10s %s", c.name, c.help)
		}

	case "QUIT", "EXIT":
		dbg.quit = true

	case "RESET":
		dbg.gba.Reset()
		if dbg.gba.Mem.Cart.Attached() {
			dbg.gba.BootDirect()
		}
		dbg.snapshotRegisters()
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case "STEP":
		n := 1
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf("STEP: not a count (%s)", args[0])
			}
		}
		return dbg.step(n)

	case "RUN":
		n := 0
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf("RUN: not a count (%s)", args[0])
			}
		}
		return dbg.run(n)

	case "REGISTERS", "REG":
		dbg.printRegisters()

	case "DISASM":
		return dbg.disasm(args)

	case "PEEK":
		return dbg.peek(args)

	case "POKE":
		return dbg.poke(args)

	case "CARTRIDGE", "CART":
		dbg.cartridge()

	case "LOG":
		logger.BorrowLog(func(entries []logger.Entry) {
			for _, e := range entries {
				dbg.printLine(terminal.StyleLog, "%s", e.String())
			}
		})

	case "MEMVIZ":
		return dbg.memviz(args)

	default:
		return curated.Errorf("unrecognised command (%s)", cmd)
	}

	return nil
}

// step the machine by n instructions, echoing each executed instruction to
// the terminal.
func (dbg *Debugger) step(n int) error {
	dbg.snapshotRegisters()
	for i := 0; i < n; i++ {
		if err := dbg.gba.Step(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleCPUStep, "%s", dbg.lastStep())
	}
	return nil
}

// run the machine until interrupted, or for a maximum of max instructions. a
// max of zero means no maximum.
func (dbg *Debugger) run(max int) error {
	dbg.snapshotRegisters()

	for i := 0; max == 0 || i < max; i++ {
		if err := dbg.gba.Step(); err != nil {
			return err
		}

		// any keypress stops the running machine
		if dbg.term.TermReadCheck() {
			break
		}

		select {
		case sig := <-dbg.events.Signal:
			err := dbg.events.SignalHandler(sig)
			if !curated.Is(err, terminal.UserInterrupt) {
				dbg.quit = true
			}
			dbg.printLine(terminal.StyleCPUStep, "%s", dbg.lastStep())
			return nil
		default:
		}
	}

	dbg.printLine(terminal.StyleCPUStep, "%s", dbg.lastStep())
	return nil
}

// lastStep returns the disassembly of the most recently executed instruction.
func (dbg *Debugger) lastStep() string {
	res := dbg.gba.CPU.LastResult
	e := disassembly.FromMemory(dbg.gba.Mem, res.Address, res.Thumb)
	return e.String()
}

func (dbg *Debugger) disasm(args []string) error {
	if len(args) == 0 {
		return curated.Errorf("DISASM: address required")
	}

	address, err := parseWord(args[0])
	if err != nil {
		return err
	}

	count := 16
	thumb := dbg.gba.CPU.Reg.Status.Thumb

	for _, a := range args[1:] {
		switch strings.ToUpper(a) {
		case "THUMB":
			thumb = true
		case "ARM":
			thumb = false
		default:
			count, err = strconv.Atoi(a)
			if err != nil || count < 1 {
				return curated.Errorf("DISASM: not a count (%s)", a)
			}
		}
	}

	width := uint32(4)
	if thumb {
		width = 2
	}

	entries := disassembly.Disassemble(dbg.gba.Mem, address, address+uint32(count)*width, thumb)
	for _, e := range entries {
		dbg.printLine(terminal.StyleFeedback, "%s", e.String())
	}

	return nil
}

func (dbg *Debugger) peek(args []string) error {
	if len(args) == 0 {
		return curated.Errorf("PEEK: address required")
	}

	address, err := parseWord(args[0])
	if err != nil {
		return err
	}

	count := 16
	if len(args) > 1 {
		count, err = strconv.Atoi(args[1])
		if err != nil || count < 1 {
			return curated.Errorf("PEEK: not a count (%s)", args[1])
		}
	}

	s := strings.Builder{}
	for i := 0; i < count; i++ {
		if i%8 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("0x%08x  ", address+uint32(i)))
		}
		v, ok := dbg.gba.Mem.Peek(address + uint32(i))
		if ok {
			s.WriteString(fmt.Sprintf("%02x ", v))
		} else {
			s.WriteString("-- ")
		}
	}
	dbg.printLine(terminal.StyleFeedback, s.String())

	return nil
}

func (dbg *Debugger) poke(args []string) error {
	if len(args) < 2 {
		return curated.Errorf("POKE: address and at least one value required")
	}

	address, err := parseWord(args[0])
	if err != nil {
		return err
	}

	for i, a := range args[1:] {
		v, err := parseWord(a)
		if err != nil {
			return err
		}
		if v > 0xff {
			return curated.Errorf("POKE: not a byte value (%s)", a)
		}
		if !dbg.gba.Mem.Poke(address+uint32(i), uint8(v)) {
			return curated.Errorf("POKE: address not mapped (0x%08x)", address+uint32(i))
		}
	}

	return nil
}

func (dbg *Debugger) cartridge() {
	cart := dbg.gba.Mem.Cart
	if !cart.Attached() {
		dbg.printLine(terminal.StyleFeedback, "no cartridge attached")
		return
	}

	dbg.printLine(terminal.StyleInstrument, "%s", cart.String())
	dbg.printLine(terminal.StyleInstrument, "file: %s", cart.Filename)
	dbg.printLine(terminal.StyleInstrument, "hash: %s", cart.Hash)
	dbg.printLine(terminal.StyleInstrument, "maker: %s  version: %d", cart.Header.MakerCode, cart.Header.Version)
	if !cart.Header.ValidComplement {
		dbg.printLine(terminal.StyleInstrument, "header complement is invalid")
	}
}

func (dbg *Debugger) memviz(args []string) error {
	filename := "gopheradvance.dot"
	if len(args) > 0 {
		filename = args[0]
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("MEMVIZ: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.gba)
	dbg.printLine(terminal.StyleFeedback, "hardware graph written to %s", filename)

	return nil
}

// parseWord interprets a numeric argument. plain numbers are treated as
// hexadecimal, which is almost always what is wanted at a debugging prompt.
// the usual prefixes select other bases.
func parseWord(s string) (uint32, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, curated.Errorf("cannot interpret value (%s)", s)
		}
		return uint32(v), nil
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, curated.Errorf("cannot interpret value (%s)", s)
	}
	return uint32(v), nil
}
