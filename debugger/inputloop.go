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
	"io"
	"strings"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/disassembly"
)

// inputLoop reads and dispatches commands until the QUIT command, an
// unrecoverable error or the end of input.
func (dbg *Debugger) inputLoop() error {
	for !dbg.quit {
		prompt := terminal.Prompt{
			Type:    terminal.PromptTypeCPUStep,
			Content: dbg.promptContent(),
		}

		input, err := dbg.term.TermRead(prompt, dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.handleInterrupt()
				continue
			}
			if curated.Is(err, terminal.UserAbort) || err == io.EOF {
				return nil
			}
			return err
		}

		err = dbg.parseInput(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// promptContent returns the disassembly of the instruction that will be
// executed by the next STEP.
func (dbg *Debugger) promptContent() string {
	pc := dbg.gba.CPU.Reg.PC()
	e := disassembly.FromMemory(dbg.gba.Mem, pc, dbg.gba.CPU.Reg.Status.Thumb)
	return e.String()
}

// handleInterrupt is called when the terminal has caught a SIGINT. a second
// confirmation is required before quitting.
func (dbg *Debugger) handleInterrupt() {
	confirm, err := dbg.term.TermRead(terminal.Prompt{
		Type:    terminal.PromptTypeConfirm,
		Content: "really quit (y/n) ",
	}, dbg.events)

	if err != nil {
		// another interrupt while we were asking the question. take that as
		// a firm yes
		dbg.quit = true
		return
	}

	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(confirm)), "Y") {
		dbg.quit = true
	}
}
