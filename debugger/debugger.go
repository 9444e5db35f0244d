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
	"os"
	"os/signal"
	"syscall"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/hardware/cpu/registers"
	"github.com/jetsetilly/gopheradvance/version"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	gba  *hardware.GBA
	term terminal.Terminal

	// events forwarded to the terminal during TermRead()
	events *terminal.ReadEvents

	// register state at the start of the most recent STEP or RUN. used to
	// mark changed registers in the REGISTERS command.
	lastRegs   [registers.NumRegisters]uint32
	lastStatus registers.Status

	// set to true to cause the debugger to end cleanly at the next
	// opportunity
	quit bool
}

// NewDebugger creates and initialises everything required by the debugger.
func NewDebugger(gba *hardware.GBA, term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		gba:  gba,
		term: term,
	}

	dbg.events = &terminal.ReadEvents{
		Signal: make(chan os.Signal, 1),
		SignalHandler: func(sig os.Signal) error {
			switch sig {
			case syscall.SIGINT:
				return curated.Errorf(terminal.UserInterrupt)
			default:
			}
			return curated.Errorf(terminal.UserAbort)
		},
	}

	// we include the Kill signal but the chances are it'll never be seen
	signal.Notify(dbg.events.Signal, os.Interrupt, os.Kill, syscall.SIGHUP, syscall.SIGQUIT)

	term.RegisterTabCompletion(newTabCompletion())

	return dbg, nil
}

// Start the main debugger sequence. The cartridge loader is optional, a
// zero-value loader means the machine starts with no cartridge attached.
func (dbg *Debugger) Start(cartload cartridgeloader.Loader) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	ver, _ := version.Version()
	dbg.printLine(terminal.StyleFeedback, "%s %s", version.ApplicationName, ver)

	if cartload.Filename != "" {
		err = dbg.gba.AttachCartridge(cartload)
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}
		dbg.gba.BootDirect()
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.gba.Mem.Cart.String())
	}

	dbg.snapshotRegisters()

	err = dbg.inputLoop()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	return nil
}
