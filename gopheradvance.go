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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/debugger"
	"github.com/jetsetilly/gopheradvance/debugger/terminal"
	"github.com/jetsetilly/gopheradvance/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopheradvance/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopheradvance/disassembly"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/jetsetilly/gopheradvance/modalflag"
	"github.com/jetsetilly/gopheradvance/performance"
	"github.com/jetsetilly/gopheradvance/statsview"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE")

	log := md.AddBool("log", false, "echo the log to stderr")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *log {
		logger.SetEcho(os.Stderr, true)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// newMachine creates a GBA, installing the BIOS image if one has been
// specified.
func newMachine(bios string) (*hardware.GBA, error) {
	gba := hardware.NewGBA()

	if bios != "" {
		data, err := os.ReadFile(bios)
		if err != nil {
			return nil, err
		}
		err = gba.Mem.LoadBIOS(data)
		if err != nil {
			return nil, err
		}
	}

	return gba, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	bios := md.AddString("bios", "", "BIOS image to install (optional)")
	stats := md.AddBool("stats", false, "launch statistics server (requires statsview build)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("GBA cartridge required for %s mode", md)

	case 1:
		cartload, err := cartridgeloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		gba, err := newMachine(*bios)
		if err != nil {
			return err
		}

		err = gba.AttachCartridge(cartload)
		if err != nil {
			return err
		}
		gba.BootDirect()

		if *stats {
			statsview.Launch(md.Output)
		}

		// run until interrupted
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)

		for {
			for i := 0; i < 1024; i++ {
				if err := gba.Step(); err != nil {
					return err
				}
			}

			select {
			case <-intChan:
				return nil
			default:
			}
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	bios := md.AddString("bios", "", "BIOS image to install (optional)")
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	profile := md.AddBool("profile", false, "run debugger through cpu profiler")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	gba, err := newMachine(*bios)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(gba, term)
	if err != nil {
		return err
	}

	var cartload cartridgeloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		// a cartridge is not required in debug mode. the machine starts
		// empty and a cartridge can be attached later
	case 1:
		cartload, err = cartridgeloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	dbgRun := func() error {
		return dbg.Start(cartload)
	}

	// if profile generation has been requested then pass the dbgRun()
	// function prepared above, through the ProfileCPU() command
	if *profile {
		err := performance.ProfileCPU("debug.cpu.profile", dbgRun)
		if err != nil {
			return err
		}
		return performance.ProfileMem("debug.mem.profile")
	}

	return dbgRun()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	thumb := md.AddBool("thumb", false, "disassemble as Thumb instructions")
	count := md.AddInt("count", 64, "number of instructions to disassemble")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("GBA cartridge required for %s mode", md)

	case 1:
		cartload, err := cartridgeloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		gba := hardware.NewGBA()
		err = gba.AttachCartridge(cartload)
		if err != nil {
			return err
		}

		width := uint32(4)
		if *thumb {
			width = 2
		}

		start := memorymap.OriginGamePak
		entries := disassembly.Disassemble(gba.Mem, start, start+uint32(*count)*width, *thumb)
		return disassembly.Write(md.Output, entries)

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run through profiler (cpu, mem, all)")
	stats := md.AddBool("stats", false, "launch statistics server (requires statsview build)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("GBA cartridge required for %s mode", md)

	case 1:
		cartload, err := cartridgeloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		if *stats {
			statsview.Launch(md.Output)
		}

		return performance.Check(md.Output, prf, cartload, *duration)

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}
