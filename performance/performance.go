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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware"
)

// number of instructions to execute between checks of the timer channel.
// checking the channel is relatively expensive.
const brake = 1024

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run for the specified duration and will create a cpu and/or
// memory profile as defined by the Profile argument.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, duration string) error {
	gba := hardware.NewGBA()

	err := gba.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	gba.BootDirect()

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// number of instructions executed during the measurement period
	ct := 0

	runner := func() error {
		// the timer channel signals false at the end of the leadtime and
		// true at the end of the measurement period
		timerChan := make(chan bool)

		// a short leadtime gives the runtime a chance to settle down before
		// measurement begins
		go func() {
			time.AfterFunc(2*time.Second, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		for {
			for i := 0; i < brake; i++ {
				if err := gba.Step(); err != nil {
					return err
				}
			}
			ct += brake

			select {
			case v := <-timerChan:
				if v {
					return nil
				}

				// leadtime has concluded. start counting
				ct = 0
			default:
			}
		}
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	mips := float64(ct) / dur.Seconds() / 1000000
	output.Write([]byte(fmt.Sprintf("%.2f mips (%d instructions in %.2f seconds)\n", mips, ct, dur.Seconds())))

	return nil
}
