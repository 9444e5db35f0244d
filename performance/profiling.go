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
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/gopheradvance/curated"
)

// Profile is used to specify the type of profile to be generated.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPUOnly
	ProfileMemOnly
	ProfileBoth
)

// ParseProfileString converts a string to a Profile value. the string is a
// comma separated list of "cpu", "mem", "all" or "none".
func ParseProfileString(s string) (Profile, error) {
	p := ProfileNone

	switch s {
	case "none", "":
		p = ProfileNone
	case "cpu":
		p = ProfileCPUOnly
	case "mem":
		p = ProfileMemOnly
	case "all":
		p = ProfileBoth
	default:
		return ProfileNone, curated.Errorf("unknown profile type (%s)", s)
	}

	return p, nil
}

// RunProfiler runs the supplied function with the profiles specified by the
// Profile argument. the tag is used to name the profile files.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile == ProfileCPUOnly || profile == ProfileBoth {
		err := ProfileCPU(tag+".cpu.profile", run)
		if err != nil {
			return err
		}
	} else {
		err := run()
		if err != nil {
			return err
		}
	}

	if profile == ProfileMemOnly || profile == ProfileBoth {
		return ProfileMem(tag + ".mem.profile")
	}

	return nil
}

// ProfileCPU runs the supplied function through the pprof CPU profiler,
// writing the profile to the named file.
func ProfileCPU(outFile string, run func() error) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// ProfileMem writes a heap profile to the named file.
func ProfileMem(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}
	defer f.Close()

	runtime.GC()

	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf("profiling: %v", err)
	}

	return nil
}
