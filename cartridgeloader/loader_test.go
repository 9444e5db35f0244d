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

package cartridgeloader_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestExtensions(t *testing.T) {
	for _, fn := range []string{"game.gba", "game.agb", "game.BIN", "dump.rom"} {
		_, err := cartridgeloader.NewLoader(fn)
		test.ExpectedSuccess(t, err)
	}

	_, err := cartridgeloader.NewLoader("game.zip")
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridgeloader.UnrecognisedExtension))
}

func TestShortName(t *testing.T) {
	cl, err := cartridgeloader.NewLoader("/roms/subdir/mygame.gba")
	test.ExpectedSuccess(t, err)
	test.Equate(t, cl.ShortName(), "mygame")
}

func TestPrefilledData(t *testing.T) {
	cl := cartridgeloader.Loader{Filename: "mem.gba", Data: []byte{0x01, 0x02, 0x03}}
	test.ExpectedSuccess(t, cl.Load())
	test.Equate(t, cl.Hash, "7037807198c22a7d2b0807371d763779a84fdfcf")
}
