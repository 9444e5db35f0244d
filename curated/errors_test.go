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

package curated_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/test"
)

const testPattern = "test: %v"
const otherPattern = "other: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.Equate(t, curated.IsAny(e), true)
	test.Equate(t, curated.Is(e, testPattern), true)
	test.Equate(t, curated.Is(e, otherPattern), false)

	f := curated.Errorf(otherPattern, e)
	test.Equate(t, curated.Is(f, testPattern), false)
	test.Equate(t, curated.Has(f, testPattern), true)
	test.Equate(t, curated.Has(f, otherPattern), true)
}

func TestNormalisation(t *testing.T) {
	// wrapping an error in the same pattern should not cause the message to
	// stutter
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf(testPattern, e)
	test.Equate(t, f.Error(), "test: foo")
}

func TestUncurated(t *testing.T) {
	test.Equate(t, curated.IsAny(nil), false)
	test.Equate(t, curated.Is(nil, testPattern), false)
	test.Equate(t, curated.Has(nil, testPattern), false)
}
