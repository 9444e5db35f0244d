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

package logger

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopheradvance/test"
)

func TestRepeatCollapse(t *testing.T) {
	l := newLogger(100)
	l.log("test", "hello")
	l.log("test", "hello")
	l.log("test", "hello")
	l.log("test", "goodbye")

	s := &strings.Builder{}
	l.write(s)
	test.Equate(t, s.String(), "test: hello (repeat x3)\ntest: goodbye\n")
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)
	l.log("test", "a")
	l.log("test", "b")
	l.log("test", "c")

	s := &strings.Builder{}
	l.write(s)
	test.Equate(t, s.String(), "test: b\ntest: c\n")
}

func TestTail(t *testing.T) {
	l := newLogger(100)
	l.log("test", "a")
	l.log("test", "b")
	l.log("test", "c")

	s := &strings.Builder{}
	l.tail(s, 2)
	test.Equate(t, s.String(), "test: b\ntest: c\n")

	// tail of more entries than exist is the whole log
	s.Reset()
	l.tail(s, 100)
	test.Equate(t, s.String(), "test: a\ntest: b\ntest: c\n")
}
