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
	"strings"
)

// tabCompletion implements the terminal.TabCompletion interface for the
// debugger's command set. only the command word is completed, arguments are
// left alone.
type tabCompletion struct {
	previous string
	matches  []string
	idx      int
}

func newTabCompletion() *tabCompletion {
	return &tabCompletion{}
}

// Complete implements the terminal.TabCompletion interface. repeated calls
// with the same input cycle through the available completions.
func (tc *tabCompletion) Complete(input string) string {
	// only complete the first word on the line
	if strings.ContainsAny(input, " ") {
		return input
	}

	if input == tc.previous && len(tc.matches) > 0 {
		tc.idx = (tc.idx + 1) % len(tc.matches)
		tc.previous = tc.matches[tc.idx]
		return tc.previous
	}

	prefix := strings.ToUpper(input)
	tc.matches = tc.matches[:0]
	for _, c := range commands {
		if strings.HasPrefix(c.name, prefix) {
			tc.matches = append(tc.matches, c.name)
		}
	}

	if len(tc.matches) == 0 {
		tc.previous = input
		return input
	}

	tc.idx = 0
	tc.previous = tc.matches[0]
	return tc.previous
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
	tc.previous = ""
	tc.matches = tc.matches[:0]
	tc.idx = 0
}
