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

// Package logger is the central log repository for the emulation. There is
// one log for the entire application and it is accessed through the package
// level functions: Log() and Logf() to make a new entry; Write(), Tail() and
// WriteRecent() to retrieve entries; SetEcho() to forward new entries to an
// io.Writer as they arrive.
//
// Consecutive entries with the same tag and detail are collapsed into a
// single entry with a repeat count. The log is bounded; old entries are
// discarded once the maximum number of entries is reached.
package logger
