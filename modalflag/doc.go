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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Whereas with flag.FlagSet you call Parse() with the array
// of strings as the only argument, with modalflag you first call NewArgs()
// with the arguments and then Parse() with no arguments:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() functions.
//
// The important difference between the standard flag package and this one is
// the handling of "modes". A mode is a special command line argument that,
// when specified, puts the program into a different mode of operation, in
// the manner of the go command (build, doc, test, etc.). Each mode can carry
// a different set of flags and expected arguments.
//
// Sub-modes are declared with the AddSubModes() function:
//
//	md.AddSubModes("run", "debug", "disasm")
//
// Subsequent calls to Parse() process flags in the normal way and then check
// whether the first remaining argument is one of these modes. The sequence
// for parsing a mode's own flags is: NewMode(), add flags and sub-modes for
// that mode, Parse() again. The path of modes encountered is available with
// the Path() function.
//
// All sub-mode comparisons are case insensitive. The first sub-mode added is
// the default, used when no mode argument is given.
package modalflag
