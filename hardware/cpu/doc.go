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

// Package cpu emulates the ARM7TDMI. The CPU interprets both the ARM and
// Thumb instruction sets, sharing one ALU and barrel shifter between the
// two.
//
// The three stage pipeline of the real CPU is not modelled cycle by cycle.
// Instead, each call to Step() fetches, decodes and executes a single
// instruction while holding the program counter two fetches ahead, which
// is the only observable consequence of the pipeline.
package cpu
