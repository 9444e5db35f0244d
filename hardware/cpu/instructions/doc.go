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

// Package instructions decodes raw ARM and Thumb words into a classified
// instruction with accessors for every operand field. The package is shared
// by the execution paths of the cpu package and by the disassembly package;
// both see exactly the same decoding.
//
// Decoding is a walk over an ordered mask/value table. The order is load
// bearing in both instruction sets: several encodings are subsets of more
// general patterns and must be tested first.
package instructions
