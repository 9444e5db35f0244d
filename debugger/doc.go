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

// Package debugger implements a terminal debugger for the emulated console.
// It coordinates the emulation and a terminal.Terminal implementation,
// servicing commands typed at the prompt: stepping, running, inspecting
// registers and memory, and disassembling.
//
// The debugger is not required for normal emulation. The RUN mode of the
// main program runs the machine without any of the machinery found here.
package debugger
