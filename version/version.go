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

package version

// The name to use when referring to the application.
const ApplicationName = "GopherAdvance"

// number is set through the linker at build time. if number is empty then
// the project was probably built with a plain "go build".
var number string

// Version returns the version string and whether this is a numbered release
// version.
func Version() (string, bool) {
	if number == "" {
		return "unreleased", false
	}
	return number, true
}
