// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

// Package terminal defines the operations required for the debugger's
// terminal interface. Implementations read single key presses and print
// styled lines of output.
//
// The plainterm package is the basic implementation and works with any
// io.Reader and io.Writer. The colorterm package puts the controlling
// terminal into cbreak mode and colours output according to the Style.
package terminal
