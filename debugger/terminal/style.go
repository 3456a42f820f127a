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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit. The most likely treatment is to print different styles
// in different colours.
type Style int

// List of terminal styles.
const (
	// feedback from the debugger in response to a user command
	StyleFeedback Style = iota

	// the trace line for an executed instruction
	StyleCPUStep

	// information about the state of the machine. the register display for
	// example
	StyleInstrument

	// help text
	StyleHelp

	// entries from the log
	StyleLog

	// error messages
	StyleError
)
