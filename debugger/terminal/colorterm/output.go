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

package colorterm

import (
	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/terminal/ansi"
)

// TermPrintLine implements the terminal.Output interface
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	ct.EasyTerm.Print("\r")

	switch style {
	case terminal.StyleHelp:
		ct.EasyTerm.Print("%s", ansi.DimPens["white"])
	case terminal.StyleFeedback:
		ct.EasyTerm.Print("%s", ansi.DimPens["white"])
	case terminal.StyleCPUStep:
		ct.EasyTerm.Print("%s", ansi.Pens["yellow"])
	case terminal.StyleInstrument:
		ct.EasyTerm.Print("%s", ansi.Pens["cyan"])
	case terminal.StyleLog:
		ct.EasyTerm.Print("%s", ansi.DimPens["cyan"])
	case terminal.StyleError:
		ct.EasyTerm.Print("%s", ansi.Pens["red"])
		ct.EasyTerm.Print("* ")
	}

	ct.EasyTerm.Print("%s", s)
	ct.EasyTerm.Print(ansi.NormalPen)
	ct.EasyTerm.Print("\n")
}
