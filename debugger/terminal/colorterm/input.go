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

// TermReadKey implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadKey(prompt terminal.Prompt) (byte, error) {
	ct.EasyTerm.Print(ansi.ClearLine)
	ct.EasyTerm.Print("\r")

	switch prompt.Type {
	case terminal.PromptTypeCPUStep:
		ct.EasyTerm.Print("%s", ansi.PenStyles["bold"])
	case terminal.PromptTypeJammed:
		ct.EasyTerm.Print("%s", ansi.Pens["red"])
	}
	ct.EasyTerm.Print("%s", prompt.String())
	ct.EasyTerm.Print(ansi.NormalPen)

	k, err := ct.EasyTerm.ReadKey()
	if err != nil {
		return 0, err
	}

	// the key press is not echoed in cbreak mode so the output continues on
	// a fresh line
	ct.EasyTerm.Print("\r\n")

	return k, nil
}
