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

// Package colorterm implements the Terminal interface for the GopherNES
// debugger. It uses the easyterm package to read single key presses and
// colours output with ANSI sequences.
package colorterm

import (
	"io"

	"github.com/jetsetilly/gophernes/terminal/easyterm"
)

// ColorTerminal implements the terminal.Terminal interface. It requires a
// controlling terminal.
type ColorTerminal struct {
	EasyTerm *easyterm.Terminal

	output io.Writer
}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type. The terminal is not usable until Initialise() has been
// called.
func NewColorTerminal(output io.Writer) *ColorTerminal {
	return &ColorTerminal{output: output}
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	var err error
	ct.EasyTerm, err = easyterm.Open(ct.output)
	return err
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	if ct.EasyTerm == nil {
		return
	}
	ct.EasyTerm.Print("\r\n")
	_ = ct.EasyTerm.Close()
}

// IsRealTerminal implements the terminal.Terminal interface.
func (ct *ColorTerminal) IsRealTerminal() bool {
	return true
}
