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

// Package plainterm implements the Terminal interface for the GopherNES
// debugger. It's a simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/terminal/easyterm"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. Input is read a
// line at a time and the first character of the line is taken as the key
// press. An empty line is the same as pressing the return key.
type PlainTerminal struct {
	input      *bufio.Reader
	output     io.Writer
	realInput  bool
	realOutput bool
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	pt := &PlainTerminal{
		input:  bufio.NewReader(input),
		output: output,
	}
	if f, ok := input.(*os.File); ok {
		pt.realInput = easyterm.IsTerminal(f)
	}
	if f, ok := output.(*os.File); ok {
		pt.realOutput = easyterm.IsTerminal(f)
	}
	return pt
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	}

	io.WriteString(pt.output, s)
	io.WriteString(pt.output, "\n")
}

// TermReadKey implements the terminal.Input interface.
func (pt *PlainTerminal) TermReadKey(prompt terminal.Prompt) (byte, error) {
	// insert prompt into output stream
	if pt.realInput {
		io.WriteString(pt.output, prompt.String())
	}

	l, err := pt.input.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return 0, err
		}
		if l == "" {
			return easyterm.KeyEndOfFile, nil
		}
	}

	l = strings.TrimRight(l, "\r\n")
	if l == "" {
		return easyterm.KeyLineFeed, nil
	}
	return l[0], nil
}

// IsRealTerminal implements the terminal.Terminal interface.
func (pt *PlainTerminal) IsRealTerminal() bool {
	return pt.realInput && pt.realOutput
}
