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

package plainterm_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/debugger/terminal/plainterm"
	"github.com/jetsetilly/gophernes/terminal/easyterm"
	"github.com/jetsetilly/gophernes/test"
)

func TestReadKey(t *testing.T) {
	out := &strings.Builder{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("s\n\nrun\nq"), out)
	test.ExpectEquality(t, pt.IsRealTerminal(), false)

	expected := []byte{'s', easyterm.KeyLineFeed, 'r', 'q', easyterm.KeyEndOfFile, easyterm.KeyEndOfFile}
	for _, e := range expected {
		k, err := pt.TermReadKey(terminal.Prompt{Content: "C000"})
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, k, e)
	}

	// prompt is not written for input that isn't a real terminal
	test.ExpectEquality(t, out.String(), "")
}

func TestPrintLine(t *testing.T) {
	out := &strings.Builder{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), out)
	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleError, "world")
	test.ExpectEquality(t, out.String(), "hello\n* world\n")
}
