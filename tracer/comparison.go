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

package tracer

import (
	"bufio"
	"io"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// Sentinal error patterns.
const (
	Mismatch       = "tracer: mismatch at line %d: expected '%s' got '%s'"
	GoldenFinished = "tracer: reference log finished after %d lines"
	GoldenError    = "tracer: reference log: %v"
)

// Comparison checks trace lines against a reference log.
type Comparison struct {
	golden *bufio.Scanner

	// number of lines that have been compared
	lines int
}

// NewComparison is the preferred method of initialisation for the Comparison
// type.
func NewComparison(golden io.Reader) *Comparison {
	return &Comparison{
		golden: bufio.NewScanner(golden),
	}
}

// Lines returns the number of lines that have been successfully compared.
func (cmp *Comparison) Lines() int {
	return cmp.lines
}

// Check compares the line with the next line in the reference log. Returns a
// Mismatch error if the lines are different. If the reference log has no more
// lines then a GoldenFinished error is returned.
func (cmp *Comparison) Check(line string) error {
	if !cmp.golden.Scan() {
		if err := cmp.golden.Err(); err != nil {
			return curated.Errorf(GoldenError, err)
		}
		return curated.Errorf(GoldenFinished, cmp.lines)
	}

	expected := Comparable(cmp.golden.Text())
	got := Comparable(line)
	if expected != got {
		return curated.Errorf(Mismatch, cmp.lines+1, expected, got)
	}

	cmp.lines++
	return nil
}

// Comparable returns the part of the trace line that is considered when
// comparing lines. Everything after the SP field is removed.
func Comparable(line string) string {
	line = strings.TrimRight(line, "\r\n")

	i := strings.Index(line, " SP:")
	if i == -1 {
		return line
	}

	// the SP label and two hex digits
	end := i + len(" SP:") + 2
	if end > len(line) {
		return line
	}
	return line[:end]
}
