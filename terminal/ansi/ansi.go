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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi target.
const (
	targetPen       = 3
	targetPaper     = 4
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
	attrInverse   = 7
)

// the order of colours is the same as the ANSI colour number
var colours = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[m"

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	for _, c := range colours {
		Pens[c] = mustBuild(c, "", "", true)
		DimPens[c] = mustBuild(c, "", "", false)
	}

	PenStyles["bold"] = mustBuild("", "", "bold", false)
	PenStyles["underline"] = mustBuild("", "", "underline", false)
	PenStyles["inverse"] = mustBuild("", "", "inverse", false)
}

func mustBuild(pen, paper, attribute string, brightPen bool) string {
	s, err := ColorBuild(pen, paper, attribute, brightPen)
	if err != nil {
		panic(err)
	}
	return s
}

func colourNumber(col string) (int, bool) {
	col = strings.ToLower(col)
	if col == "normal" {
		return 9, true
	}
	for i, c := range colours {
		if c == col {
			return i, true
		}
	}
	return 0, false
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen bool) (string, error) {
	var p []string

	if pen != "" {
		n, ok := colourNumber(pen)
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		if brightPen {
			p = append(p, fmt.Sprintf("%d%d", targetBrightPen, n))
		} else {
			p = append(p, fmt.Sprintf("%d%d", targetPen, n))
		}
	}

	if paper != "" {
		n, ok := colourNumber(paper)
		if !ok {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		p = append(p, fmt.Sprintf("%d%d", targetPaper, n))
	}

	switch strings.ToLower(attribute) {
	case "bold":
		p = append(p, fmt.Sprintf("%d", attrBold))
	case "underline":
		p = append(p, fmt.Sprintf("%d", attrUnderline))
	case "inverse":
		p = append(p, fmt.Sprintf("%d", attrInverse))
	case "normal", "":
	default:
		return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
	}

	return fmt.Sprintf("\033[%sm", strings.Join(p, ";")), nil
}
