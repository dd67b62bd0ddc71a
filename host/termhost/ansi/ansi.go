// This file is part of GopherST.
//
// GopherST is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherST is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherST.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYelow   = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

var colors = map[string]int{
	"BLACK":   colBlack,
	"RED":     colRed,
	"GREEN":   colGreen,
	"YELLOW":  colYelow,
	"BLUE":    colBlue,
	"MAGENTA": colMagenta,
	"CYAN":    colCyan,
	"WHITE":   colWhite,
	"NORMAL":  colDefault,
}

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[m"

// ColorBuild creates the ANSI sequence for the pen and paper colors. Either
// color can be empty.
func ColorBuild(pen, paper string, brightPen, brightPaper bool) (string, error) {
	var codes []string

	if pen != "" {
		c, ok := colors[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown pen (%s)", pen)
		}
		t := targetPen
		if brightPen {
			t = targetBrightPen
		}
		codes = append(codes, fmt.Sprintf("%d%d", t, c))
	}

	if paper != "" {
		c, ok := colors[strings.ToUpper(paper)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown paper (%s)", paper)
		}
		t := targetPaper
		if brightPaper {
			t = targetBrightPaper
		}
		codes = append(codes, fmt.Sprintf("%d%d", t, c))
	}

	return "\033[" + strings.Join(codes, ";") + "m", nil
}

// TrueColor appends the CSI sequence for a 24bit pen and paper to b.
func TrueColor(b []byte, pen color.RGBA, paper color.RGBA) []byte {
	b = append(b, "\033[38;2;"...)
	b = appendRGB(b, pen)
	b = append(b, ";48;2;"...)
	b = appendRGB(b, paper)
	return append(b, 'm')
}

func appendRGB(b []byte, c color.RGBA) []byte {
	b = strconv.AppendUint(b, uint64(c.R), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(c.G), 10)
	b = append(b, ';')
	return strconv.AppendUint(b, uint64(c.B), 10)
}

// CursorHome is the CSI sequence to move the cursor to the top left of the
// terminal.
const CursorHome = "\033[H"

// ClearScreen is the CSI sequence to clear the entire terminal.
const ClearScreen = "\033[2J"

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorHide is the CSI sequence to hide the cursor.
const CursorHide = "\033[?25l"

// CursorShow is the CSI sequence to show the cursor.
const CursorShow = "\033[?25h"
