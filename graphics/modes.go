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

package graphics

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherst/graphics/surface"
)

// Mode is the buffering mode of the graphics manager.
type Mode int

// List of valid Mode values. The values are fixed because they are part of
// the interface with the game engine.
const (
	DirectRendering Mode = 0
	SingleBuffering Mode = 1
	TripleBuffering Mode = 3
)

func (m Mode) String() string {
	switch m {
	case DirectRendering:
		return "direct"
	case SingleBuffering:
		return "single"
	case TripleBuffering:
		return "triple"
	}
	return fmt.Sprintf("unknown mode (%d)", int(m))
}

// ModeInfo describes a graphics mode.
type ModeInfo struct {
	Name        string
	Description string
	ID          Mode
}

var supportedModes = []ModeInfo{
	{Name: "single", Description: "Single buffering", ID: SingleBuffering},
	{Name: "triple", Description: "Triple buffering", ID: TripleBuffering},
}

// ModeByName returns the Mode for the name as returned by Mode.String().
func ModeByName(name string) (Mode, bool) {
	for _, m := range []Mode{DirectRendering, SingleBuffering, TripleBuffering} {
		if strings.EqualFold(m.String(), name) {
			return m, true
		}
	}
	return DirectRendering, false
}

// State is the graphics state that is changed by a transaction.
type State struct {
	Mode   Mode
	Width  int
	Height int
	Format surface.PixelFormat
}

func (s State) String() string {
	return fmt.Sprintf("%s %dx%d %s", s.Mode, s.Width, s.Height, s.Format)
}

// TransactionError is the bitmask returned by EndGFXTransaction().
type TransactionError int

// List of TransactionError bits.
const (
	TransactionSuccess TransactionError = 0

	ModeSwitchFailed   TransactionError = 1 << 0
	SizeChangeFailed   TransactionError = 1 << 1
	FormatNotSupported TransactionError = 1 << 2
)

func (e TransactionError) String() string {
	if e == TransactionSuccess {
		return "success"
	}
	s := []string{}
	if e&ModeSwitchFailed == ModeSwitchFailed {
		s = append(s, "mode switch failed")
	}
	if e&SizeChangeFailed == SizeChangeFailed {
		s = append(s, "size change failed")
	}
	if e&FormatNotSupported == FormatNotSupported {
		s = append(s, "format not supported")
	}
	return strings.Join(s, ", ")
}
