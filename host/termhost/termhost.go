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

package termhost

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/jetsetilly/gopherst/hardware/ikbd"
	"github.com/jetsetilly/gopherst/host/termhost/ansi"
	"github.com/jetsetilly/gopherst/host/termhost/easyterm"
	"github.com/jetsetilly/gopherst/keymap"
	"github.com/jetsetilly/gopherst/logger"
)

// Options for New().
type Options struct {
	// draw frames to the terminal
	Render bool

	// maximum number of frames drawn per second. zero means no limit
	FPS int
}

// Host is the terminal host.
type Host struct {
	term easyterm.Terminal
	ir   *ikbd.Interrupt
	dec  *decoder

	opts Options

	input []byte
	keys  []keyPress

	status string
	frame  []byte
	frames int
	last   time.Time
}

// New puts the terminal into raw mode and returns a Host that sends key
// presses to the interrupt handle. The layout is used to find the scancodes
// for the characters received from the terminal.
func New(ir *ikbd.Interrupt, layout keymap.Layout, opts Options) (*Host, error) {
	h := &Host{
		ir:    ir,
		dec:   newDecoder(layout),
		opts:  opts,
		input: make([]byte, 64),
	}

	err := h.term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("termhost: %w", err)
	}

	h.status, err = ansi.ColorBuild("green", "", true, false)
	if err != nil {
		return nil, fmt.Errorf("termhost: %w", err)
	}

	h.term.RawMode()
	if h.opts.Render {
		_, _ = h.term.Write([]byte(ansi.ClearScreen + ansi.CursorHide))
	}

	logger.Logf(logger.Allow, "termhost", "keyboard layout: %s", layout.Name)

	return h, nil
}

// SetLayout changes the layout used to find scancodes.
func (h *Host) SetLayout(layout keymap.Layout) {
	h.dec.layout = &layout
}

// Service reads all available input from the terminal. Returns true if the
// terminal received ctrl-c.
func (h *Host) Service() (bool, error) {
	h.keys = h.keys[:0]

	for {
		n, err := h.term.Read(h.input)
		if err != nil {
			return false, fmt.Errorf("termhost: %w", err)
		}
		if n == 0 {
			break
		}
		h.keys = h.dec.decode(h.input[:n], h.keys)
	}
	h.keys = h.dec.flush(h.keys)

	for _, k := range h.keys {
		press(h.ir, k)
	}

	if h.dec.suspend {
		h.dec.suspend = false
		h.term.CanonicalMode()
		easyterm.SuspendProcess()
		h.term.RawMode()
	}

	return h.dec.interrupt, nil
}

// press sends the make and break codes for the key press to the interrupt
// handle
func press(ir *ikbd.Interrupt, k keyPress) {
	if k.ctrl {
		ir.Key(keymap.ScanCtrl, false)
	}
	if k.shift {
		ir.Key(keymap.ScanLShift, false)
	}
	ir.Key(k.scancode, false)
	ir.Key(k.scancode, true)
	if k.shift {
		ir.Key(keymap.ScanLShift, true)
	}
	if k.ctrl {
		ir.Key(keymap.ScanCtrl, true)
	}
}

// Present draws the image to the terminal if rendering is enabled.
func (h *Host) Present(img *image.RGBA) error {
	h.frames++

	if !h.opts.Render {
		return nil
	}

	if h.opts.FPS > 0 {
		if time.Since(h.last) < time.Second/time.Duration(h.opts.FPS) {
			return nil
		}
	}
	h.last = time.Now()

	// the bottom row of the terminal is the status line
	g := h.term.Geometry()
	cols, rows := fit(img.Bounds().Size(), g.Cols, g.Rows-1)

	h.frame = render(h.frame[:0], img, cols, rows)
	h.frame = append(h.frame, ansi.ClearLine...)
	h.frame = append(h.frame, h.status...)
	h.frame = fmt.Appendf(h.frame, "%dx%d frame %d", img.Bounds().Dx(), img.Bounds().Dy(), h.frames)
	h.frame = append(h.frame, ansi.NormalPen...)

	_, err := h.term.Write(h.frame)
	if err != nil {
		return fmt.Errorf("termhost: %w", err)
	}
	return nil
}

// Destroy restores the terminal.
func (h *Host) Destroy() {
	if h.opts.Render {
		_, _ = h.term.Write([]byte(ansi.NormalPen + ansi.CursorShow + "\r\n"))
	}
	h.term.CleanUp()
}
