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

package demo

import (
	"context"
	"image"
	"time"

	"github.com/jetsetilly/gopherst/curated"
	"github.com/jetsetilly/gopherst/graphics"
	"github.com/jetsetilly/gopherst/graphics/surface"
	"github.com/jetsetilly/gopherst/logger"
	"github.com/jetsetilly/gopherst/platform"
	"github.com/jetsetilly/gopherst/userinput"
)

// Sentinal error patterns.
const (
	TransactionFailed = "demo: graphics transaction failed (%s)"
)

// Options for NewEngine().
type Options struct {
	Mode   graphics.Mode
	Width  int
	Height int

	// the number of frames to run for. zero means run until quit
	Frames int

	// play a tone while running
	Tone bool
}

// Engine is the demo engine.
type Engine struct {
	o    *platform.OSystem
	gm   *graphics.Manager
	opts Options

	pal [256 * 3]byte

	frame int
	quit  bool

	// colour used for painting with the mouse
	paint byte

	// number of events received
	events int

	tone *Tone
}

// name of the timer installed by the engine
const cycleTimer = "demo.cycle"

// the range of palette entries that are rotated by the cycle timer
const (
	cycleStart = 16
	cycleLen   = 16
)

// the cursor is drawn with a keycolor that doesn't appear in the bitmap
const cursorKey = 1

// the arrow cursor. '#' is black, '.' is white and ' ' is transparent
var arrow = []string{
	"#          ",
	"##         ",
	"#.#        ",
	"#..#       ",
	"#...#      ",
	"#....#     ",
	"#.....#    ",
	"#......#   ",
	"#.......#  ",
	"#........# ",
	"#.....#####",
	"#..#..#    ",
	"#.# #..#   ",
	"##  #..#   ",
	"#    #..#  ",
	"     ####  ",
}

// NewEngine sets up the graphics of the OSystem. The game screen is created
// with a transaction using the mode and size in the options.
func NewEngine(o *platform.OSystem, opts Options) (*Engine, error) {
	e := &Engine{
		o:     o,
		gm:    o.Graphics(),
		opts:  opts,
		paint: 0xe0,
	}

	e.gm.BeginGFXTransaction()
	e.gm.SetGraphicsMode(opts.Mode)
	e.gm.InitSize(opts.Width, opts.Height, surface.CLUT8)
	if res := e.gm.EndGFXTransaction(); res != graphics.TransactionSuccess {
		return nil, curated.Errorf(TransactionFailed, res)
	}

	logger.Logf(logger.Allow, "demo", "%s %dx%d on %s", e.gm.GetGraphicsMode(), e.gm.GetWidth(), e.gm.GetHeight(), e.gm.Resolution())

	// RGB332 palette so that the colour of each entry is obvious
	for i := range 256 {
		e.pal[i*3] = byte(i>>5) * 36
		e.pal[i*3+1] = byte((i>>2)&7) * 36
		e.pal[i*3+2] = byte(i&3) * 85
	}
	e.gm.SetPalette(e.pal[:], 0, 256)

	e.pattern()
	e.setCursor()

	err := o.Timer().Install(cycleTimer, 100*time.Millisecond, e.cycle)
	if err != nil {
		return nil, err
	}

	if opts.Tone {
		e.tone = NewTone(o.Mixer().SampleRate(), 440, 2000)
		o.Mixer().SetSource(e.tone)
	}

	return e, nil
}

// Events returns the number of events received.
func (e *Engine) Events() int {
	return e.events
}

// Frames returns the number of frames presented.
func (e *Engine) Frames() int {
	return e.frame
}

// pattern draws coloured tiles and a border
func (e *Engine) pattern() {
	w, h := e.gm.GetWidth(), e.gm.GetHeight()

	e.gm.FillScreen(0)

	const tile = 16
	buf := make([]byte, tile*tile)
	for ty := 0; ty < h; ty += tile {
		for tx := 0; tx < w; tx += tile {
			c := byte((tx/tile + ty/tile*(w/tile)) & 0xff)
			if c == cursorKey {
				c = 0
			}
			for i := range buf {
				buf[i] = c
			}
			e.gm.CopyRectToScreen(buf, tile, tx, ty, tile, tile)
		}
	}

	// the border is drawn directly
	scr := e.gm.LockScreen()
	if scr != nil {
		b := scr.Bounds()
		scr.FillRect(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+2), 0xff)
		scr.FillRect(image.Rect(b.Min.X, b.Max.Y-2, b.Max.X, b.Max.Y), 0xff)
		scr.FillRect(image.Rect(b.Min.X, b.Min.Y, b.Min.X+2, b.Max.Y), 0xff)
		scr.FillRect(image.Rect(b.Max.X-2, b.Min.Y, b.Max.X, b.Max.Y), 0xff)
		e.gm.UnlockScreen()
	}
}

func (e *Engine) setCursor() {
	w, h := len(arrow[0]), len(arrow)
	buf := make([]byte, w*h)
	for y, row := range arrow {
		for x, c := range row {
			switch c {
			case '#':
				buf[y*w+x] = 0x00
			case '.':
				buf[y*w+x] = 0xff
			default:
				buf[y*w+x] = cursorKey
			}
		}
	}
	e.gm.SetMouseCursor(buf, w, h, 0, 0, cursorKey, surface.CLUT8)

	// the cursor palette is used when the cursor is drawn on the overlay
	e.gm.SetCursorPalette([]byte{0, 0, 0}, 0x00, 1)
	e.gm.SetCursorPalette([]byte{255, 255, 255}, 0xff, 1)

	e.gm.ShowMouse(true)
	e.gm.WarpMouse(e.gm.GetWidth()/2, e.gm.GetHeight()/2)
}

// cycle rotates a range of palette entries. called by the timer manager
func (e *Engine) cycle() {
	s := e.pal[cycleStart*3 : (cycleStart+cycleLen)*3]
	var first [3]byte
	copy(first[:], s[:3])
	copy(s, s[3:])
	copy(s[len(s)-3:], first[:])
	e.gm.SetPalette(s, cycleStart, cycleLen)
}

// overlay draws a frame on the overlay. the overlay pixels are RGB332
func (e *Engine) overlay() {
	e.gm.ClearOverlay()

	w, h := e.gm.GetOverlayWidth(), e.gm.GetOverlayHeight()
	bw, bh := w/2, h/4
	buf := make([]byte, bw*bh)
	for i := range buf {
		buf[i] = 0x03
	}
	for x := range bw {
		buf[x] = 0xff
		buf[(bh-1)*bw+x] = 0xff
	}
	e.gm.CopyRectToOverlay(buf, bw, (w-bw)/2, (h-bh)/2, bw, bh)
}

// HandleEvent implements the userinput.HandleInput interface.
func (e *Engine) HandleEvent(ev userinput.Event) error {
	e.events++
	logger.Logf(logger.Allow, "demo", "%s", ev)

	switch ev.Type {
	case userinput.EventKeyDown:
		switch ev.Kbd.Keycode {
		case userinput.KeycodeEscape:
			e.quit = true
		case userinput.KeycodeHelp:
			if e.gm.IsOverlayVisible() {
				e.gm.HideOverlay()
			} else {
				e.gm.ShowOverlay()
				e.overlay()
			}
		case userinput.KeycodeSpace:
			e.pattern()
		case userinput.KeycodeM:
			e.gm.ShowMouse(!e.gm.Cursor().Visible())
		case userinput.KeycodeUp:
			e.moveMouse(0, -8)
		case userinput.KeycodeDown:
			e.moveMouse(0, 8)
		case userinput.KeycodeLeft:
			e.moveMouse(-8, 0)
		case userinput.KeycodeRight:
			e.moveMouse(8, 0)
		}

	case userinput.EventLButtonDown:
		e.paintAt(ev.Mouse)

	case userinput.EventMouseMove:
		if e.o.Events().Modifiers()&userinput.KeyModShift == userinput.KeyModShift {
			e.paintAt(ev.Mouse)
		}

	case userinput.EventWheelUp:
		e.paint++
	case userinput.EventWheelDown:
		e.paint--
	}

	return nil
}

func (e *Engine) moveMouse(dx int, dy int) {
	p := e.gm.MousePosition()
	e.gm.WarpMouse(p.X+dx, p.Y+dy)
}

func (e *Engine) paintAt(p image.Point) {
	if e.gm.IsOverlayVisible() {
		return
	}
	const sz = 4
	buf := make([]byte, sz*sz)
	for i := range buf {
		buf[i] = e.paint
	}
	e.gm.CopyRectToScreen(buf, sz, p.X-sz/2, p.Y-sz/2, sz, sz)
}

// animate moves a block across the bottom of the game screen
func (e *Engine) animate() {
	if e.gm.IsOverlayVisible() {
		return
	}

	const sz = 8
	w, h := e.gm.GetWidth(), e.gm.GetHeight()
	if w < sz*2 || h < sz*2 {
		return
	}

	x := e.frame % (w - sz)
	y := h - sz*2

	buf := make([]byte, (sz+1)*sz)
	for i := range buf {
		if i%(sz+1) == 0 {
			buf[i] = 0
		} else {
			buf[i] = byte(e.frame)
		}
	}

	// the leftmost column clears the previous position of the block
	e.gm.CopyRectToScreen(buf, sz+1, x-1, y, sz+1, sz)
}

// Run the engine until Escape is pressed, a quit event is received or the
// context is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	defer e.o.Timer().Remove(cycleTimer)

	var ev userinput.Event

	for !e.quit {
		select {
		case <-ctx.Done():
			logger.Log(logger.Allow, "demo", ctx.Err())
			return nil
		default:
		}

		for e.o.PollEvent(&ev) {
			quit, err := userinput.HandleUserInput(ev, e)
			if err != nil {
				return err
			}
			if quit {
				e.quit = true
			}
		}
		if e.quit {
			break
		}

		e.animate()

		err := e.o.UpdateScreen()
		if err != nil {
			return err
		}
		e.frame++

		if e.opts.Frames > 0 && e.frame >= e.opts.Frames {
			break
		}

		// the chipset paces the loop when waiting for vblank
		if !e.gm.Preferences().WaitVBL.Get().(bool) {
			e.o.Delay(1)
		}
	}

	logger.Logf(logger.Allow, "demo", "ending after %d frames and %d events", e.frame, e.events)

	return nil
}
