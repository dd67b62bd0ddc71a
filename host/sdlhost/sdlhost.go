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

package sdlhost

import (
	"fmt"
	"image"
	"runtime"

	"github.com/jetsetilly/gopherst/hardware/ikbd"
	"github.com/jetsetilly/gopherst/keymap"
	"github.com/jetsetilly/gopherst/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// List of valid values for Options.Renderer.
const (
	RendererSDL = "sdl"
	RendererGL  = "gl32"
)

// Options for New().
type Options struct {
	// one of the renderer values. the empty string is RendererSDL
	Renderer string

	// initial window scale
	Scale int

	// synchronise presentation to the host display
	VSync bool

	// returns true if the image should be shown with a 4:3 aspect ratio.
	// can be nil
	Aspect func() bool
}

// Host is the SDL window.
type Host struct {
	ir   *ikbd.Interrupt
	opts Options

	window *sdl.Window
	rnd    renderer

	// size of the most recent image
	size image.Point

	// rectangle of the window that the image is drawn into
	viewport image.Rectangle

	buttons byte
	mouse   mouseScaler
}

// New creates a hidden window. The window is shown when the first image is
// presented.
func New(ir *ikbd.Interrupt, opts Options) (*Host, error) {
	runtime.LockOSThread()

	if opts.Scale < 1 {
		opts.Scale = 2
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: failed to initialize SDL2: %w", err)
	}

	h := &Host{
		ir:   ir,
		opts: opts,
	}

	flags := uint32(sdl.WINDOW_HIDDEN | sdl.WINDOW_RESIZABLE)

	switch opts.Renderer {
	case "", RendererSDL:
	case RendererGL:
		flags |= uint32(sdl.WINDOW_OPENGL)
		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
		_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	default:
		sdl.Quit()
		return nil, fmt.Errorf("sdlhost: unknown renderer (%s)", opts.Renderer)
	}

	h.window, err = sdl.CreateWindow("GopherST", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(320*opts.Scale), int32(240*opts.Scale), flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlhost: failed to create window: %w", err)
	}

	if opts.Renderer == RendererGL {
		h.rnd, err = newGL32(h.window, opts.VSync)
	} else {
		h.rnd, err = newSDLRenderer(h.window, opts.VSync)
	}
	if err != nil {
		h.Destroy()
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	logger.Logf(logger.Allow, "sdlhost", "using %s renderer", h.rendererName())

	return h, nil
}

func (h *Host) rendererName() string {
	if h.opts.Renderer == "" {
		return RendererSDL
	}
	return h.opts.Renderer
}

// Destroy the window.
func (h *Host) Destroy() {
	if h.rnd != nil {
		h.rnd.destroy()
		h.rnd = nil
	}
	if h.window != nil {
		_ = h.window.Destroy()
		h.window = nil
	}
	sdl.Quit()
}

// Service handles all pending SDL events. Returns true if the window has
// been closed.
func (h *Host) Service() (bool, error) {
	quit := false

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			s, ok := scancodes[ev.Keysym.Scancode]
			if !ok {
				logger.Logf(logger.Allow, "sdlhost", "no Atari scancode for %s", sdl.GetScancodeName(ev.Keysym.Scancode))
				continue
			}
			h.ir.Key(s, ev.Type == sdl.KEYUP)

		case *sdl.MouseMotionEvent:
			dx, dy := h.mouse.scale(int(ev.XRel), int(ev.YRel))
			if dx != 0 || dy != 0 {
				h.ir.MouseMove(dx, dy)
			}

		case *sdl.MouseButtonEvent:
			var b byte
			switch ev.Button {
			case sdl.BUTTON_LEFT:
				b = ikbd.ButtonLeft
			case sdl.BUTTON_RIGHT:
				b = ikbd.ButtonRight
			default:
				continue
			}
			if ev.Type == sdl.MOUSEBUTTONDOWN {
				h.buttons |= b
			} else {
				h.buttons &^= b
			}
			h.ir.MouseButtons(h.buttons)

		case *sdl.MouseWheelEvent:
			// the wheel is reported as a key press
			var s byte
			if ev.Y > 0 {
				s = keymap.ScanWheelUp
			} else if ev.Y < 0 {
				s = keymap.ScanWheelDown
			} else {
				continue
			}
			h.ir.Key(s, false)
			h.ir.Key(s, true)

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				h.layout()
			}
		}
	}

	return quit, nil
}

// Present draws the image to the window. The window is resized when the
// size of the image changes.
func (h *Host) Present(img *image.RGBA) error {
	sz := img.Bounds().Size()
	if sz.X == 0 || sz.Y == 0 {
		return nil
	}

	if sz != h.size {
		h.size = sz
		d := displaySize(sz, h.aspect())
		h.window.SetSize(int32(d.X*h.opts.Scale), int32(d.Y*h.opts.Scale))
		h.window.Show()
	}
	h.layout()

	return h.rnd.present(img, h.viewport)
}

func (h *Host) aspect() bool {
	return h.opts.Aspect != nil && h.opts.Aspect()
}

// layout recalculates the viewport for the current window size
func (h *Host) layout() {
	w, ht := h.window.GetSize()
	h.viewport = viewport(image.Pt(int(w), int(ht)), h.size, h.aspect())
	h.mouse.set(h.size, h.viewport.Size())
}
