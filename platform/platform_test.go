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

package platform_test

import (
	"errors"
	"image"
	"os"
	"testing"
	"time"

	"github.com/jetsetilly/gopherst/graphics"
	"github.com/jetsetilly/gopherst/graphics/surface"
	"github.com/jetsetilly/gopherst/hardware/ikbd"
	"github.com/jetsetilly/gopherst/hardware/video"
	"github.com/jetsetilly/gopherst/keymap"
	"github.com/jetsetilly/gopherst/platform"
	"github.com/jetsetilly/gopherst/test"
	"github.com/jetsetilly/gopherst/userinput"
)

// preferences are written to the working directory
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "platform_test")
	if err != nil {
		panic(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
	r := m.Run()
	_ = os.Chdir(wd)
	_ = os.RemoveAll(dir)
	os.Exit(r)
}

type mockHost struct {
	quit      bool
	err       error
	services  int
	presented *image.RGBA
	destroyed bool
}

func (h *mockHost) Service() (bool, error) {
	h.services++
	return h.quit, h.err
}

func (h *mockHost) Present(img *image.RGBA) error {
	h.presented = img
	return nil
}

func (h *mockHost) Destroy() {
	h.destroyed = true
}

func newOSystem(t *testing.T) *platform.OSystem {
	t.Helper()
	hw, err := video.New(video.Videl)
	test.DemandSuccess(t, err)
	o, err := platform.NewOSystem(hw, platform.Options{
		Exit: func(code int) {
			t.Fatalf("unexpected exit: %d", code)
		},
	})
	test.DemandSuccess(t, err)
	return o
}

// press and release a key with the modifiers held down
func press(ir *ikbd.Interrupt, scancode byte, modifiers ...byte) {
	for _, m := range modifiers {
		ir.Key(m, false)
	}
	ir.Key(scancode, false)
	ir.Key(scancode, true)
	for _, m := range modifiers {
		ir.Key(m, true)
	}
}

// drain returns the types of all pending events
func drain(o *platform.OSystem) []userinput.EventType {
	var types []userinput.EventType
	var ev userinput.Event
	for o.PollEvent(&ev) {
		types = append(types, ev.Type)
	}
	return types
}

func TestPollEvent(t *testing.T) {
	o := newOSystem(t)
	defer o.Destroy()

	var ev userinput.Event
	test.ExpectFailure(t, o.PollEvent(&ev))

	const scanA = 0x1e
	o.Interrupt().Key(scanA, false)
	test.ExpectSuccess(t, o.PollEvent(&ev))
	test.ExpectEquality(t, ev.Type, userinput.EventKeyDown)
	test.ExpectEquality(t, ev.Kbd.ASCII, uint16('a'))

	o.Interrupt().Key(scanA, true)
	test.ExpectSuccess(t, o.PollEvent(&ev))
	test.ExpectEquality(t, ev.Type, userinput.EventKeyUp)

	test.ExpectFailure(t, o.PollEvent(&ev))
}

func TestQuitAction(t *testing.T) {
	o := newOSystem(t)
	defer o.Destroy()

	const scanQ = 0x10
	press(o.Interrupt(), scanQ, keymap.ScanCtrl)

	var ev userinput.Event

	// the ctrl key down event comes first
	test.ExpectSuccess(t, o.PollEvent(&ev))
	test.ExpectEquality(t, ev.Type, userinput.EventKeyDown)

	test.ExpectSuccess(t, o.PollEvent(&ev))
	test.ExpectEquality(t, ev.Type, userinput.EventQuit)
	test.ExpectSuccess(t, o.ShouldQuit())

	// quit events continue to be returned
	test.ExpectSuccess(t, o.PollEvent(&ev))
	test.ExpectEquality(t, ev.Type, userinput.EventQuit)
}

func TestMuteAction(t *testing.T) {
	o := newOSystem(t)
	defer o.Destroy()

	const scanU = 0x16
	press(o.Interrupt(), scanU, keymap.ScanCtrl)

	// the key down event for U is consumed
	types := drain(o)
	test.ExpectEquality(t, len(types), 3)
	for _, tp := range types {
		test.ExpectInequality(t, tp, userinput.EventQuit)
	}
	test.ExpectSuccess(t, o.Mixer().Muted())

	press(o.Interrupt(), scanU, keymap.ScanCtrl)
	_ = drain(o)
	test.ExpectFailure(t, o.Mixer().Muted())
}

func TestGraphicsAction(t *testing.T) {
	o := newOSystem(t)
	defer o.Destroy()

	const scanO = 0x18
	test.ExpectFailure(t, o.Graphics().IsOverlayVisible())

	press(o.Interrupt(), scanO, keymap.ScanCtrl, keymap.ScanAlt)
	types := drain(o)

	// ctrl and alt down, O up, alt and ctrl up
	test.ExpectEquality(t, len(types), 5)
	test.ExpectSuccess(t, o.Graphics().IsOverlayVisible())
}

func TestHost(t *testing.T) {
	o := newOSystem(t)

	h := &mockHost{}
	o.SetHost(h)

	var ev userinput.Event
	test.ExpectFailure(t, o.PollEvent(&ev))
	test.ExpectEquality(t, h.services, 1)

	// a host error is logged but is not fatal
	h.err = errors.New("test error")
	test.ExpectFailure(t, o.PollEvent(&ev))
	h.err = nil

	gm := o.Graphics()
	gm.BeginGFXTransaction()
	test.DemandSuccess(t, gm.SetGraphicsMode(graphics.SingleBuffering))
	gm.InitSize(320, 200, surface.CLUT8)
	test.DemandEquality(t, gm.EndGFXTransaction(), graphics.TransactionSuccess)

	test.ExpectSuccess(t, o.UpdateScreen())
	test.DemandSuccess(t, h.presented != nil)
	test.ExpectEquality(t, h.presented.Bounds().Size(), image.Pt(320, 200))

	h.quit = true
	test.ExpectSuccess(t, o.PollEvent(&ev))
	test.ExpectEquality(t, ev.Type, userinput.EventQuit)
	test.ExpectSuccess(t, o.ShouldQuit())

	o.Destroy()
	test.ExpectSuccess(t, h.destroyed)
}

func TestTimers(t *testing.T) {
	o := newOSystem(t)
	defer o.Destroy()

	var calls int
	test.DemandSuccess(t, o.Timer().Install("test", time.Millisecond, func() {
		calls++
	}))

	o.Delay(5)

	var ev userinput.Event
	_ = o.PollEvent(&ev)
	test.ExpectEquality(t, calls, 1)

	test.ExpectSuccess(t, o.GetMillis() >= 5)
}

func TestOwner(t *testing.T) {
	o := newOSystem(t)
	defer o.Destroy()

	mu := o.CreateMutex()
	mu.Lock()
	mu.Unlock()

	panicked := make(chan bool)
	go func() {
		defer func() {
			panicked <- recover() != nil
		}()
		var ev userinput.Event
		o.PollEvent(&ev)
	}()
	test.ExpectSuccess(t, <-panicked)
}

func TestFatalError(t *testing.T) {
	hw, err := video.New(video.Videl)
	test.DemandSuccess(t, err)

	var code int
	o, err := platform.NewOSystem(hw, platform.Options{
		Exit: func(c int) {
			code = c
		},
	})
	test.DemandSuccess(t, err)

	h := &mockHost{}
	o.SetHost(h)

	o.FatalError(errors.New("test error"))
	test.ExpectEquality(t, code, 10)
	test.ExpectSuccess(t, h.destroyed)
}

func TestImplementations(t *testing.T) {
	for _, name := range []string{video.Videl, video.SuperVidel, video.TT} {
		hw, err := video.New(name)
		test.DemandSuccess(t, err, name)
		test.DemandImplements(t, hw, (platform.Display)(nil), name)
	}
	test.DemandImplements(t, &mockHost{}, (platform.Host)(nil))
}
