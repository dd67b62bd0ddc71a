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

package platform

import (
	"fmt"
	"image"
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/gopherst/assert"
	"github.com/jetsetilly/gopherst/events"
	"github.com/jetsetilly/gopherst/graphics"
	"github.com/jetsetilly/gopherst/hardware/ikbd"
	"github.com/jetsetilly/gopherst/keymap"
	"github.com/jetsetilly/gopherst/logger"
	"github.com/jetsetilly/gopherst/mixer"
	"github.com/jetsetilly/gopherst/ring"
	"github.com/jetsetilly/gopherst/timer"
	"github.com/jetsetilly/gopherst/userinput"
)

// Host is the window or terminal that the OSystem runs in.
type Host interface {
	// Service the host. Input received by the host is sent to the interrupt
	// handle given to the host when it was created. Returns true if the host
	// has been asked to quit
	Service() (bool, error)

	// Present the image to the user
	Present(img *image.RGBA) error

	Destroy()
}

// Display is the video hardware as seen by the host.
type Display interface {
	graphics.Hardware
	Scanout(dst *image.RGBA) (*image.RGBA, error)
}

// Options for NewOSystem().
type Options struct {
	// sample rate and buffer length of the mixer
	SampleRate   int
	BufferFrames int

	// called by FatalError(). should not return. if nil the program exits
	// with status 10
	Exit func(int)
}

// OSystem is the platform.
type OSystem struct {
	owner assert.Owner
	start time.Time
	exit  func(int)

	shared *ikbd.Shared

	host    Host
	display Display
	img     *image.RGBA

	events   *events.EventSource
	eventsPr *events.Preferences
	graphics *graphics.Manager
	mixer    *mixer.Manager
	timer    *timer.Manager

	quit bool
}

// Default values for Options.
const (
	DefaultSampleRate   = 44100
	DefaultBufferFrames = 1024
)

// NewOSystem is the preferred method of initialisation for the OSystem type.
// The goroutine that calls NewOSystem() owns the OSystem.
func NewOSystem(display Display, opts Options) (*OSystem, error) {
	if opts.SampleRate == 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.BufferFrames == 0 {
		opts.BufferFrames = DefaultBufferFrames
	}

	o := &OSystem{
		owner:   assert.NewOwner(),
		start:   time.Now(),
		exit:    opts.Exit,
		shared:  ikbd.NewShared(ring.DefaultCapacity),
		display: display,
		mixer:   mixer.NewManager(opts.SampleRate, opts.BufferFrames),
		timer:   timer.NewManager(),
	}

	if o.exit == nil {
		o.exit = os.Exit
	}

	var err error

	o.graphics, err = graphics.NewManager(display, graphics.Options{
		Fatal: o.FatalError,
	})
	if err != nil {
		return nil, fmt.Errorf("platform: %w", err)
	}

	l, err := keymap.LayoutByName("us")
	if err != nil {
		return nil, fmt.Errorf("platform: %w", err)
	}

	o.events = events.NewEventSource(o.shared.Poll(), keymap.NewTables(l), o.graphics)
	o.graphics.SetEventSource(o.events)

	// the layout preference replaces the tables created above
	o.eventsPr, err = events.NewPreferences(o.events)
	if err != nil {
		return nil, fmt.Errorf("platform: %w", err)
	}

	logger.Logf(logger.Allow, "platform", "keyboard layout: %s", o.events.Tables().Layout().Name)

	return o, nil
}

// SetHost sets the host. The host should be created with the handle returned
// by Interrupt().
func (o *OSystem) SetHost(host Host) {
	o.host = host
}

// Interrupt returns the handle used by the host to send input to the
// OSystem.
func (o *OSystem) Interrupt() *ikbd.Interrupt {
	return o.shared.Interrupt()
}

// Graphics returns the graphics manager.
func (o *OSystem) Graphics() *graphics.Manager {
	return o.graphics
}

// Events returns the event source.
func (o *OSystem) Events() *events.EventSource {
	return o.events
}

// EventsPreferences returns the preferences of the event source.
func (o *OSystem) EventsPreferences() *events.Preferences {
	return o.eventsPr
}

// Mixer returns the mixer manager.
func (o *OSystem) Mixer() *mixer.Manager {
	return o.mixer
}

// Timer returns the timer manager.
func (o *OSystem) Timer() *timer.Manager {
	return o.timer
}

// GetMillis returns the number of milliseconds since the OSystem was created.
func (o *OSystem) GetMillis() uint32 {
	return uint32(time.Since(o.start).Milliseconds())
}

// Delay for the number of milliseconds.
func (o *OSystem) Delay(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// CreateMutex returns a new mutex.
func (o *OSystem) CreateMutex() sync.Locker {
	return &sync.Mutex{}
}

// Quit requests that the program ends. ShouldQuit() will return true and the
// next call to PollEvent() will return a quit event.
func (o *OSystem) Quit() {
	o.quit = true
}

// ShouldQuit returns true if Quit() has been called or if the host has asked
// to quit.
func (o *OSystem) ShouldQuit() bool {
	return o.quit
}

// FatalError logs the error and ends the program.
func (o *OSystem) FatalError(err error) {
	logger.Log(logger.Allow, "platform", err)
	fmt.Fprintf(os.Stderr, "* error: %v\n", err)
	o.Destroy()
	o.exit(10)
}

func (o *OSystem) checkOwner(fn string) {
	if !o.owner.OnOwner() {
		panic(fmt.Sprintf("platform: %s called from a goroutine that doesn't own the OSystem", fn))
	}
}

// PollEvent fills in ev with the next input event. Returns false if there is
// no event.
//
// Each call services the host and ticks the timer and mixer managers before
// the event source is polled. Key combinations in the keymaps of the event
// source and of the graphics manager are acted upon and are not returned.
func (o *OSystem) PollEvent(ev *userinput.Event) bool {
	o.checkOwner("PollEvent()")

	if o.host != nil {
		quit, err := o.host.Service()
		if err != nil {
			logger.Log(logger.Allow, "platform", err)
		}
		if quit {
			o.quit = true
		}
	}

	o.timer.Tick(time.Now())

	err := o.mixer.Tick()
	if err != nil {
		logger.Log(logger.Allow, "platform", err)
	}

	if o.quit {
		*ev = userinput.Event{Type: userinput.EventQuit}
		return true
	}

	for o.events.PollEvent(ev) {
		if !o.action(ev) {
			return true
		}
		if o.quit {
			*ev = userinput.Event{Type: userinput.EventQuit}
			return true
		}
	}

	return false
}

// action performs the action for key down events that match a keymap.
// Returns true if the event has been consumed.
func (o *OSystem) action(ev *userinput.Event) bool {
	if ev.Type != userinput.EventKeyDown {
		return false
	}

	if a, ok := o.events.Keymap().Match(ev.Kbd); ok {
		switch a.ID {
		case events.ActionQuit:
			o.quit = true
		case events.ActionMute:
			o.mixer.SetMuted(!o.mixer.Muted())
		case events.ActionMenu:
			logger.Log(logger.Allow, "platform", "global main menu is not available")
		}
		return true
	}

	if a, ok := o.graphics.Keymap().Match(ev.Kbd); ok {
		return o.graphics.HandleAction(a.ID)
	}

	return false
}

// UpdateScreen presents the graphics and, if there is a host, shows the
// result on the host.
func (o *OSystem) UpdateScreen() error {
	o.checkOwner("UpdateScreen()")

	o.graphics.UpdateScreen()
	if o.host == nil {
		return nil
	}

	var err error
	o.img, err = o.display.Scanout(o.img)
	if err != nil {
		return fmt.Errorf("platform: %w", err)
	}

	return o.host.Present(o.img)
}

// Destroy releases all resources.
func (o *OSystem) Destroy() {
	if err := o.mixer.Close(); err != nil {
		logger.Log(logger.Allow, "platform", err)
	}
	o.graphics.Destroy()
	if o.host != nil {
		o.host.Destroy()
		o.host = nil
	}
}
