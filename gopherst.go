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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopherst/demo"
	"github.com/jetsetilly/gopherst/graphics"
	"github.com/jetsetilly/gopherst/graphics/surface"
	"github.com/jetsetilly/gopherst/hardware/video"
	"github.com/jetsetilly/gopherst/host/sdlhost"
	"github.com/jetsetilly/gopherst/host/termhost"
	"github.com/jetsetilly/gopherst/limiter"
	"github.com/jetsetilly/gopherst/logger"
	"github.com/jetsetilly/gopherst/mixer/sdlsink"
	"github.com/jetsetilly/gopherst/mixer/wavsink"
	"github.com/jetsetilly/gopherst/modalflag"
	"github.com/jetsetilly/gopherst/paths"
	"github.com/jetsetilly/gopherst/platform"
	"github.com/jetsetilly/gopherst/prefs"
	"github.com/jetsetilly/gopherst/statsview"
	"github.com/jetsetilly/gopherst/userinput"
)

// list of host values for the -host flag
const (
	hostSDL  = "sdl"
	hostTerm = "term"
	hostNone = "none"
)

// value of a filename flag that is replaced with a unique filename
const auto = "auto"

// the OSystem and any SDL host must be serviced by the main thread so
// everything runs from main() without a launch goroutine.
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "KEYTEST")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "KEYTEST":
		err = keytest(md)
	}

	if err != nil {
		fmt.Printf("\r* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}

	fmt.Print("\r")
}

// flags shared by all modes
type common struct {
	host     *string
	renderer *string
	scale    *int
	hardware *string
	prefs    *string
	log      *bool
	fps      *int
}

func addCommon(md *modalflag.Modes) *common {
	return &common{
		host:     md.AddString("host", hostSDL, "host display: sdl, term, none"),
		renderer: md.AddString("renderer", sdlhost.RendererSDL, "renderer for sdl host: sdl, gl32"),
		scale:    md.AddInt("scale", 2, "window scale for sdl host"),
		hardware: md.AddString("hardware", video.Videl, "video chipset: videl, supervidel, tt"),
		prefs:    md.AddString("prefs", "", "preferences to override for this session. eg. events.layout::de"),
		log:      md.AddBool("log", false, "echo log to stdout"),
		fps:      md.AddInt("fps", 10, "maximum frames per second drawn by the term host"),
	}
}

// session is an OSystem with a host attached
type session struct {
	o    *platform.OSystem
	lmtr *limiter.Limiter
}

func newSession(c *common, render bool) (*session, error) {
	if *c.log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	hw, err := video.New(*c.hardware)
	if err != nil {
		return nil, err
	}

	s := &session{
		lmtr: limiter.NewLimiter(),
	}
	hw.AttachLimiter(s.lmtr)

	s.o, err = platform.NewOSystem(hw, platform.Options{})
	if err != nil {
		s.lmtr.Stop()
		return nil, err
	}

	switch strings.ToLower(*c.host) {
	case hostSDL:
		gm := s.o.Graphics()
		h, err := sdlhost.New(s.o.Interrupt(), sdlhost.Options{
			Renderer: strings.ToLower(*c.renderer),
			Scale:    *c.scale,
			VSync:    gm.Preferences().WaitVBL.Get().(bool),
			Aspect: func() bool {
				return gm.Preferences().Aspect.Get().(bool)
			},
		})
		if err != nil {
			s.destroy()
			return nil, err
		}
		s.o.SetHost(h)

	case hostTerm:
		h, err := termhost.New(s.o.Interrupt(), *s.o.Events().Tables().Layout(), termhost.Options{
			Render: render,
			FPS:    *c.fps,
		})
		if err != nil {
			s.destroy()
			return nil, err
		}
		s.o.SetHost(h)

	case hostNone:

	default:
		s.destroy()
		return nil, fmt.Errorf("unknown host (%s)", *c.host)
	}

	return s, nil
}

// any preferences on the command line that were never used are probably
// mistyped
func popPrefs() {
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "gopherst", "unused preferences: %s", unused)
	}
}

func (s *session) destroy() {
	s.o.Destroy()
	s.lmtr.Stop()
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	mode := md.AddString("mode", "triple", "buffering mode: single, triple")
	width := md.AddInt("width", 320, "width of game screen")
	height := md.AddInt("height", 200, "height of game screen")
	frames := md.AddInt("frames", 0, "number of frames to run for. zero is unlimited")
	wav := md.AddString("wav", "", "record audio to wav file. auto chooses a unique filename")
	sound := md.AddBool("sound", false, "play audio with SDL")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	memviz := md.AddString("memviz", "", "write graphics state graph to file on exit. auto chooses a unique filename")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	gmode, ok := graphics.ModeByName(*mode)
	if !ok {
		return fmt.Errorf("unknown graphics mode (%s)", *mode)
	}

	if *wav == auto {
		*wav = fmt.Sprintf("%s.wav", paths.UniqueFilename("wav", *c.hardware))
	}
	if *memviz == auto {
		*memviz = fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", *mode))
	}

	if *stats {
		stop := statsview.Launch(os.Stdout)
		defer stop()
	}

	prefs.PushCommandLineStack(*c.prefs)
	defer popPrefs()

	s, err := newSession(c, true)
	if err != nil {
		return err
	}
	defer s.destroy()

	mx := s.o.Mixer()
	if *wav != "" {
		snk, err := wavsink.New(*wav, mx.SampleRate())
		if err != nil {
			return err
		}
		mx.AddSink(snk)
	}
	if *sound {
		snk, err := sdlsink.New(mx.SampleRate(), platform.DefaultBufferFrames)
		if err != nil {
			return err
		}
		mx.AddSink(snk)
	}

	eng, err := demo.NewEngine(s.o, demo.Options{
		Mode:   gmode,
		Width:  *width,
		Height: *height,
		Frames: *frames,
		Tone:   *wav != "" || *sound,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = eng.Run(ctx)
	if err != nil {
		return err
	}

	if *memviz != "" {
		f, err := os.Create(*memviz)
		if err != nil {
			return err
		}
		defer f.Close()
		s.o.Graphics().DumpState(f)
	}

	return nil
}

// keyPrinter prints every event
type keyPrinter struct {
	quit bool
}

func (k *keyPrinter) HandleEvent(ev userinput.Event) error {
	fmt.Printf("\r%s\n", ev)
	if ev.Type == userinput.EventKeyDown && ev.Kbd.Keycode == userinput.KeycodeEscape {
		k.quit = true
	}
	return nil
}

func keytest(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Prints every event. Press Escape or Ctrl+Q to end.")

	c := addCommon(md)
	*c.host = hostTerm

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prefs.PushCommandLineStack(*c.prefs)
	defer popPrefs()

	s, err := newSession(c, false)
	if err != nil {
		return err
	}
	defer s.destroy()

	gm := s.o.Graphics()
	gm.BeginGFXTransaction()
	gm.SetGraphicsMode(graphics.SingleBuffering)
	gm.InitSize(320, 200, surface.CLUT8)
	if res := gm.EndGFXTransaction(); res != graphics.TransactionSuccess {
		return fmt.Errorf("graphics transaction failed (%s)", res)
	}
	gm.ShowMouse(true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kt := &keyPrinter{}
	var ev userinput.Event
	for !kt.quit {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		for s.o.PollEvent(&ev) {
			quit, err := userinput.HandleUserInput(ev, kt)
			if err != nil {
				return err
			}
			kt.quit = kt.quit || quit
		}

		err := s.o.UpdateScreen()
		if err != nil {
			return err
		}
	}

	return nil
}
