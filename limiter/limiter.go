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

// Package limiter paces the vertical blank of the emulated video hardware to
// the refresh rate of the chipset. It also measures the actual number of
// frames per second.
package limiter

import (
	"sync/atomic"
	"time"
)

// Limiter waits for the next frame and measures the frame rate.
type Limiter struct {
	// whether to wait each frame
	Active bool

	// the refresh rate of the video chipset
	RefreshRate atomic.Value // float32

	// the value sent to the SetLimit() function
	requestedFPS atomic.Value // float32

	// the number of frames per second after a request of MatchRefreshRate
	// has been resolved
	IdealFPS atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker will be set
	// when SetLimit() is called with a new fps value
	pulse *time.Ticker

	// waiting for the pulse every frame is expensive. the pulse is instead
	// set to a multiple of the frame duration and waited for every
	// pulseCtLimit frames
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the FPS measurement
	measuringPulse *time.Ticker

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second
	Measured atomic.Value // float32
}

// DefaultRefreshRate is the refresh rate of a new Limiter.
const DefaultRefreshRate float32 = 60.0

// NewLimiter is preferred method of initialising a new instance of the Limiter
// type. The refresh rate will be set to DefaultRefreshRate and the limited
// rate set to match the refresh rate.
func NewLimiter() *Limiter {
	lmtr := Limiter{}
	lmtr.Active = true
	lmtr.Measured.Store(float32(0.0))

	lmtr.pulse = time.NewTicker(time.Millisecond * 16)
	lmtr.measuringPulse = time.NewTicker(time.Millisecond * 1000)

	lmtr.RefreshRate.Store(DefaultRefreshRate)
	lmtr.SetLimit(MatchRefreshRate)

	return &lmtr
}

// SetRefreshRate of the video chipset. If the limit is MatchRefreshRate
// then the limiter is adjusted immediately.
func (lmtr *Limiter) SetRefreshRate(refreshRate float32) {
	lmtr.RefreshRate.Store(refreshRate)
	if lmtr.requestedFPS.Load().(float32) <= 0.0 {
		lmtr.SetLimit(MatchRefreshRate)
	}
}

// MatchRefreshRate is the limit value that makes the limit equal the refresh
// rate.
const MatchRefreshRate float32 = -1.0

// SetLimit sets the number of frames per second. Use a value of
// MatchRefreshRate to indicate that the limiter should equal the refresh
// rate.
func (lmtr *Limiter) SetLimit(fps float32) {
	lmtr.requestedFPS.Store(fps)

	if fps <= 0.0 {
		fps = lmtr.RefreshRate.Load().(float32)
	}

	// refresh rate hasn't been set
	if fps == 0.0 {
		return
	}

	lmtr.IdealFPS.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Stop()
	lmtr.pulse.Reset(time.Duration(1000000000 / fps * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called every frame. It blocks until the next frame is
// due if the Limiter is active.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if lmtr.Active {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual measures frame rate on every tick of the measuringPulse ticker.
// Checking the pulse channel is itself expensive so callers should not call
// MeasureActual() more than once per frame.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)

		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the tickers used by the Limiter.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
