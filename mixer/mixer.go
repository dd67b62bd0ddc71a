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

// Package mixer moves audio from a Source to one or more Sinks. Mixing of
// individual channels is the job of the Source, which produces interleaved
// stereo samples.
//
// The mixer does nothing on its own. The platform calls Tick() once per
// poll of the event source and the mixer refills any sink that is running
// low.
package mixer

import (
	"fmt"

	"github.com/jetsetilly/gopherst/logger"
)

// Channels is the number of channels in the interleaved sample data.
const Channels = 2

// Source produces audio.
type Source interface {
	// Mix fills buf with interleaved stereo samples. Returns the number of
	// frames written. A frame is one sample for each channel.
	Mix(buf []int16) int
}

// Sink consumes audio.
type Sink interface {
	// Queue interleaved stereo samples
	Queue(samples []int16) error

	// Queued returns the number of frames waiting to be played
	Queued() int

	Close() error
}

// Manager is the mixer manager.
type Manager struct {
	sampleRate int

	// the number of frames that each sink should have queued
	bufferFrames int

	src   Source
	sinks []Sink
	muted bool

	buf []int16

	// number of frames that have been mixed
	frames int
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager(sampleRate int, bufferFrames int) *Manager {
	return &Manager{
		sampleRate:   sampleRate,
		bufferFrames: bufferFrames,
		buf:          make([]int16, bufferFrames*Channels),
	}
}

func (m *Manager) String() string {
	return fmt.Sprintf("%dHz, %d sinks, muted=%v", m.sampleRate, len(m.sinks), m.muted)
}

// SampleRate returns the output sample rate.
func (m *Manager) SampleRate() int {
	return m.sampleRate
}

// SetSource sets the audio source. A nil source stops audio.
func (m *Manager) SetSource(src Source) {
	m.src = src
}

// AddSink adds a sink to the list of sinks that are fed by the mixer.
func (m *Manager) AddSink(snk Sink) {
	m.sinks = append(m.sinks, snk)
}

// SetMuted mutes or unmutes the mixer.
func (m *Manager) SetMuted(muted bool) {
	m.muted = muted
	logger.Logf(logger.Allow, "mixer", "muted: %v", muted)
}

// Muted returns true if the mixer is muted.
func (m *Manager) Muted() bool {
	return m.muted
}

// Frames returns the number of frames mixed so far.
func (m *Manager) Frames() int {
	return m.frames
}

// Tick mixes audio if any sink has less than the buffer length queued. The
// same audio is sent to every sink.
func (m *Manager) Tick() error {
	if m.muted || m.src == nil || len(m.sinks) == 0 {
		return nil
	}

	need := false
	for _, snk := range m.sinks {
		if snk.Queued() < m.bufferFrames {
			need = true
			break
		}
	}
	if !need {
		return nil
	}

	n := m.src.Mix(m.buf)
	if n <= 0 {
		return nil
	}
	n = min(n, m.bufferFrames)
	m.frames += n

	for _, snk := range m.sinks {
		err := snk.Queue(m.buf[:n*Channels])
		if err != nil {
			return fmt.Errorf("mixer: %w", err)
		}
	}

	return nil
}

// Close all sinks. The first error is returned but every sink is closed.
func (m *Manager) Close() error {
	var rerr error
	for _, snk := range m.sinks {
		err := snk.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("mixer: %w", err)
		}
	}
	m.sinks = m.sinks[:0]
	return rerr
}
