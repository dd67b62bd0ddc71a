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

// Package sdlsink is a mixer.Sink that plays audio with SDL.
package sdlsink

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopherst/logger"
	"github.com/jetsetilly/gopherst/mixer"
	"github.com/veandco/go-sdl2/sdl"
)

// Sink plays audio through an SDL audio device. SDL must have been
// initialised with the audio subsystem.
type Sink struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// samples converted to bytes for QueueAudio()
	data []byte
}

// New is the preferred method of initialisation for the Sink type.
func New(sampleRate int, bufferFrames int) (*Sink, error) {
	snk := &Sink{}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: mixer.Channels,
		Samples:  uint16(bufferFrames),
	}

	var err error
	snk.id, err = sdl.OpenAudioDevice("", false, spec, &snk.spec, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlsink: %w", err)
	}

	logger.Logf(logger.Allow, "sdlsink", "frequency: %d samples/sec", snk.spec.Freq)
	logger.Logf(logger.Allow, "sdlsink", "buffer size: %d samples", snk.spec.Samples)

	sdl.PauseAudioDevice(snk.id, false)

	return snk, nil
}

// Queue implements the mixer.Sink interface.
func (snk *Sink) Queue(samples []int16) error {
	n := len(samples) * 2
	if cap(snk.data) < n {
		snk.data = make([]byte, n)
	}
	snk.data = snk.data[:n]
	for i, s := range samples {
		binary.LittleEndian.PutUint16(snk.data[i*2:], uint16(s))
	}
	return sdl.QueueAudio(snk.id, snk.data)
}

// Queued implements the mixer.Sink interface.
func (snk *Sink) Queued() int {
	return int(sdl.GetQueuedAudioSize(snk.id)) / (2 * mixer.Channels)
}

// Close implements the mixer.Sink interface.
func (snk *Sink) Close() error {
	sdl.CloseAudioDevice(snk.id)
	return nil
}
