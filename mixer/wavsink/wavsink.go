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

// Package wavsink is a mixer.Sink that writes audio to a WAV file. Audio is
// written to the file as it is received.
package wavsink

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherst/logger"
	"github.com/jetsetilly/gopherst/mixer"
)

const bitDepth = 16

// the audio format value for PCM data in the WAV header
const pcmFormat = 1

// Sink writes audio to a WAV file.
type Sink struct {
	filename string
	f        *os.File
	enc      *wav.Encoder
	buf      *audio.IntBuffer
}

// New is the preferred method of initialisation for the Sink type.
func New(filename string, sampleRate int) (*Sink, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("wavsink: %w", err)
	}

	snk := NewWriter(f, sampleRate)
	snk.filename = filename
	snk.f = f

	logger.Logf(logger.Allow, "wavsink", "writing audio to %s", filename)

	return snk, nil
}

// NewWriter creates a Sink that writes to w. The caller is responsible for
// closing w after the Sink has been closed.
func NewWriter(w io.WriteSeeker, sampleRate int) *Sink {
	return &Sink{
		enc: wav.NewEncoder(w, sampleRate, bitDepth, mixer.Channels, pcmFormat),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: mixer.Channels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: bitDepth,
		},
	}
}

// Queue implements the mixer.Sink interface.
func (snk *Sink) Queue(samples []int16) error {
	if cap(snk.buf.Data) < len(samples) {
		snk.buf.Data = make([]int, len(samples))
	}
	snk.buf.Data = snk.buf.Data[:len(samples)]
	for i, s := range samples {
		snk.buf.Data[i] = int(s)
	}

	err := snk.enc.Write(snk.buf)
	if err != nil {
		return fmt.Errorf("wavsink: %w", err)
	}
	return nil
}

// Queued implements the mixer.Sink interface. Audio is written immediately
// so there is never anything queued.
func (snk *Sink) Queued() int {
	return 0
}

// Close implements the mixer.Sink interface.
func (snk *Sink) Close() error {
	err := snk.enc.Close()
	if err != nil {
		return fmt.Errorf("wavsink: %w", err)
	}
	if snk.f != nil {
		err = snk.f.Close()
		if err != nil {
			return fmt.Errorf("wavsink: %w", err)
		}
	}
	return nil
}
