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

import "github.com/jetsetilly/gopherst/mixer"

// Tone is a square wave mixer.Source.
type Tone struct {
	sampleRate int
	freq       int
	amplitude  int16

	// position in the current period, in samples
	phase int
}

// NewTone is the preferred method of initialisation for the Tone type.
func NewTone(sampleRate int, freq int, amplitude int16) *Tone {
	return &Tone{
		sampleRate: sampleRate,
		freq:       freq,
		amplitude:  amplitude,
	}
}

// SetFrequency changes the frequency of the tone. A frequency of zero is
// silence.
func (t *Tone) SetFrequency(freq int) {
	t.freq = freq
}

// Mix implements the mixer.Source interface.
func (t *Tone) Mix(buf []int16) int {
	frames := len(buf) / mixer.Channels

	if t.freq <= 0 {
		clear(buf[:frames*mixer.Channels])
		return frames
	}

	period := max(2, t.sampleRate/t.freq)
	for i := range frames {
		v := t.amplitude
		if t.phase >= period/2 {
			v = -v
		}
		for c := range mixer.Channels {
			buf[i*mixer.Channels+c] = v
		}
		t.phase++
		if t.phase >= period {
			t.phase = 0
		}
	}

	return frames
}
