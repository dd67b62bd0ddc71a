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

package mixer_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherst/mixer"
	"github.com/jetsetilly/gopherst/test"
)

type rampSource struct {
	v int16
}

func (s *rampSource) Mix(buf []int16) int {
	for i := 0; i < len(buf); i += mixer.Channels {
		buf[i] = s.v
		buf[i+1] = -s.v
		s.v++
	}
	return len(buf) / mixer.Channels
}

type memorySink struct {
	samples []int16
	queued  int
	closed  bool
	err     error
}

func (s *memorySink) Queue(samples []int16) error {
	if s.err != nil {
		return s.err
	}
	s.samples = append(s.samples, samples...)
	s.queued += len(samples) / mixer.Channels
	return nil
}

func (s *memorySink) Queued() int {
	return s.queued
}

func (s *memorySink) Close() error {
	s.closed = true
	return nil
}

func TestTick(t *testing.T) {
	m := mixer.NewManager(48000, 16)

	// nothing happens without a source
	test.ExpectSuccess(t, m.Tick())
	test.ExpectEquality(t, m.Frames(), 0)

	src := &rampSource{}
	snk := &memorySink{}
	m.SetSource(src)
	m.AddSink(snk)

	test.ExpectSuccess(t, m.Tick())
	test.ExpectEquality(t, m.Frames(), 16)
	test.ExpectEquality(t, len(snk.samples), 32)
	test.ExpectEquality(t, snk.samples[2], int16(1))
	test.ExpectEquality(t, snk.samples[3], int16(-1))

	// the sink has enough queued
	test.ExpectSuccess(t, m.Tick())
	test.ExpectEquality(t, m.Frames(), 16)

	// the sink has played some audio
	snk.queued = 0
	test.ExpectSuccess(t, m.Tick())
	test.ExpectEquality(t, m.Frames(), 32)
	test.ExpectEquality(t, snk.samples[32], int16(16))

	// muted
	snk.queued = 0
	m.SetMuted(true)
	test.ExpectSuccess(t, m.Muted())
	test.ExpectSuccess(t, m.Tick())
	test.ExpectEquality(t, m.Frames(), 32)
	m.SetMuted(false)

	// errors from the sink are returned
	snk.err = errors.New("test error")
	test.ExpectFailure(t, m.Tick())

	test.ExpectSuccess(t, m.Close())
	test.ExpectSuccess(t, snk.closed)
}
