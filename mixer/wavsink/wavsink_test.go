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

package wavsink_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherst/mixer/wavsink"
	"github.com/jetsetilly/gopherst/test"
)

func TestWavSink(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.wav")

	snk, err := wavsink.New(fn, 22050)
	test.DemandSuccess(t, err)

	samples := make([]int16, 200)
	for i := range samples {
		samples[i] = int16(i * 100)
	}
	test.ExpectSuccess(t, snk.Queue(samples))
	test.ExpectSuccess(t, snk.Queue(samples))
	test.ExpectEquality(t, snk.Queued(), 0)
	test.ExpectSuccess(t, snk.Close())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, dec.SampleRate, uint32(22050))
	test.ExpectEquality(t, dec.NumChans, uint16(2))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), 400)
	test.ExpectEquality(t, buf.Data[1], 100)
}
