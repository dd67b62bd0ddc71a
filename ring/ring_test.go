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

package ring_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jetsetilly/gopherst/ring"
	"github.com/jetsetilly/gopherst/test"
)

func TestEmpty(t *testing.T) {
	r := ring.New[byte](ring.DefaultCapacity)
	c := r.Consumer()

	_, ok := c.Pop()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, c.Len(), 0)
	test.ExpectEquality(t, r.Cap(), 256)
}

func TestCapacity(t *testing.T) {
	for _, n := range []int{0, -1, 3, 100, 255} {
		func() {
			defer func() {
				test.ExpectInequality(t, recover(), nil, n)
			}()
			_ = ring.New[byte](n)
		}()
	}

	for _, n := range []int{1, 2, 16, 256} {
		r := ring.New[byte](n)
		test.ExpectEquality(t, r.Cap(), n)
	}
}

func TestFIFO(t *testing.T) {
	r := ring.New[byte](ring.DefaultCapacity)
	p := r.Producer()
	c := r.Consumer()

	for n := 1; n <= r.Cap(); n++ {
		for i := range n {
			p.Push(byte(i))
		}
		test.ExpectEquality(t, c.Len(), n)

		for i := range n {
			v, ok := c.Pop()
			test.ExpectSuccess(t, ok)
			test.ExpectEquality(t, v, byte(i))
		}

		_, ok := c.Pop()
		test.ExpectFailure(t, ok)
	}
}

func TestOverflow(t *testing.T) {
	const capacity = 16

	for k := 1; k <= capacity*3; k++ {
		r := ring.New[int](capacity)
		p := r.Producer()
		c := r.Consumer()

		for i := range capacity + k {
			p.Push(i)
		}
		test.ExpectEquality(t, c.Len(), capacity)

		// the oldest k elements have been lost
		for i := range capacity {
			v, ok := c.Pop()
			test.ExpectSuccess(t, ok)
			test.ExpectEquality(t, v, k+i)
		}

		_, ok := c.Pop()
		test.ExpectFailure(t, ok)
	}
}

func TestPurge(t *testing.T) {
	r := ring.New[byte](8)
	p := r.Producer()
	c := r.Consumer()

	p.Push(1)
	p.Push(2)
	c.Purge()
	test.ExpectEquality(t, c.Len(), 0)

	p.Push(3)
	v, ok := c.Pop()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, byte(3))
}

// the producer and consumer running in different goroutines. the producer
// waits for space in the ring so that nothing is lost and the sequence can be
// checked
func TestConcurrent(t *testing.T) {
	const count = 100000

	r := ring.New[uint32](64)
	p := r.Producer()
	c := r.Consumer()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := uint32(0); i < count; {
			if c.Len() < r.Cap() {
				p.Push(i)
				i++
			}
		}
	}()

	var expected uint32
	for expected < count {
		v, ok := c.Pop()
		if !ok {
			continue
		}
		if v != expected {
			t.Fatalf("out of sequence value: %d (expected %d)", v, expected)
		}
		expected++
	}

	wg.Wait()
}

// the producer runs freely and laps the consumer many times. values can be
// lost but the values that are read must always be in order
func TestLapping(t *testing.T) {
	if raceEnabled {
		t.Skip("slots are read while being written when the consumer is lapped")
	}

	const count = 2000000

	r := ring.New[uint64](4)
	p := r.Producer()
	c := r.Consumer()

	var done atomic.Bool
	go func() {
		for i := uint64(1); i <= count; i++ {
			p.Push(i)
		}
		done.Store(true)
	}()

	var last uint64
	var popped int
	var finished bool
	for {
		v, ok := c.Pop()
		if ok {
			if v <= last {
				t.Fatalf("out of sequence value: %d after %d", v, last)
			}
			last = v
			popped++
			continue
		}
		if finished {
			break
		}
		finished = done.Load()
	}

	// the final value is never overwritten
	test.ExpectEquality(t, last, uint64(count))
	test.ExpectSuccess(t, popped <= count)
}
