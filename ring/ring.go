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

package ring

import (
	"fmt"
	"sync/atomic"
)

// DefaultCapacity is the capacity of the scancode queue.
const DefaultCapacity = 256

// Ring is the shared storage of the queue. Access to the queue is through the
// Producer and Consumer handles.
//
// When the producer laps the consumer a slot can be written while it is being
// read. The consumer detects this and discards the value, which is only safe
// if T is no larger than a machine word.
type Ring[T any] struct {
	buf  []T
	mask uint32

	// head and claim are written only by the producer. tail is written only
	// by the consumer. the difference between head and tail is the number of
	// pending elements, which can be larger than the capacity of the ring if
	// the producer has lapped the consumer
	head atomic.Uint32
	tail atomic.Uint32

	// claim is one more than the index of the slot being written. it runs
	// ahead of head while a Push() is in progress
	claim atomic.Uint32

	producer Producer[T]
	consumer Consumer[T]
}

// New is the preferred method of initialisation for the Ring type. The
// capacity must be a power of two. New will panic if it is not.
func New[T any](capacity int) *Ring[T] {
	if capacity <= 0 || capacity&(capacity-1) != 0 || capacity > 1<<30 {
		panic(fmt.Sprintf("ring: capacity must be a power of two (%d)", capacity))
	}

	r := &Ring[T]{
		buf:  make([]T, capacity),
		mask: uint32(capacity - 1),
	}
	r.producer.r = r
	r.consumer.r = r

	return r
}

// Cap returns the capacity of the ring.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Producer returns the handle used to write to the ring. There should only
// ever be one context that uses the Producer.
func (r *Ring[T]) Producer() *Producer[T] {
	return &r.producer
}

// Consumer returns the handle used to read from the ring. There should only
// ever be one context that uses the Consumer.
func (r *Ring[T]) Consumer() *Consumer[T] {
	return &r.consumer
}

// Producer is the write side of the ring.
type Producer[T any] struct {
	r *Ring[T]
}

// Push an element onto the ring. If the ring is full the oldest element is
// lost.
func (p *Producer[T]) Push(v T) {
	h := p.r.head.Load()
	p.r.claim.Store(h + 1)
	p.r.buf[h&p.r.mask] = v
	p.r.head.Store(h + 1)
}

// Consumer is the read side of the ring.
type Consumer[T any] struct {
	r *Ring[T]
}

// Pop the oldest unread element from the ring. Returns false if the ring is
// empty.
func (c *Consumer[T]) Pop() (T, bool) {
	capacity := uint32(len(c.r.buf))

	for {
		h := c.r.head.Load()
		t := c.r.tail.Load()

		if t == h {
			var z T
			return z, false
		}

		// the producer has lapped the consumer. skip to the oldest element
		// that hasn't been overwritten
		if h-t > capacity {
			t = h - capacity
		}

		v := c.r.buf[t&c.r.mask]

		// if the producer has claimed the slot while it was being read then
		// the element is discarded and the read is tried again
		if c.r.claim.Load()-t > capacity {
			c.r.tail.Store(t + 1)
			continue
		}

		c.r.tail.Store(t + 1)
		return v, true
	}
}

// Purge discards all pending elements.
func (c *Consumer[T]) Purge() {
	c.r.tail.Store(c.r.head.Load())
}

// Len returns the number of elements waiting to be read. The value will never
// be more than the capacity of the ring.
func (c *Consumer[T]) Len() int {
	n := c.r.head.Load() - c.r.tail.Load()
	if n > uint32(len(c.r.buf)) {
		return len(c.r.buf)
	}
	return int(n)
}
