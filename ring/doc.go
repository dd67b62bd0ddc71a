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

// Package ring implements a lock-free, fixed capacity, single-producer
// single-consumer queue.
//
// The queue is shared between two contexts. The producer context (the
// keyboard interrupt in the case of the ikbd package) writes with the
// Producer handle and the consumer context (the poll loop) reads with the
// Consumer handle. The two handles are different types so that neither
// context can perform the other's operation.
//
// The producer never blocks and never fails. If the producer laps the
// consumer then the oldest unread elements are lost. The consumer will always
// see the most recent Cap() elements in the order they were pushed.
//
// Memory ordering: the producer writes the element and then stores the head
// index. The consumer loads the head index and only then reads the element.
// The head index is only written by the producer and the tail index is only
// written by the consumer. Both indices use the sync/atomic types.
package ring
