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

package test

import (
	"fmt"
)

// CompareWriter is an io.Writer that keeps everything written to it. Used to
// capture output for comparison with an expected string.
type CompareWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (w *CompareWriter) Write(p []byte) (int, error) {
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (w *CompareWriter) Clear() {
	w.buffer = w.buffer[:0]
}

// Compare buffered output with the string.
func (w *CompareWriter) Compare(s string) bool {
	return s == string(w.buffer)
}

func (w *CompareWriter) String() string {
	return string(w.buffer)
}

// CappedWriter is an io.Writer that keeps the first bytes written to it, up to
// a fixed size. Bytes beyond the size are discarded without error.
type CappedWriter struct {
	buffer []byte
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{buffer: make([]byte, 0, size)}, nil
}

// Write implements the io.Writer interface.
func (w *CappedWriter) Write(p []byte) (int, error) {
	n := min(len(p), cap(w.buffer)-len(w.buffer))
	w.buffer = append(w.buffer, p[:n]...)
	return len(p), nil
}

// Reset empties the buffer.
func (w *CappedWriter) Reset() {
	w.buffer = w.buffer[:0]
}

func (w *CappedWriter) String() string {
	return string(w.buffer)
}

// RingWriter is an io.Writer that keeps the most recent bytes written to it,
// up to a fixed size.
type RingWriter struct {
	buffer []byte
	size   int
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		buffer: make([]byte, 0, size*2),
		size:   size,
	}, nil
}

// Write implements the io.Writer interface.
func (w *RingWriter) Write(p []byte) (int, error) {
	n := len(p)
	if n >= w.size {
		w.buffer = append(w.buffer[:0], p[n-w.size:]...)
		return n, nil
	}

	w.buffer = append(w.buffer, p...)
	if over := len(w.buffer) - w.size; over > 0 {
		w.buffer = append(w.buffer[:0], w.buffer[over:]...)
	}

	return n, nil
}

// Reset empties the buffer.
func (w *RingWriter) Reset() {
	w.buffer = w.buffer[:0]
}

func (w *RingWriter) String() string {
	return string(w.buffer)
}
