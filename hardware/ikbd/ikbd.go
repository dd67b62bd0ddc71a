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

package ikbd

import (
	"sync/atomic"

	"github.com/jetsetilly/gopherst/ring"
)

// Byte layout of a scancode in the queue.
const (
	ReleaseFlag  = 0x80
	ScancodeMask = 0x7f
)

// Mouse button bits.
const (
	ButtonRight = 0x01
	ButtonLeft  = 0x02
)

// the IKBD relative mouse packet is a header byte in the range 0xf8 to 0xfb
// followed by two signed bytes for the X and Y movement. the lower two bits
// of the header are the button state.
const (
	mouseHeaderMask = 0xfc
	mouseHeader     = 0xf8
)

// Shared is the state shared by the interrupt and poll contexts.
type Shared struct {
	scancodes *ring.Ring[byte]

	buttons atomic.Uint32
	deltaX  atomic.Int32
	deltaY  atomic.Int32

	interrupt Interrupt
	poll      Poll
}

// NewShared is the preferred method of initialisation for the Shared type.
// The capacity of the scancode queue must be a power of two.
func NewShared(capacity int) *Shared {
	sh := &Shared{
		scancodes: ring.New[byte](capacity),
	}
	sh.interrupt = Interrupt{
		sh:        sh,
		scancodes: sh.scancodes.Producer(),
	}
	sh.poll = Poll{
		sh:        sh,
		scancodes: sh.scancodes.Consumer(),
	}
	return sh
}

// Interrupt returns the handle for the interrupt (producer) context.
func (sh *Shared) Interrupt() *Interrupt {
	return &sh.interrupt
}

// Poll returns the handle for the poll (consumer) context.
func (sh *Shared) Poll() *Poll {
	return &sh.poll
}

// Interrupt is the producer side of the shared state.
type Interrupt struct {
	sh        *Shared
	scancodes *ring.Producer[byte]

	// partially received mouse packet
	packet    [3]byte
	packetLen int
}

// Scancode pushes a raw scancode byte onto the queue. The byte is not
// interpreted.
func (ir *Interrupt) Scancode(code byte) {
	ir.scancodes.Push(code)
}

// Key pushes a scancode with the release flag set as appropriate.
func (ir *Interrupt) Key(scancode byte, released bool) {
	code := scancode & ScancodeMask
	if released {
		code |= ReleaseFlag
	}
	ir.scancodes.Push(code)
}

// MouseButtons sets the current state of the mouse buttons. Only the
// ButtonRight and ButtonLeft bits are kept.
func (ir *Interrupt) MouseButtons(mask byte) {
	ir.sh.buttons.Store(uint32(mask & (ButtonRight | ButtonLeft)))
}

// MouseMove adds to the accumulated mouse movement.
func (ir *Interrupt) MouseMove(dx int, dy int) {
	if dx != 0 {
		ir.sh.deltaX.Add(int32(dx))
	}
	if dy != 0 {
		ir.sh.deltaY.Add(int32(dy))
	}
}

// Receive a single byte from the IKBD stream. Relative mouse packets are
// decoded into the mouse scalars. Every other byte is a scancode.
func (ir *Interrupt) Receive(b byte) {
	if ir.packetLen > 0 {
		ir.packet[ir.packetLen] = b
		ir.packetLen++
		if ir.packetLen == len(ir.packet) {
			ir.packetLen = 0
			ir.MouseButtons(ir.packet[0] &^ mouseHeaderMask)
			ir.MouseMove(int(int8(ir.packet[1])), int(int8(ir.packet[2])))
		}
		return
	}

	if b&mouseHeaderMask == mouseHeader {
		ir.packet[0] = b
		ir.packetLen = 1
		return
	}

	ir.Scancode(b)
}

// MousePacket builds the IKBD relative mouse packet for the button state and
// movement. Movement is clamped to the range of a signed byte. Use Receive()
// to send each byte of the packet.
func MousePacket(buttons byte, dx int, dy int) [3]byte {
	return [3]byte{
		mouseHeader | buttons&(ButtonRight|ButtonLeft),
		byte(int8(clamp(dx))),
		byte(int8(clamp(dy))),
	}
}

func clamp(v int) int {
	if v < -128 {
		return -128
	}
	if v > 127 {
		return 127
	}
	return v
}

// Poll is the consumer side of the shared state.
type Poll struct {
	sh        *Shared
	scancodes *ring.Consumer[byte]
}

// Scancode returns the oldest unread scancode byte. Returns false if there
// are no scancodes waiting.
func (pl *Poll) Scancode() (byte, bool) {
	return pl.scancodes.Pop()
}

// PendingScancodes returns the number of unread scancodes.
func (pl *Poll) PendingScancodes() int {
	return pl.scancodes.Len()
}

// PurgeScancodes discards all unread scancodes.
func (pl *Poll) PurgeScancodes() {
	pl.scancodes.Purge()
}

// Buttons returns the current state of the mouse buttons.
func (pl *Poll) Buttons() byte {
	return byte(pl.sh.buttons.Load())
}

// HasDelta returns true if there is accumulated mouse movement.
func (pl *Poll) HasDelta() bool {
	return pl.sh.deltaX.Load() != 0 || pl.sh.deltaY.Load() != 0
}

// TakeDelta returns the accumulated mouse movement and resets it to zero.
func (pl *Poll) TakeDelta() (int, int) {
	dx := pl.sh.deltaX.Swap(0)
	dy := pl.sh.deltaY.Swap(0)
	return int(dx), int(dy)
}

// PurgeMouse discards accumulated mouse movement.
func (pl *Poll) PurgeMouse() {
	pl.sh.deltaX.Store(0)
	pl.sh.deltaY.Store(0)
}
