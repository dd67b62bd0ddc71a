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

package timer_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherst/curated"
	"github.com/jetsetilly/gopherst/test"
	"github.com/jetsetilly/gopherst/timer"
)

func TestTimer(t *testing.T) {
	tm := timer.NewManager()

	start := time.Now()
	tm.Tick(start)

	var a, b int
	test.ExpectSuccess(t, tm.Install("a", 10*time.Millisecond, func() { a++ }))
	test.ExpectSuccess(t, tm.Install("b", 25*time.Millisecond, func() { b++ }))

	err := tm.Install("a", time.Millisecond, func() {})
	test.ExpectSuccess(t, curated.Is(err, timer.DuplicateTimer))
	err = tm.Install("c", 0, func() {})
	test.ExpectSuccess(t, curated.Is(err, timer.InvalidInterval))

	test.ExpectEquality(t, tm.Tick(start.Add(5*time.Millisecond)), 0)
	test.ExpectEquality(t, tm.Tick(start.Add(10*time.Millisecond)), 1)
	test.ExpectEquality(t, a, 1)
	test.ExpectEquality(t, tm.Tick(start.Add(20*time.Millisecond)), 1)
	test.ExpectEquality(t, tm.Tick(start.Add(25*time.Millisecond)), 1)
	test.ExpectEquality(t, a, 2)
	test.ExpectEquality(t, b, 1)

	// a late tick calls the function once only
	test.ExpectEquality(t, tm.Tick(start.Add(100*time.Millisecond)), 2)
	test.ExpectEquality(t, a, 3)
	test.ExpectEquality(t, b, 2)

	// and the next call is one interval after the late tick
	test.ExpectEquality(t, tm.Tick(start.Add(105*time.Millisecond)), 0)
	test.ExpectEquality(t, tm.Tick(start.Add(110*time.Millisecond)), 1)

	tm.Remove("a")
	test.ExpectFailure(t, tm.Installed("a"))
	test.ExpectSuccess(t, tm.Installed("b"))
	test.ExpectEquality(t, tm.Tick(start.Add(200*time.Millisecond)), 1)
	test.ExpectEquality(t, a, 4)
}

func TestRemoveFromCallback(t *testing.T) {
	tm := timer.NewManager()
	start := time.Now()
	tm.Tick(start)

	var n int
	test.ExpectSuccess(t, tm.Install("once", time.Millisecond, func() {
		n++
		tm.Remove("once")
	}))

	tm.Tick(start.Add(time.Millisecond))
	tm.Tick(start.Add(2 * time.Millisecond))
	test.ExpectEquality(t, n, 1)
	test.ExpectFailure(t, tm.Installed("once"))
}
