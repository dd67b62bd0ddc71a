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

// Package timer dispatches callbacks at regular intervals. There is no
// background goroutine. Callbacks are only called from Tick(), which the
// platform calls once per poll of the event source.
package timer

import (
	"fmt"
	"sort"
	"time"

	"github.com/jetsetilly/gopherst/curated"
	"github.com/jetsetilly/gopherst/logger"
)

// Sentinal error patterns.
const (
	DuplicateTimer  = "timer: %s already installed"
	InvalidInterval = "timer: invalid interval for %s (%v)"
)

type entry struct {
	name     string
	interval time.Duration
	next     time.Time
	f        func()
	calls    int
}

// Manager holds the installed timers.
type Manager struct {
	timers []*entry

	// time of the most recent Tick(). used as the start time of newly
	// installed timers
	last time.Time
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager() *Manager {
	return &Manager{
		last: time.Now(),
	}
}

func (m *Manager) String() string {
	return fmt.Sprintf("%d timers", len(m.timers))
}

// Install a timer. The function f is called every interval. The first call
// is one interval after the most recent Tick().
func (m *Manager) Install(name string, interval time.Duration, f func()) error {
	if interval <= 0 {
		return curated.Errorf(InvalidInterval, name, interval)
	}
	for _, e := range m.timers {
		if e.name == name {
			return curated.Errorf(DuplicateTimer, name)
		}
	}

	m.timers = append(m.timers, &entry{
		name:     name,
		interval: interval,
		next:     m.last.Add(interval),
		f:        f,
	})
	sort.SliceStable(m.timers, func(i, j int) bool {
		return m.timers[i].interval < m.timers[j].interval
	})

	logger.Logf(logger.Allow, "timer", "installed %s (%v)", name, interval)

	return nil
}

// Remove a timer. Removing a timer that is not installed does nothing.
func (m *Manager) Remove(name string) {
	for i, e := range m.timers {
		if e.name == name {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

// Installed returns true if the named timer is installed.
func (m *Manager) Installed(name string) bool {
	for _, e := range m.timers {
		if e.name == name {
			return true
		}
	}
	return false
}

// Tick calls the functions of any timers that are due. A timer that is more
// than one interval late is called once and then rescheduled from now.
// Returns the number of functions called.
func (m *Manager) Tick(now time.Time) int {
	m.last = now

	n := 0

	// iterate over a copy because a callback might remove a timer
	due := make([]*entry, 0, len(m.timers))
	for _, e := range m.timers {
		if !now.Before(e.next) {
			due = append(due, e)
		}
	}

	for _, e := range due {
		e.f()
		e.calls++
		n++

		e.next = e.next.Add(e.interval)
		if !now.Before(e.next) {
			e.next = now.Add(e.interval)
		}
	}

	return n
}
