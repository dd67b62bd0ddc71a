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

// Package dirty tracks the areas of a surface that have changed since the
// last present.
//
// A Tracker is in one of three states: clean, dirty (with a set of
// rectangles) or full redraw. Tracking individual rectangles stops being
// worthwhile when there are too many of them or when a single rectangle
// covers a large part of the surface. In those cases the Tracker switches to
// full redraw and forgets the individual rectangles.
package dirty

import (
	"image"
)

// Default values for the Tracker thresholds.
const (
	DefaultThreshold     = 128
	DefaultLargeFraction = 0.5
)

// Tracker accumulates dirty rectangles for a surface.
type Tracker struct {
	bounds image.Rectangle
	rects  []image.Rectangle
	full   bool

	// the maximum number of rectangles that will be tracked before switching
	// to full redraw
	Threshold int

	// the fraction of the surface area that a single rectangle must cover to
	// trigger full redraw. a value of zero or less disables the check
	LargeFraction float64
}

// NewTracker is the preferred method of initialisation for the Tracker type.
func NewTracker(bounds image.Rectangle) *Tracker {
	return &Tracker{
		bounds:        bounds,
		rects:         make([]image.Rectangle, 0, DefaultThreshold),
		Threshold:     DefaultThreshold,
		LargeFraction: DefaultLargeFraction,
	}
}

// Bounds returns the bounds of the surface being tracked.
func (d *Tracker) Bounds() image.Rectangle {
	return d.bounds
}

// Add a rectangle to the Tracker. The rectangle is clipped to the bounds of
// the surface and empty rectangles are ignored. Rectangles contained by an
// existing rectangle are ignored and rectangles that contain existing
// rectangles replace them.
func (d *Tracker) Add(r image.Rectangle) {
	if d.full {
		return
	}

	r = r.Intersect(d.bounds)
	if r.Empty() {
		return
	}

	if d.LargeFraction > 0 {
		a := float64(r.Dx() * r.Dy())
		if a >= float64(d.bounds.Dx()*d.bounds.Dy())*d.LargeFraction {
			d.SetFullRedraw()
			return
		}
	}

	n := 0
	for _, e := range d.rects {
		if r.In(e) {
			return
		}
		if !e.In(r) {
			d.rects[n] = e
			n++
		}
	}
	d.rects = d.rects[:n]

	if len(d.rects)+1 > d.Threshold {
		d.SetFullRedraw()
		return
	}

	d.rects = append(d.rects, r)
}

// SetFullRedraw switches the Tracker to full redraw.
func (d *Tracker) SetFullRedraw() {
	d.full = true
	d.rects = d.rects[:0]
}

// FullRedraw returns true if the whole surface needs to be redrawn.
func (d *Tracker) FullRedraw() bool {
	return d.full
}

// Empty returns true if nothing needs to be redrawn.
func (d *Tracker) Empty() bool {
	return !d.full && len(d.rects) == 0
}

// Rects returns the dirty rectangles. If the Tracker is in full redraw the
// only rectangle is the bounds of the surface. The returned slice should not
// be modified and is only valid until the next call to Add() or Clear().
func (d *Tracker) Rects() []image.Rectangle {
	if d.full {
		return []image.Rectangle{d.bounds}
	}
	return d.rects
}

// Clear returns the Tracker to the clean state.
func (d *Tracker) Clear() {
	d.full = false
	d.rects = d.rects[:0]
}

// Align expands the horizontal edges of the rectangle to multiples of the
// granularity. The rectangle is never made smaller. The result is clipped to
// bounds, which must themselves be aligned.
func Align(r image.Rectangle, granularity int, bounds image.Rectangle) image.Rectangle {
	if granularity > 1 {
		r.Min.X = floor(r.Min.X, granularity)
		r.Max.X = floor(r.Max.X+granularity-1, granularity)
	}
	return r.Intersect(bounds)
}

// floor rounds down to a multiple of g, including for negative values
func floor(v int, g int) int {
	m := v % g
	if m < 0 {
		m += g
	}
	return v - m
}
