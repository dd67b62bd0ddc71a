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

package sdlhost

import "image"

// displaySize is the size of the image when shown at a scale of one. Atari
// resolutions with non-square pixels are stretched to 4:3 when aspect is
// true.
func displaySize(sz image.Point, aspect bool) image.Point {
	if !aspect || sz.X == 0 || sz.Y == 0 {
		return sz
	}
	if sz.X*3 == sz.Y*4 {
		return sz
	}

	// keep the width and change the height. a 320x200 image is shown as
	// 320x240
	return image.Pt(sz.X, sz.X*3/4)
}

// viewport returns the largest rectangle with the display aspect ratio of
// the image that fits in the window, centred in the window.
func viewport(win image.Point, sz image.Point, aspect bool) image.Rectangle {
	d := displaySize(sz, aspect)
	if d.X == 0 || d.Y == 0 || win.X <= 0 || win.Y <= 0 {
		return image.Rectangle{}
	}

	w, h := win.X, win.Y
	if w*d.Y > h*d.X {
		w = h * d.X / d.Y
	} else {
		h = w * d.Y / d.X
	}

	x := (win.X - w) / 2
	y := (win.Y - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

// mouseScaler converts mouse movement in the window into movement in the
// image. The remainder of each conversion is carried forward so slow
// movements are not lost.
type mouseScaler struct {
	img  image.Point
	view image.Point

	remX int
	remY int
}

func (m *mouseScaler) set(img image.Point, view image.Point) {
	if m.img != img || m.view != view {
		m.remX = 0
		m.remY = 0
	}
	m.img = img
	m.view = view
}

func (m *mouseScaler) scale(dx int, dy int) (int, int) {
	if m.view.X == 0 || m.view.Y == 0 {
		return dx, dy
	}

	nx := dx*m.img.X + m.remX
	ny := dy*m.img.Y + m.remY

	sx := nx / m.view.X
	sy := ny / m.view.Y
	m.remX = nx - sx*m.view.X
	m.remY = ny - sy*m.view.Y

	return sx, sy
}
