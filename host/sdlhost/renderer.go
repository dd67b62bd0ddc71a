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

import (
	"fmt"
	"image"

	"github.com/veandco/go-sdl2/sdl"
)

// renderer draws the image into a rectangle of the window.
type renderer interface {
	present(img *image.RGBA, dst image.Rectangle) error
	destroy()
}

// the number of bytes required for each pixel
// 4 == red + green + blue + alpha
const pixelDepth = 4

// sdlRenderer uses an SDL renderer and a streaming texture.
type sdlRenderer struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
	size     image.Point
}

func newSDLRenderer(window *sdl.Window, vsync bool) (*sdlRenderer, error) {
	flags := uint32(sdl.RENDERER_ACCELERATED)
	if vsync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}

	r, err := sdl.CreateRenderer(window, -1, flags)
	if err != nil {
		return nil, err
	}

	return &sdlRenderer{renderer: r}, nil
}

func (rnd *sdlRenderer) destroy() {
	if rnd.texture != nil {
		_ = rnd.texture.Destroy()
		rnd.texture = nil
	}
	if rnd.renderer != nil {
		_ = rnd.renderer.Destroy()
		rnd.renderer = nil
	}
}

func (rnd *sdlRenderer) present(img *image.RGBA, dst image.Rectangle) error {
	sz := img.Bounds().Size()

	// the texture is recreated when the size of the image changes
	if rnd.texture == nil || sz != rnd.size {
		if rnd.texture != nil {
			_ = rnd.texture.Destroy()
		}

		var err error
		rnd.texture, err = rnd.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING), int32(sz.X), int32(sz.Y))
		if err != nil {
			rnd.texture = nil
			return fmt.Errorf("sdlhost: %w", err)
		}
		rnd.size = sz
	}

	pixels, pitch, err := rnd.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("sdlhost: %w", err)
	}
	for y := range sz.Y {
		s := img.Pix[y*img.Stride : y*img.Stride+sz.X*pixelDepth]
		copy(pixels[y*pitch:], s)
	}
	rnd.texture.Unlock()

	_ = rnd.renderer.SetDrawColor(0, 0, 0, 255)
	_ = rnd.renderer.Clear()

	d := &sdl.Rect{X: int32(dst.Min.X), Y: int32(dst.Min.Y), W: int32(dst.Dx()), H: int32(dst.Dy())}
	err = rnd.renderer.Copy(rnd.texture, nil, d)
	if err != nil {
		return fmt.Errorf("sdlhost: %w", err)
	}

	rnd.renderer.Present()

	return nil
}
