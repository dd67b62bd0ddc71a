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

package video_test

import (
	"image"
	"testing"
	"time"

	"github.com/jetsetilly/gopherst/curated"
	"github.com/jetsetilly/gopherst/graphics/c2p"
	"github.com/jetsetilly/gopherst/graphics/palette"
	"github.com/jetsetilly/gopherst/hardware/memory"
	"github.com/jetsetilly/gopherst/hardware/video"
	"github.com/jetsetilly/gopherst/limiter"
	"github.com/jetsetilly/gopherst/test"
)

func TestNew(t *testing.T) {
	for _, n := range video.Chipsets() {
		c, err := video.New(n)
		test.ExpectSuccess(t, err, n)
		test.ExpectInequality(t, len(c.Resolutions()), 0, n)
	}

	_, err := video.New("shifter")
	test.ExpectSuccess(t, curated.Is(err, video.UnknownChipset))

	sv, err := video.New(video.SuperVidel)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sv.Converter().Planar(), false)
	test.ExpectEquality(t, sv.PaletteEncoding(), palette.EncodingSuperVidel)

	// screen memory on the SuperVidel is in video RAM
	b, err := sv.Allocator().Allocate(memory.STRAM, 1024)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.Pool, memory.VRAM)
}

func TestPlanarScanout(t *testing.T) {
	c, err := video.New(video.Videl)
	test.DemandSuccess(t, err)

	b, err := c.Allocator().Allocate(memory.STRAM, 320*200)
	test.DemandSuccess(t, err)

	// first group of pixels on the second row
	chunky := make([]byte, 16)
	chunky[3] = 7
	c2p.EncodeGroup(b.Data[320:336], chunky)

	var pal palette.Palette
	pal.Set([]byte{0x10, 0x20, 0x30}, 7, 1)

	c.SetResolution(image.Pt(320, 200))
	c.SetScreenBase(b.Addr)
	c.SetPalette(palette.Encode(&pal, c.PaletteEncoding()))

	img, err := c.Scanout(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 320, 200))

	px := img.RGBAAt(3, 1)
	test.ExpectEquality(t, px.R, uint8(0x10))
	test.ExpectEquality(t, px.G, uint8(0x20))
	test.ExpectEquality(t, px.B, uint8(0x30))
	test.ExpectEquality(t, img.RGBAAt(2, 1).R, uint8(0))

	// image is reused
	img2, err := c.Scanout(img)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, img2, img)
}

func TestScanoutFailure(t *testing.T) {
	c, err := video.New(video.TT)
	test.DemandSuccess(t, err)

	c.SetResolution(image.Pt(320, 200))
	c.SetScreenBase(0xff000000)
	_, err = c.Scanout(nil)
	test.ExpectSuccess(t, curated.Is(err, video.ScanoutFailed))
}

func TestWaitVBL(t *testing.T) {
	c, err := video.New(video.TT)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.RefreshRate(), float32(50))

	c.WaitVBL()
	test.ExpectEquality(t, c.Regs.VBL, 1)

	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()
	c.AttachLimiter(lmtr)
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), float32(50))

	start := time.Now()
	for range 25 {
		c.WaitVBL()
	}
	test.ExpectEquality(t, c.Regs.VBL, 26)

	// 25 frames at 50Hz is half a second
	test.ExpectSuccess(t, time.Since(start) >= 400*time.Millisecond)
}
