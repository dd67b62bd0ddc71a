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

package graphics

import (
	"fmt"
	"image"
	"os"

	"github.com/jetsetilly/gopherst/graphics/cursor"
	"github.com/jetsetilly/gopherst/graphics/palette"
	"github.com/jetsetilly/gopherst/graphics/surface"
	"github.com/jetsetilly/gopherst/keymap"
	"github.com/jetsetilly/gopherst/logger"
)

// EventSource is the part of the event source that the graphics manager
// needs.
type EventSource interface {
	PurgeMouseEvents()
}

// Options for the graphics manager.
type Options struct {
	// called when display memory cannot be allocated. the function should
	// not return. if it is nil the error is logged and the program exits
	Fatal func(error)
}

// Stats are counters that are updated by UpdateScreen().
type Stats struct {
	Presents    int
	Conversions int
	FullRedraws int
	Flips       int

	// cursor areas restored from the background
	Restores int

	// cursor pixels drawn by the most recent present
	CursorPixels int
}

// Manager is the graphics manager.
type Manager struct {
	hw    Hardware
	fatal func(error)
	prefs *Preferences

	inTransaction bool
	pending       State
	current       State

	// the resolution selected for the current state
	res image.Point

	// the width of the chunky surface. the game width rounded up to the
	// granularity of the converter
	pitchWidth int

	screens [NumScreens]*screen
	chunky  *surface.Surface
	overlay *surface.Surface

	pal        palette.Palette
	overlayPal *palette.Palette

	// the palette of the shown screen has changed and needs to be written
	// to the hardware
	paletteChanged bool

	overlayVisible bool

	// the cursor has a position on the overlay. if not then the position is
	// taken from the game screen when the overlay is shown
	overlayCursorSet bool

	// the surface returned by LockScreen(). nil if the screen is not locked
	locked *surface.Surface

	cursor *cursor.Cursor
	es     EventSource

	keymap keymap.Keymap

	stats Stats
}

// NewManager is the preferred method of initialisation for the Manager type.
// No memory is allocated until the first successful transaction.
func NewManager(hw Hardware, opts Options) (*Manager, error) {
	m := &Manager{
		hw:         hw,
		fatal:      opts.Fatal,
		overlayPal: palette.NewRGB332(),
		cursor:     cursor.NewCursor(),
		keymap:     newKeymap(),
	}

	if m.fatal == nil {
		m.fatal = defaultFatal
	}

	var err error
	m.prefs, err = newPreferences(m)
	if err != nil {
		return nil, fmt.Errorf("graphics: %w", err)
	}

	m.pending = State{Mode: SingleBuffering, Format: surface.CLUT8}
	m.current = m.pending

	logger.Logf(logger.Allow, "graphics", "%s hardware", hw.Name())

	return m, nil
}

func defaultFatal(err error) {
	logger.Log(logger.Allow, "graphics", err)
	fmt.Fprintf(os.Stderr, "* error: %v\n", err)
	os.Exit(10)
}

func (m *Manager) String() string {
	return fmt.Sprintf("%s %s res=%dx%d", m.hw.Name(), m.current, m.res.X, m.res.Y)
}

// Preferences returns the graphics preferences.
func (m *Manager) Preferences() *Preferences {
	return m.prefs
}

// Stats returns a copy of the present counters.
func (m *Manager) Stats() Stats {
	return m.stats
}

// SetEventSource sets the event source. Used by WarpMouse() to discard
// pending mouse movement.
func (m *Manager) SetEventSource(es EventSource) {
	m.es = es
}

// Keymap returns the keymap of the graphics manager.
func (m *Manager) Keymap() *keymap.Keymap {
	return &m.keymap
}

// GetSupportedGraphicsModes returns the modes that can be used with
// SetGraphicsMode().
func (m *Manager) GetSupportedGraphicsModes() []ModeInfo {
	return supportedModes
}

// GetDefaultGraphicsMode returns the mode used if no other mode is set.
func (m *Manager) GetDefaultGraphicsMode() Mode {
	return TripleBuffering
}

// GetGraphicsMode returns the current graphics mode.
func (m *Manager) GetGraphicsMode() Mode {
	return m.current.Mode
}

// GetWidth returns the width of the game screen.
func (m *Manager) GetWidth() int {
	return m.current.Width
}

// GetHeight returns the height of the game screen.
func (m *Manager) GetHeight() int {
	return m.current.Height
}

// GetScreenFormat returns the pixel format of the game screen.
func (m *Manager) GetScreenFormat() surface.PixelFormat {
	return m.current.Format
}

// GetSupportedFormats returns the pixel formats that can be used for the
// game screen.
func (m *Manager) GetSupportedFormats() []surface.PixelFormat {
	return []surface.PixelFormat{surface.CLUT8}
}

// Resolution returns the hardware resolution of the current state.
func (m *Manager) Resolution() image.Point {
	return m.res
}

// game bounds in the coordinates of the chunky surface
func (m *Manager) gameBounds() image.Rectangle {
	return image.Rect(0, 0, m.current.Width, m.current.Height)
}

func (m *Manager) ready() bool {
	return m.chunky != nil
}

// SetPalette sets entries of the game palette. The colors slice is packed RGB
// triplets.
func (m *Manager) SetPalette(colors []byte, start int, num int) {
	m.pal.Set(colors, start, num)
	if !m.overlayVisible {
		m.paletteChanged = true
	}
}

// GrabPalette copies entries of the game palette into the colors slice.
func (m *Manager) GrabPalette(colors []byte, start int, num int) {
	m.pal.Grab(colors, start, num)
}

// the screens that the game draws to. the list is empty if the screens
// haven't been allocated
func (m *Manager) gameScreens() []*screen {
	switch m.current.Mode {
	case SingleBuffering:
		if m.screens[FrontBuffer] != nil {
			return m.screens[FrontBuffer : FrontBuffer+1]
		}
	case TripleBuffering:
		if m.screens[FrontBuffer] != nil {
			return m.screens[FrontBuffer : BackBuffer2+1]
		}
	}
	return nil
}

// the screens affected by a change to the cursor
func (m *Manager) cursorScreens() []*screen {
	if m.overlayVisible {
		if m.screens[OverlayBuffer] != nil {
			return m.screens[OverlayBuffer : OverlayBuffer+1]
		}
		return nil
	}
	return m.gameScreens()
}

func (m *Manager) addDirtyRect(r image.Rectangle) {
	for _, scr := range m.gameScreens() {
		scr.addDirtyRect(r)
	}
}

func (m *Manager) setFullRedraw() {
	for _, scr := range m.gameScreens() {
		scr.dirty.SetFullRedraw()
	}
}

// CopyRectToScreen copies pixels from buf to the game screen at (x,y). The
// buf slice has the specified pitch.
func (m *Manager) CopyRectToScreen(buf []byte, pitch int, x int, y int, w int, h int) {
	if !m.ready() {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(m.gameBounds())
	if r.Empty() {
		return
	}
	m.addDirtyRect(r)

	// the chunky surface can be wider than the game screen
	m.chunky.Sub(m.gameBounds()).CopyFromBuffer(buf, pitch, x, y, w, h)
}

// LockScreen returns the game screen for direct access. UnlockScreen() must
// be called when drawing is finished.
func (m *Manager) LockScreen() *surface.Surface {
	if !m.ready() {
		return nil
	}
	if m.locked == nil {
		m.locked = m.chunky.Sub(m.gameBounds())
	}
	return m.locked
}

// UnlockScreen marks the whole of the game screen as changed.
func (m *Manager) UnlockScreen() {
	if m.locked == nil {
		return
	}
	m.locked = nil
	m.setFullRedraw()
}

// FillScreen fills the game screen with the colour.
func (m *Manager) FillScreen(color uint32) {
	if !m.ready() {
		return
	}
	m.chunky.FillRect(m.gameBounds(), color)
	m.setFullRedraw()
}

// ShowOverlay shows the overlay instead of the game screen.
func (m *Manager) ShowOverlay() {
	if m.overlayVisible {
		return
	}
	m.overlayVisible = true
	m.paletteChanged = true
	if !m.overlayCursorSet {
		p := m.cursor.Position().Add(m.overlayOffset())
		m.cursor.SetSwapPosition(p.X, p.Y)
		m.overlayCursorSet = true
	}
	m.cursor.Swap(m.cursorBounds())
	if scr := m.screens[OverlayBuffer]; scr != nil {
		scr.dirty.SetFullRedraw()
		scr.cursorVisibilityChanged = true
	}
}

// HideOverlay shows the game screen.
func (m *Manager) HideOverlay() {
	if !m.overlayVisible {
		return
	}
	m.overlayVisible = false
	m.paletteChanged = true
	m.cursor.Swap(m.cursorBounds())
	for _, scr := range m.gameScreens() {
		scr.dirty.SetFullRedraw()
		scr.cursorVisibilityChanged = true
	}
}

// IsOverlayVisible returns true if the overlay is being shown.
func (m *Manager) IsOverlayVisible() bool {
	return m.overlayVisible
}

// GetOverlayWidth returns the width of the overlay.
func (m *Manager) GetOverlayWidth() int {
	return m.res.X
}

// GetOverlayHeight returns the height of the overlay.
func (m *Manager) GetOverlayHeight() int {
	return m.res.Y
}

// GetOverlayFormat returns the pixel format of the overlay.
func (m *Manager) GetOverlayFormat() surface.PixelFormat {
	return surface.RGB332
}

// ClearOverlay copies the game screen to the overlay, converting the pixels
// to the overlay format. The game screen is centred on the overlay.
func (m *Manager) ClearOverlay() {
	if !m.ready() {
		return
	}

	m.overlay.Fill(0)

	gb := m.gameBounds()
	off := m.overlayOffset()
	for y := 0; y < gb.Dy(); y++ {
		src := m.chunky.Row(y)
		dst := m.overlay.Row(y + off.Y)
		for x := 0; x < gb.Dx(); x++ {
			r, g, b := m.pal.RGB(src[x])
			dst[x+off.X] = r&0xe0 | (g>>3)&0x1c | b>>6
		}
	}

	if scr := m.screens[OverlayBuffer]; scr != nil {
		scr.dirty.SetFullRedraw()
	}
}

// the position of the game screen when it is copied to the overlay
func (m *Manager) overlayOffset() image.Point {
	return image.Pt((m.res.X-m.current.Width)/2, (m.res.Y-m.current.Height)/2)
}

// CopyRectToOverlay copies pixels from buf to the overlay at (x,y). The
// pixels must be in the overlay format.
func (m *Manager) CopyRectToOverlay(buf []byte, pitch int, x int, y int, w int, h int) {
	if !m.ready() {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(m.overlay.Bounds())
	if r.Empty() {
		return
	}
	if scr := m.screens[OverlayBuffer]; scr != nil {
		scr.addDirtyRect(r)
	}
	m.overlay.CopyFromBuffer(buf, pitch, x, y, w, h)
}

// SetMouseCursor replaces the cursor bitmap. A keycolor greater than 255
// means that every pixel of the bitmap is drawn.
func (m *Manager) SetMouseCursor(buf []byte, w int, h int, hotspotX int, hotspotY int, keycolor uint32, format surface.PixelFormat) {
	m.cursor.SetSurface(buf, w, h, hotspotX, hotspotY, keycolor, format)
	for _, scr := range m.cursorScreens() {
		scr.cursorSurfaceChanged = true
	}
}

// SetCursorPalette sets entries of the palette used to draw the cursor on the
// overlay. The colors slice is packed RGB triplets. If num is zero the cursor
// palette is disabled and the cursor is drawn with the game palette.
func (m *Manager) SetCursorPalette(colors []byte, start int, num int) {
	if num <= 0 {
		m.cursor.DisablePalette()
	} else {
		m.cursor.SetPalette(colors, start, num)
	}
	for _, scr := range m.cursorScreens() {
		scr.cursorSurfaceChanged = true
	}
}

// ShowMouse shows or hides the cursor. Returns the previous visibility.
func (m *Manager) ShowMouse(visible bool) bool {
	last := m.cursor.SetVisible(visible)
	if last != visible {
		for _, scr := range m.cursorScreens() {
			scr.cursorVisibilityChanged = true
		}
	}
	return last
}

// the area that the cursor can move in
func (m *Manager) cursorBounds() image.Rectangle {
	if m.overlayVisible {
		return image.Rect(0, 0, m.res.X, m.res.Y)
	}
	return m.gameBounds()
}

// WarpMouse moves the cursor to the position. Pending mouse movement is
// discarded.
func (m *Manager) WarpMouse(x int, y int) {
	b := m.cursorBounds()
	if !b.Empty() {
		x = max(b.Min.X, min(x, b.Max.X-1))
		y = max(b.Min.Y, min(y, b.Max.Y-1))
	}
	m.cursor.SetPosition(x, y)
	if m.es != nil {
		m.es.PurgeMouseEvents()
	}
	for _, scr := range m.cursorScreens() {
		scr.cursorPositionChanged = true
	}
}

// MousePosition returns the position of the cursor.
func (m *Manager) MousePosition() image.Point {
	return m.cursor.Position()
}

// UpdateMousePosition moves the cursor relative to the current position. The
// position is clamped to the screen.
func (m *Manager) UpdateMousePosition(dx int, dy int) {
	m.cursor.UpdatePosition(dx, dy, m.cursorBounds())
	for _, scr := range m.cursorScreens() {
		scr.cursorPositionChanged = true
	}
}

// Cursor returns the mouse cursor.
func (m *Manager) Cursor() *cursor.Cursor {
	return m.cursor
}
