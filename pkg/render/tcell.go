package render

import "github.com/gdamore/tcell/v2"

// ScreenSurface adapts a tcell screen to the Surface contract.
type ScreenSurface struct {
	screen tcell.Screen
}

// NewScreenSurface wraps an initialized tcell screen.
func NewScreenSurface(screen tcell.Screen) *ScreenSurface {
	return &ScreenSurface{screen: screen}
}

// SetCell writes one glyph with an RGB foreground.
func (ss *ScreenSurface) SetCell(x, y int, ch rune, r, g, b uint8) {
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	ss.screen.SetContent(x, y, ch, nil, style)
}

// Area returns the full screen as a Rect.
func (ss *ScreenSurface) Area() Rect {
	w, h := ss.screen.Size()
	return Rect{X: 0, Y: 0, Width: w, Height: h}
}
