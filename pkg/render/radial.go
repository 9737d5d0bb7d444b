package render

import "math"

// Rect is a rectangular region of the render target in cell coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Surface is the render-target contract: a character grid addressable by
// cell, taking a glyph and an RGB foreground per write. Writes arrive in
// ascending band order, so when two spokes overlap a cell the
// higher-frequency band wins.
type Surface interface {
	SetCell(x, y int, ch rune, r, g, b uint8)
}

// Spoke geometry constants. Character cells are roughly twice as tall as
// they are wide, so vertical displacement is halved to keep the ring round.
const (
	radiusMargin   = 0.9
	minSpokeFrac   = 0.2
	aspectVertical = 2.0
)

// glyphRamp orders the shade glyphs from sparse to solid; the spoke glyph is
// picked by quantizing intensity into four buckets.
var glyphRamp = [4]rune{'░', '▒', '▓', '█'}

// RadialRenderer projects band intensities onto a grid as colored spokes
// radiating from the center. Stateless; identical inputs always produce an
// identical set of cell writes.
type RadialRenderer struct{}

// NewRadialRenderer creates a radial spoke renderer.
func NewRadialRenderer() *RadialRenderer {
	return &RadialRenderer{}
}

// Render draws one spoke per band onto the surface. Every band draws at
// least 20% of the maximum radius so silence still shows an idle ring.
// Out-of-bounds positions from edge rounding are skipped, never reported.
func (rr *RadialRenderer) Render(bands []float64, area Rect, surface Surface) {
	if area.Width < 1 || area.Height < 1 {
		return
	}

	centerX := area.X + area.Width/2
	centerY := area.Y + area.Height/2

	radiusX := float64(area.Width) / 2
	radiusY := float64(area.Height) / 2 * aspectVertical
	maxRadius := math.Min(radiusX, radiusY) * radiusMargin

	numBands := len(bands)
	for band, intensity := range bands {
		intensity = clamp(intensity, 0, 1)
		angle := float64(band) / float64(numBands) * 2 * math.Pi
		length := SpokeLength(maxRadius, intensity)
		glyph := intensityGlyph(intensity)
		r, g, b := BandColor(band, numBands, intensity)

		steps := max(int(length), 1)
		for step := range steps {
			ratio := float64(step) / length
			x := float64(centerX) + math.Cos(angle)*ratio*length
			y := float64(centerY) - math.Sin(angle)*ratio*length/aspectVertical

			px := int(math.Round(x))
			py := int(math.Round(y))

			if px >= area.X && px < area.X+area.Width && py >= area.Y && py < area.Y+area.Height {
				surface.SetCell(px, py, glyph, r, g, b)
			}
		}
	}
}

// SpokeLength returns the drawn length for a band: a 20% floor plus 80%
// scaled by intensity.
func SpokeLength(maxRadius, intensity float64) float64 {
	return maxRadius * (minSpokeFrac + intensity*(1-minSpokeFrac))
}

func intensityGlyph(intensity float64) rune {
	bucket := min(int(intensity*4), len(glyphRamp)-1)
	return glyphRamp[bucket]
}
