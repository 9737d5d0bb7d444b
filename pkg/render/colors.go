package render

import "math"

// Color mapping constants. The hue ramp deliberately stops at 300 degrees so
// the highest band reads violet instead of wrapping back to red, keeping the
// frequency-to-hue mapping monotonic.
const (
	hueSpanDegrees = 300.0
	saturation     = 0.9
	lightnessBase  = 0.3
	lightnessSpan  = 0.4
)

// BandColor maps a frequency band and its intensity to an RGB triple.
// Band 0 is red (bass), the top band violet (treble); intensity raises the
// lightness from 0.3 to 0.7 so hue stays visible at every level. Out-of-range
// inputs are clamped. Pure and never fails.
func BandColor(band, numBands int, intensity float64) (r, g, b uint8) {
	if numBands < 1 {
		numBands = 1
	}
	band = min(max(band, 0), numBands-1)
	intensity = clamp(intensity, 0, 1)

	hue := float64(band) / float64(numBands) * hueSpanDegrees
	lightness := lightnessBase + intensity*lightnessSpan

	rf, gf, bf := hslToRGB(hue, saturation, lightness)

	// Truncation, not rounding.
	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

// hslToRGB converts HSL (hue in degrees, s/l in [0,1]) to RGB channels in
// [0,1] using the standard piecewise transform.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60.0
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := l - c/2

	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return r + m, g + m, b + m
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
