package game

import (
	"image/color"
	"math"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// premultiply writes c as premultiplied RGBA floats into dst[:4].
func premultiply(dst []float32, c color.NRGBA) {
	a := float32(c.A) / 255
	dst[0] = float32(c.R) / 255 * a
	dst[1] = float32(c.G) / 255 * a
	dst[2] = float32(c.B) / 255 * a
	dst[3] = a
}

// withGlobalAlpha applies a canvas-style global alpha to c.
func withGlobalAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * clamp01(alpha)))
	return c
}
