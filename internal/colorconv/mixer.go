// Package colorconv blends colors the way a 2D canvas does: fills are
// composited into a 1×1 premultiplied off-screen pixel and the result is read
// back as straight 8-bit RGBA.
package colorconv

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"
)

// Mixer owns the 1×1 off-screen buffer. The zero value is not usable; call
// NewMixer.
type Mixer struct {
	mu sync.Mutex
	px *image.RGBA
}

func NewMixer() *Mixer {
	return &Mixer{px: image.NewRGBA(image.Rect(0, 0, 1, 1))}
}

var defaultMixer = NewMixer()

// MixBlend paints c1 opaque-over-transparent, then c2 at global alpha weight
// using mode, and returns the resulting pixel.
func MixBlend(c1, c2 color.NRGBA, weight float64, mode Mode) color.NRGBA {
	return defaultMixer.MixBlend(c1, c2, weight, mode)
}

// Opacity returns c painted at global alpha opacity over a transparent pixel.
func Opacity(c color.NRGBA, opacity float64) color.NRGBA {
	return defaultMixer.Opacity(c, opacity)
}

func (m *Mixer) MixBlend(c1, c2 color.NRGBA, weight float64, mode Mode) color.NRGBA {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clear()
	m.fill(c1, 1, SourceOver)
	m.fill(c2, weight, mode)
	return m.read()
}

func (m *Mixer) Opacity(c color.NRGBA, opacity float64) color.NRGBA {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clear()
	m.fill(c, opacity, SourceOver)
	return m.read()
}

func (m *Mixer) clear() {
	draw.Draw(m.px, m.px.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// fill composites c at globalAlpha onto the pixel. Math follows the W3C
// Compositing and Blending Level 1 formulas on premultiplied values.
func (m *Mixer) fill(c color.NRGBA, globalAlpha float64, mode Mode) {
	dst := m.px.RGBAAt(0, 0)

	as := float64(c.A) / 255 * clamp01(globalAlpha)
	ab := float64(dst.A) / 255
	src := [3]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
	bp := [3]float64{float64(dst.R) / 255, float64(dst.G) / 255, float64(dst.B) / 255}

	var out [3]float64
	var ao float64
	for i := range out {
		cs := src[i]
		csp := cs * as
		cbp := bp[i]
		switch {
		case mode == DestinationOver:
			out[i] = csp*(1-ab) + cbp
		case mode == Copy:
			out[i] = csp
		case mode == Xor:
			out[i] = csp*(1-ab) + cbp*(1-as)
		case mode == Lighter:
			out[i] = math.Min(1, csp+cbp)
		case mode.separable():
			cb := 0.0
			if ab > 0 {
				cb = cbp / ab
			}
			mixed := (1-ab)*cs + ab*mode.blend(cb, cs)
			out[i] = as*mixed + (1-as)*cbp
		default:
			out[i] = csp + (1-as)*cbp
		}
	}
	switch mode {
	case DestinationOver:
		ao = as*(1-ab) + ab
	case Copy:
		ao = as
	case Xor:
		ao = as*(1-ab) + ab*(1-as)
	case Lighter:
		ao = math.Min(1, as+ab)
	default:
		ao = as + ab*(1-as)
	}

	a8 := to8(ao)
	m.px.SetRGBA(0, 0, color.RGBA{
		R: min(to8(out[0]), a8),
		G: min(to8(out[1]), a8),
		B: min(to8(out[2]), a8),
		A: a8,
	})
}

// read un-premultiplies the stored pixel.
func (m *Mixer) read() color.NRGBA {
	p := m.px.RGBAAt(0, 0)
	if p.A == 0 {
		return color.NRGBA{}
	}
	unmul := func(v uint8) uint8 {
		return to8(float64(v) / float64(p.A))
	}
	return color.NRGBA{R: unmul(p.R), G: unmul(p.G), B: unmul(p.B), A: p.A}
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
