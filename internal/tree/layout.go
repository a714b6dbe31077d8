package tree

import (
	"image/color"
	"math"

	"github.com/iburimskiy/light-tree/internal/colorconv"
	"github.com/iburimskiy/light-tree/internal/config"
)

var glowHighlight = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// View is what changes between frames besides the chains themselves.
type View struct {
	Scene     Scene
	RotationZ float64 // spin in degrees
	Shape     string
	GlowScale float64 // multiplies the glow band; zero means 1
}

// Bulb is one light ready to draw.
type Bulb struct {
	X, Y       float64
	Radius     float64
	GlowRadius float64
	Progress   float64
	Angle      float64 // section angle in radians
	Color      color.NRGBA
	Alpha      float64 // global alpha, the chain opacity
}

// HasGlow reports whether a halo is drawn behind the bulb.
func (b Bulb) HasGlow() bool {
	return b.GlowRadius > b.Radius
}

// GradientStop is one color stop of a radial gradient.
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// GlowStops returns the halo gradient from the bulb edge (offset 0) to the
// glow radius (offset 1).
func (b Bulb) GlowStops() [5]GradientStop {
	return [5]GradientStop{
		{0, colorconv.Opacity(colorconv.MixBlend(b.Color, glowHighlight, 0.3, colorconv.SourceOver), 0.5)},
		{0.25, colorconv.Opacity(b.Color, 0.6)},
		{0.5, colorconv.Opacity(b.Color, 0.3)},
		{0.75, colorconv.Opacity(b.Color, 0.125)},
		{1, colorconv.Opacity(b.Color, 0)},
	}
}

// Progress maps bulb i of n to its position along the chain, with the
// spacing amended so lights do not crowd at the top.
func Progress(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	p := float64(i) / float64(n-1)
	return math.Pow(p, math.Sqrt(p)+1)
}

// Layout appends the bulbs of chain to dst in draw order.
func Layout(dst []Bulb, chain config.Chain, v View) []Bulb {
	s := v.Scene
	easing := Easing(v.Shape)
	glowScale := v.GlowScale
	if glowScale == 0 {
		glowScale = 1
	}
	bulbRadius := float64(chain.BulbRadius) * s.TreeHeight / 1000
	glowRadius := float64(chain.BulbRadius+chain.GlowOffset) * s.TreeHeight / 1000
	glowRadius = bulbRadius + (glowRadius-bulbRadius)*glowScale
	rise := math.Sin((90 - s.RotationX) / 180 * math.Pi)
	start := chain.StartColor.NRGBA()
	end := chain.EndColor.NRGBA()

	for i := 0; i < chain.BulbsCount; i++ {
		progress := Progress(i, chain.BulbsCount)
		turnProgress := math.Mod(progress*float64(chain.TurnsCount), 1)
		sectionRadius := s.BaseRadius * (1 - easing(progress))
		sectionAngle := math.Mod((turnProgress*360+float64(chain.StartAngle)+v.RotationZ)/180*math.Pi, 2*math.Pi)
		alpha := math.Min(1, math.Max(0, math.Cos(sectionAngle))+0.2)

		dst = append(dst, Bulb{
			X: s.BaseCenter.X + math.Sin(sectionAngle)*sectionRadius,
			Y: s.BaseCenter.Y - progress*s.TreeHeight*rise +
				sectionRadius*math.Sin(s.TiltAngle)*math.Cos(sectionAngle),
			Radius:     bulbRadius,
			GlowRadius: glowRadius,
			Progress:   progress,
			Angle:      sectionAngle,
			Color:      colorconv.Opacity(colorconv.MixBlend(start, end, progress, colorconv.SourceOver), alpha),
			Alpha:      chain.Opacity,
		})
	}
	return dst
}

// LayoutAll lays out every chain in order, reusing dst's storage.
func LayoutAll(dst []Bulb, chains []config.Chain, v View) []Bulb {
	dst = dst[:0]
	for _, c := range chains {
		dst = Layout(dst, c, v)
	}
	return dst
}
