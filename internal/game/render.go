package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/light-tree/internal/tree"
)

// glowShaderSrc fills a radial gradient between Inner and Outer around
// Center. Stops are premultiplied and evenly spaced at 0, .25, .5, .75, 1;
// inside Inner the first stop is used.
const glowShaderSrc = `//kage:unit pixels
package main

var Center vec2
var Inner float
var Outer float
var Alpha float
var Stops [5]vec4

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	d := distance(dst.xy, Center)
	if d > Outer {
		return vec4(0)
	}
	t := clamp((d-Inner)/(Outer-Inner), 0, 1) * 4
	c := mix(Stops[0], Stops[1], clamp(t, 0, 1))
	c = mix(c, Stops[2], clamp(t-1, 0, 1))
	c = mix(c, Stops[3], clamp(t-2, 0, 1))
	c = mix(c, Stops[4], clamp(t-3, 0, 1))
	return c * Alpha
}
`

// Renderer draws laid-out bulbs. It is not safe for concurrent use; ebiten
// calls Draw from a single goroutine.
type Renderer struct {
	shader   *ebiten.Shader
	uniforms map[string]any
	center   [2]float32
	stops    [20]float32
	op       ebiten.DrawRectShaderOptions
}

func NewRenderer() *Renderer {
	return &Renderer{uniforms: make(map[string]any, 5)}
}

func (r *Renderer) ensureShader() *ebiten.Shader {
	if r.shader == nil {
		s, err := ebiten.NewShader([]byte(glowShaderSrc))
		if err != nil {
			panic("lighttree: failed to compile glow shader: " + err.Error())
		}
		r.shader = s
	}
	return r.shader
}

// Draw clears screen to bg and paints every bulb, glow first.
func (r *Renderer) Draw(screen *ebiten.Image, bg color.Color, bulbs []tree.Bulb) {
	screen.Fill(bg)
	for i := range bulbs {
		b := &bulbs[i]
		if b.HasGlow() {
			r.drawGlow(screen, b)
		}
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), withGlobalAlpha(b.Color, b.Alpha), true)
	}
}

func (r *Renderer) drawGlow(screen *ebiten.Image, b *tree.Bulb) {
	stops := b.GlowStops()
	for i, s := range stops {
		premultiply(r.stops[i*4:i*4+4], s.Color)
	}
	r.center = [2]float32{float32(b.X), float32(b.Y)}
	r.uniforms["Center"] = r.center[:]
	r.uniforms["Inner"] = float32(b.Radius)
	r.uniforms["Outer"] = float32(b.GlowRadius)
	r.uniforms["Alpha"] = float32(clamp01(b.Alpha))
	r.uniforms["Stops"] = r.stops[:]

	left := math.Floor(b.X-b.GlowRadius) - 1
	top := math.Floor(b.Y-b.GlowRadius) - 1
	size := int(math.Ceil(2*b.GlowRadius)) + 3

	r.op.GeoM.Reset()
	r.op.GeoM.Translate(left, top)
	r.op.Uniforms = r.uniforms
	screen.DrawRectShader(size, size, r.ensureShader(), &r.op)
}
