package tree

import (
	"image/color"
	"math"
	"testing"

	"github.com/iburimskiy/light-tree/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-6

func TestNewScene(t *testing.T) {
	s := NewScene(1000, 800, 30)

	assert.InDelta(t, math.Pi/6, s.TiltAngle, epsilon)
	assert.InDelta(t, 640, s.TreeHeight, epsilon)
	assert.InDelta(t, 192, s.BaseRadius, epsilon)
	assert.InDelta(t, 500, s.BaseCenter.X, epsilon)
	assert.InDelta(t, 400+320*math.Cos(math.Pi/6)-96*0.5, s.BaseCenter.Y, epsilon)
}

func TestNewSceneUpright(t *testing.T) {
	s := NewScene(600, 900, 0)

	assert.InDelta(t, 480, s.TreeHeight, epsilon)
	assert.InDelta(t, 450+240, s.BaseCenter.Y, epsilon, "no tilt puts the base half a tree below center")
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.0, Progress(0, 10))
	assert.Equal(t, 1.0, Progress(9, 10))
	assert.Equal(t, 0.0, Progress(0, 1))
	assert.InDelta(t, math.Pow(0.5, math.Sqrt(0.5)+1), Progress(1, 3), epsilon)

	prev := -1.0
	for i := 0; i < 50; i++ {
		p := Progress(i, 50)
		assert.Greater(t, p, prev, "progress must increase")
		prev = p
	}
}

func TestEasing(t *testing.T) {
	tests := []struct {
		shape string
		in    float64
		want  float64
	}{
		{config.ShapeLinear, 0.5, 0.5},
		{config.ShapeEaseInQuad, 0.5, 0.25},
		{config.ShapeEaseOutQuad, 0.5, 0.75},
		{config.ShapeEaseInOutQuad, 0.25, 0.125},
		{config.ShapeEaseInOutQuad, 0.75, 0.875},
		{config.ShapeEaseInCubic, 0.5, 0.125},
		{"unknown", 0.3, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			assert.InDelta(t, tt.want, Easing(tt.shape)(tt.in), 1e-5)
		})
	}
	for _, shape := range config.Shapes {
		e := Easing(shape)
		assert.InDelta(t, 0, e(0), 1e-6, shape)
		assert.InDelta(t, 1, e(1), 1e-6, shape)
	}
}

func testChain() config.Chain {
	return config.Chain{
		BulbsCount: 10,
		BulbRadius: 10,
		GlowOffset: 0,
		TurnsCount: 3,
		StartAngle: 0,
		StartColor: config.MustColor("#F00"),
		EndColor:   config.MustColor("#00F"),
		Opacity:    0.5,
	}
}

func TestLayoutEndpoints(t *testing.T) {
	s := NewScene(1000, 800, 30)
	bulbs := Layout(nil, testChain(), View{Scene: s, Shape: config.ShapeLinear})
	require.Len(t, bulbs, 10)

	base := bulbs[0]
	assert.InDelta(t, 500, base.X, epsilon)
	assert.InDelta(t, s.BaseCenter.Y+192*0.5, base.Y, epsilon, "front of the base ring is pushed down by the tilt")
	assert.InDelta(t, 6.4, base.Radius, epsilon)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, base.Color)
	assert.Equal(t, 0.5, base.Alpha)
	assert.False(t, base.HasGlow())

	top := bulbs[9]
	assert.InDelta(t, 500, top.X, epsilon)
	assert.InDelta(t, s.BaseCenter.Y-640*math.Cos(math.Pi/6), top.Y, epsilon)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, top.Color)
}

func TestLayoutSpinAndBackFade(t *testing.T) {
	s := NewScene(1000, 1000, 0)
	v := View{Scene: s, Shape: config.ShapeLinear, RotationZ: 90}
	bulbs := Layout(nil, testChain(), v)

	side := bulbs[0]
	assert.InDelta(t, 500+s.BaseRadius, side.X, epsilon, "a quarter spin moves the first bulb to the right edge")
	assert.InDelta(t, math.Pi/2, side.Angle, epsilon)
	assert.InDelta(t, 0.2*255, float64(side.Color.A), 1, "bulbs at the side are dimmed to the floor")

	v.RotationZ = 180
	back := Layout(nil, testChain(), v)[0]
	assert.InDelta(t, 0.2*255, float64(back.Color.A), 1, "back bulbs keep the floor alpha")
}

func TestLayoutNegativeRotation(t *testing.T) {
	s := NewScene(800, 800, 20)
	a := Layout(nil, testChain(), View{Scene: s, RotationZ: -90})
	b := Layout(nil, testChain(), View{Scene: s, RotationZ: 270})

	for i := range a {
		assert.InDelta(t, b[i].X, a[i].X, 1e-6)
		assert.InDelta(t, b[i].Y, a[i].Y, 1e-6)
	}
}

func TestLayoutNegativeTurnsMirror(t *testing.T) {
	s := NewScene(800, 800, 0)
	c := testChain()
	right := Layout(nil, c, View{Scene: s})
	c.TurnsCount = -c.TurnsCount
	left := Layout(nil, c, View{Scene: s})

	for i := range right {
		assert.InDelta(t, right[i].X-400, 400-left[i].X, 1e-6, "bulb %d", i)
		assert.InDelta(t, right[i].Y, left[i].Y, 1e-6, "bulb %d", i)
	}
}

func TestLayoutShapeNarrowsTree(t *testing.T) {
	s := NewScene(800, 800, 30)
	c := testChain()
	c.TurnsCount = 0
	linear := Layout(nil, c, View{Scene: s, Shape: config.ShapeLinear})
	outQuad := Layout(nil, c, View{Scene: s, Shape: config.ShapeEaseOutQuad})

	// Turns of zero keep every bulb on the front meridian, so Y carries the radius.
	for i := 1; i < len(linear)-1; i++ {
		assert.Less(t, outQuad[i].Y, linear[i].Y+1e-9, "bulb %d", i)
	}
}

func TestLayoutGlow(t *testing.T) {
	s := NewScene(1000, 1000, 0)
	c := testChain()
	c.GlowOffset = 20

	b := Layout(nil, c, View{Scene: s})[0]
	require.True(t, b.HasGlow())
	assert.InDelta(t, 8, b.Radius, epsilon)
	assert.InDelta(t, 24, b.GlowRadius, epsilon)

	pulsed := Layout(nil, c, View{Scene: s, GlowScale: 1.5})[0]
	assert.InDelta(t, 8+16*1.5, pulsed.GlowRadius, epsilon)

	stops := b.GlowStops()
	assert.Equal(t, 0.0, stops[0].Offset)
	assert.Equal(t, 1.0, stops[4].Offset)
	assert.Equal(t, uint8(128), stops[0].Color.A)
	assert.Equal(t, uint8(153), stops[1].Color.A)
	assert.Equal(t, uint8(0), stops[4].Color.A)
	assert.Greater(t, stops[0].Color.G, stops[1].Color.G, "inner stop is whitened")
}

func TestLayoutAllReusesBuffer(t *testing.T) {
	s := NewScene(640, 480, 30)
	chains := config.DefaultChains()
	buf := LayoutAll(nil, chains, View{Scene: s})
	assert.Len(t, buf, 170)

	again := LayoutAll(buf, chains[:1], View{Scene: s})
	assert.Len(t, again, 100)
	assert.Equal(t, &buf[0], &again[0])

	assert.Empty(t, LayoutAll(buf, nil, View{Scene: s}))
}
