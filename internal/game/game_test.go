package game

import (
	"errors"
	"image/color"
	"testing"

	"github.com/iburimskiy/light-tree/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGame() *Game {
	return New(Options{Dialogs: &fakeDialogs{}, Logger: zap.NewNop(), Seed: 3})
}

func TestNewDefaults(t *testing.T) {
	g := New(Options{})
	require.NotNil(t, g.preset)
	assert.Len(t, g.preset.Chains, 3)
	assert.IsType(t, NativeDialogs{}, g.panel.dialogs)
	assert.True(t, g.panel.Visible)
}

func TestLayoutTracksWindow(t *testing.T) {
	g := newTestGame()
	w, h := g.Layout(640, 480)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	v := g.View()
	assert.Equal(t, 640.0, v.Scene.Width)
	assert.InDelta(t, 384, v.Scene.TreeHeight, 1e-9)
	assert.Equal(t, 1.0, v.GlowScale, "no music means no pulse")
	assert.Equal(t, config.ShapeLinear, v.Shape)
}

func TestTickAutoSpin(t *testing.T) {
	g := newTestGame()
	g.tick()
	g.tick()
	assert.Equal(t, -2.0, g.View().RotationZ)

	g.preset.Settings.AutoSpin = false
	g.tick()
	assert.Equal(t, -2.0, g.rot.Z)

	g.preset.Settings.AutoSpin = true
	g.preset.Settings.SpinSpeed = -0.5
	g.tick()
	assert.Equal(t, -1.5, g.rot.Z)
}

func TestPointerDownRoutes(t *testing.T) {
	g := newTestGame()
	g.Layout(1000, 500)

	// On the panel: the click lands on the chain header and nothing drags.
	g.pointerDown(config.PanelX+10, config.PanelY+config.PanelPadding+2, mousePointer)
	assert.False(t, g.rot.Dragging())

	g.pointerDown(800, 300, 4)
	require.True(t, g.rot.Dragging())
	assert.Equal(t, 4, int(g.pointer))

	// A second pointer does not steal the drag.
	g.pointerDown(900, 100, mousePointer)
	assert.Equal(t, 4, int(g.pointer))

	g.dragTo(800, 400)
	assert.InDelta(t, 30+15, g.preset.Settings.RotationX, 1e-9)

	g.tick()
	assert.InDelta(t, 0, g.rot.Z, 1e-9, "auto spin holds while dragging")
}

func TestStatus(t *testing.T) {
	g := newTestGame()
	assert.Contains(t, g.status(), "3 chains")

	g.preset.Settings.AutoSpin = false
	assert.Contains(t, g.status(), "spin paused")

	g.report(nil)
	assert.NotContains(t, g.status(), "Error")
	g.report(errors.New("disk full"))
	assert.Contains(t, g.status(), "Error: disk full")
}

func TestPremultiply(t *testing.T) {
	var dst [4]float32
	premultiply(dst[:], color.NRGBA{R: 255, G: 51, A: 51})
	assert.InDelta(t, 0.2, dst[0], 1e-6)
	assert.InDelta(t, 0.04, dst[1], 1e-6)
	assert.InDelta(t, 0, dst[2], 1e-6)
	assert.InDelta(t, 0.2, dst[3], 1e-6)
}

func TestWithGlobalAlpha(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 200}
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 100}, withGlobalAlpha(c, 0.5))
	assert.Equal(t, c, withGlobalAlpha(c, 2))
	assert.Equal(t, uint8(0), withGlobalAlpha(c, -1).A)
}
