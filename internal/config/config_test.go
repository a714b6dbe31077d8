package config

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPreset(t *testing.T) {
	p := DefaultPreset()

	assert.Equal(t, "#111111", p.Settings.Background.String())
	assert.Equal(t, 30.0, p.Settings.RotationX)
	assert.Equal(t, ShapeLinear, p.Settings.TreeShape)
	assert.True(t, p.Settings.AutoSpin)
	require.Len(t, p.Chains, 3)
	assert.Equal(t, 100, p.Chains[0].BulbsCount)
	assert.Equal(t, 14, p.Chains[0].TurnsCount)
	assert.Equal(t, -3, p.Chains[2].TurnsCount)
	assert.Equal(t, "#00ffff", p.Chains[2].StartColor.String())
	assert.NoError(t, p.Validate())
}

func TestRandomChainRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		c := RandomChain(rng)
		assert.GreaterOrEqual(t, c.BulbsCount, 10)
		assert.LessOrEqual(t, c.BulbsCount, 100)
		assert.GreaterOrEqual(t, c.BulbRadius, 1)
		assert.LessOrEqual(t, c.BulbRadius, 20)
		if c.GlowOffset != 0 {
			assert.GreaterOrEqual(t, c.GlowOffset, 10)
			assert.LessOrEqual(t, c.GlowOffset, 20)
		}
		abs := c.TurnsCount
		if abs < 0 {
			abs = -abs
		}
		assert.GreaterOrEqual(t, abs, 3)
		assert.LessOrEqual(t, abs, 10)
		assert.GreaterOrEqual(t, c.StartAngle, 0)
		assert.LessOrEqual(t, c.StartAngle, 360)
		assert.GreaterOrEqual(t, c.Opacity, 0.6)
		assert.LessOrEqual(t, c.Opacity, 1.0)
	}
}

func TestChainClamp(t *testing.T) {
	c := Chain{BulbsCount: 1, BulbRadius: 1000, GlowOffset: -5, TurnsCount: -80, StartAngle: 400, Opacity: 3}
	c.Clamp()

	assert.Equal(t, 10, c.BulbsCount)
	assert.Equal(t, 100, c.BulbRadius)
	assert.Equal(t, 0, c.GlowOffset)
	assert.Equal(t, -50, c.TurnsCount)
	assert.Equal(t, 360, c.StartAngle)
	assert.Equal(t, 1.0, c.Opacity)
}

func TestParsePartialPreset(t *testing.T) {
	doc := `
settings:
  tree_shape: easeOutQuad
  rotation_x: 120
chains:
  - bulbs_count: 80
    start_color: "#f00"
  - glow_offset: 15
`
	p, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, ShapeEaseOutQuad, p.Settings.TreeShape)
	assert.Equal(t, MaxRotationX, p.Settings.RotationX, "rotation is clamped")
	assert.Equal(t, "#111111", p.Settings.Background.String(), "unset settings keep defaults")
	require.Len(t, p.Chains, 2)
	assert.Equal(t, 80, p.Chains[0].BulbsCount)
	assert.Equal(t, "#ff0000", p.Chains[0].StartColor.String())
	assert.Equal(t, "#00ffff", p.Chains[0].EndColor.String(), "unset chain fields come from DefaultChain")
	assert.Equal(t, 15, p.Chains[1].GlowOffset)
	assert.Equal(t, 1.0, p.Chains[1].Opacity)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("settings:\n  tree_shape: spiral\n"))
	assert.ErrorIs(t, err, ErrUnknownShape)

	_, err = Parse([]byte("settings:\n  background: blue\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("chains: 3\n"))
	assert.Error(t, err)
}

func TestSaveLoadPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	want := DefaultPreset()
	want.Settings.TreeShape = ShapeEaseInCubic
	want.Chains = append(want.Chains, RandomChain(rand.New(rand.NewSource(1))))

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	p := DefaultPreset()
	c := p.Clone()
	c.Chains[0].BulbsCount = 42
	c.Chains = c.Chains[:1]

	assert.Equal(t, 100, p.Chains[0].BulbsCount)
	assert.Len(t, p.Chains, 3)
}
