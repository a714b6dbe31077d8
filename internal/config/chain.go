package config

import (
	"math"
	"math/rand"

	"gopkg.in/yaml.v3"
)

// Range is the allowed interval and adjustment step of a tunable value.
type Range struct {
	Min, Max, Step float64
}

func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	return math.Min(r.Max, math.Max(r.Min, v))
}

func (r Range) ClampInt(v int) int {
	return int(r.Clamp(float64(v)))
}

var (
	BulbsCountRange = Range{Min: 10, Max: 500, Step: 1}
	BulbRadiusRange = Range{Min: 1, Max: 100, Step: 1}
	GlowOffsetRange = Range{Min: 0, Max: 100, Step: 1}
	TurnsCountRange = Range{Min: -50, Max: 50, Step: 1}
	StartAngleRange = Range{Min: 0, Max: 360, Step: 1}
	OpacityRange    = Range{Min: 0, Max: 1, Step: 0.01}
	RotationXRange  = Range{Min: 0, Max: MaxRotationX, Step: 1}
	SpinSpeedRange  = Range{Min: -10, Max: 10, Step: 0.1}
)

// Chain is one spiral string of lights.
type Chain struct {
	BulbsCount int     `yaml:"bulbs_count"`
	BulbRadius int     `yaml:"bulb_radius"`
	GlowOffset int     `yaml:"glow_offset"`
	TurnsCount int     `yaml:"turns_count"`
	StartAngle int     `yaml:"start_angle"`
	StartColor Color   `yaml:"start_color"`
	EndColor   Color   `yaml:"end_color"`
	Opacity    float64 `yaml:"opacity"`
}

// DefaultChain is the base for chains whose preset entry omits fields.
func DefaultChain() Chain {
	return Chain{
		BulbsCount: 50,
		BulbRadius: 10,
		TurnsCount: 5,
		StartColor: MustColor("#FF0"),
		EndColor:   MustColor("#0FF"),
		Opacity:    1,
	}
}

// DefaultChains returns the chains the tree starts with.
func DefaultChains() []Chain {
	return []Chain{
		{BulbRadius: 2, BulbsCount: 100, EndColor: MustColor("#FFC"), GlowOffset: 0, Opacity: 1, StartAngle: 0, StartColor: MustColor("#FFC"), TurnsCount: 14},
		{BulbRadius: 50, BulbsCount: 20, EndColor: MustColor("#0FF"), GlowOffset: 0, Opacity: 0.3, StartAngle: 120, StartColor: MustColor("#FF0"), TurnsCount: 3},
		{BulbRadius: 12, BulbsCount: 50, EndColor: MustColor("#FF0"), GlowOffset: 0, Opacity: 0.68, StartAngle: 240, StartColor: MustColor("#0FF"), TurnsCount: -3},
	}
}

// RandomChain returns a chain with randomized counts, radius, glow, turns,
// angle and opacity, and a yellow to cyan gradient.
func RandomChain(rng *rand.Rand) Chain {
	between := func(lo, hi float64) int {
		return int(math.Round(rng.Float64()*(hi-lo) + lo))
	}
	glow := 0
	if rng.Float64() >= 0.5 {
		glow = between(10, 20)
	}
	turns := between(3, 10)
	if rng.Float64() < 0.5 {
		turns = -turns
	}
	return Chain{
		BulbsCount: between(10, 100),
		BulbRadius: between(1, 20),
		GlowOffset: glow,
		TurnsCount: turns,
		StartAngle: between(0, 360),
		StartColor: MustColor("#FF0"),
		EndColor:   MustColor("#0FF"),
		Opacity:    float64(between(60, 100)) / 100,
	}
}

// Clamp forces every field into its panel range.
func (c *Chain) Clamp() {
	c.BulbsCount = BulbsCountRange.ClampInt(c.BulbsCount)
	c.BulbRadius = BulbRadiusRange.ClampInt(c.BulbRadius)
	c.GlowOffset = GlowOffsetRange.ClampInt(c.GlowOffset)
	c.TurnsCount = TurnsCountRange.ClampInt(c.TurnsCount)
	c.StartAngle = StartAngleRange.ClampInt(c.StartAngle)
	c.Opacity = OpacityRange.Clamp(c.Opacity)
}

func (c *Chain) UnmarshalYAML(value *yaml.Node) error {
	type plain Chain
	p := plain(DefaultChain())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*c = Chain(p)
	return nil
}
