package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrUnknownShape = errors.New("config: unknown tree shape")

// Settings are the scene-wide parameters.
type Settings struct {
	Background Color   `yaml:"background"`
	RotationX  float64 `yaml:"rotation_x"`
	TreeShape  string  `yaml:"tree_shape"`
	SpinSpeed  float64 `yaml:"spin_speed"`
	AutoSpin   bool    `yaml:"auto_spin"`
}

// Preset is everything a tree needs to be drawn, as stored on disk.
type Preset struct {
	Settings Settings `yaml:"settings"`
	Chains   []Chain  `yaml:"chains"`
}

func DefaultSettings() Settings {
	return Settings{
		Background: MustColor("#111"),
		RotationX:  30,
		TreeShape:  ShapeLinear,
		SpinSpeed:  DefaultSpinRate,
		AutoSpin:   true,
	}
}

func DefaultPreset() *Preset {
	return &Preset{
		Settings: DefaultSettings(),
		Chains:   DefaultChains(),
	}
}

// Validate clamps numeric fields into range and rejects unknown shapes.
func (p *Preset) Validate() error {
	if !ValidShape(p.Settings.TreeShape) {
		return fmt.Errorf("%w: %q", ErrUnknownShape, p.Settings.TreeShape)
	}
	p.Settings.RotationX = RotationXRange.Clamp(p.Settings.RotationX)
	p.Settings.SpinSpeed = SpinSpeedRange.Clamp(p.Settings.SpinSpeed)
	for i := range p.Chains {
		p.Chains[i].Clamp()
	}
	return nil
}

// Clone returns a deep copy so the panel can edit without aliasing.
func (p *Preset) Clone() *Preset {
	out := *p
	out.Chains = append([]Chain(nil), p.Chains...)
	return &out
}

// Parse decodes a preset document on top of the defaults.
func Parse(data []byte) (*Preset, error) {
	p := DefaultPreset()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decode preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func Marshal(p *Preset) ([]byte, error) {
	return yaml.Marshal(p)
}

func Save(path string, p *Preset) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write preset: %w", err)
	}
	return nil
}
