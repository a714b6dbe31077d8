package config

import (
	"fmt"
	"image/color"

	"github.com/iburimskiy/light-tree/internal/colorconv"
	"gopkg.in/yaml.v3"
)

// Color is a straight-alpha color stored as a hex string in preset files.
type Color color.NRGBA

func MustColor(hex string) Color {
	return Color(colorconv.MustParseHex(hex))
}

func (c Color) NRGBA() color.NRGBA { return color.NRGBA(c) }

func (c Color) String() string { return colorconv.Hex(color.NRGBA(c)) }

func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := colorconv.ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = Color(parsed)
	return nil
}
