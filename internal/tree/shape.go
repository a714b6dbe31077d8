package tree

import (
	"github.com/iburimskiy/light-tree/internal/config"
	"github.com/tanema/gween/ease"
)

var shapes = map[string]ease.TweenFunc{
	config.ShapeLinear:        ease.Linear,
	config.ShapeEaseInQuad:    ease.InQuad,
	config.ShapeEaseOutQuad:   ease.OutQuad,
	config.ShapeEaseInOutQuad: ease.InOutQuad,
	config.ShapeEaseInCubic:   ease.InCubic,
}

// Easing returns the normalized easing curve for a tree shape. Unknown names
// fall back to linear.
func Easing(shape string) func(float64) float64 {
	fn, ok := shapes[shape]
	if !ok {
		fn = ease.Linear
	}
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}
