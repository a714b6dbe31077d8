package config

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Light Tree - drag to rotate, H: panel, Esc/Q: quit"

	// Panel geometry
	PanelX         = 8
	PanelY         = 28
	PanelWidth     = 250
	PanelRowHeight = 16
	PanelPadding   = 6
	PanelHotZone   = 18

	// Rotation
	MaxRotationX    = 75.0
	DragTiltRange   = 75.0
	DragSpinRange   = 360.0
	DefaultSpinRate = 1.0

	// Music-reactive glow
	VisualRingSize  = 8192
	SmoothingFactor = 0.6
	PulseGain       = 0.5
	SampleWindow    = 2048
)

// Tree shapes name the easing applied to the section radius along the height.
const (
	ShapeLinear        = "linear"
	ShapeEaseInQuad    = "easeInQuad"
	ShapeEaseOutQuad   = "easeOutQuad"
	ShapeEaseInOutQuad = "easeInOutQuad"
	ShapeEaseInCubic   = "easeInCubic"
)

// Shapes lists the tree shapes in panel order.
var Shapes = []string{
	ShapeLinear,
	ShapeEaseInQuad,
	ShapeEaseOutQuad,
	ShapeEaseInOutQuad,
	ShapeEaseInCubic,
}

// ValidShape reports whether name is one of Shapes.
func ValidShape(name string) bool {
	for _, s := range Shapes {
		if s == name {
			return true
		}
	}
	return false
}
