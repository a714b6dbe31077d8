package colorconv

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownMode is returned by ParseMode for composite operations the mixer
// does not implement.
var ErrUnknownMode = errors.New("colorconv: unknown composite mode")

// Mode is a 2D-canvas style composite operation.
type Mode int

const (
	SourceOver Mode = iota
	DestinationOver
	Copy
	Xor
	Lighter
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	HardLight
	Difference
	Exclusion
)

var modeNames = [...]string{
	SourceOver:      "source-over",
	DestinationOver: "destination-over",
	Copy:            "copy",
	Xor:             "xor",
	Lighter:         "lighter",
	Multiply:        "multiply",
	Screen:          "screen",
	Overlay:         "overlay",
	Darken:          "darken",
	Lighten:         "lighten",
	HardLight:       "hard-light",
	Difference:      "difference",
	Exclusion:       "exclusion",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode maps a composite operation name to a Mode. The empty string is
// source-over.
func ParseMode(name string) (Mode, error) {
	if name == "" {
		return SourceOver, nil
	}
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return SourceOver, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// separable reports whether m is a blend mode applied per channel on top of
// source-over compositing.
func (m Mode) separable() bool {
	return m >= Multiply
}

// blend returns B(cb, cs) for the separable blend modes. Inputs and output
// are straight (non-premultiplied) channel values in [0, 1].
func (m Mode) blend(cb, cs float64) float64 {
	switch m {
	case Multiply:
		return cb * cs
	case Screen:
		return cb + cs - cb*cs
	case Overlay:
		return HardLight.blend(cs, cb)
	case Darken:
		return math.Min(cb, cs)
	case Lighten:
		return math.Max(cb, cs)
	case HardLight:
		if cs <= 0.5 {
			return Multiply.blend(cb, 2*cs)
		}
		return Screen.blend(cb, 2*cs-1)
	case Difference:
		return math.Abs(cb - cs)
	case Exclusion:
		return cb + cs - 2*cb*cs
	default:
		return cs
	}
}
