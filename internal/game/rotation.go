package game

import (
	"math"

	"github.com/iburimskiy/light-tree/internal/config"
)

// Rotation turns pointer drags into tilt and spin. Tilt itself lives in the
// preset settings; Rotation owns the spin and the drag anchor.
type Rotation struct {
	Z float64 // spin in degrees

	dragging bool
	startX   float64
	startY   float64
	startRX  float64
	startRZ  float64
}

// Begin anchors a drag at (x, y) with the current tilt.
func (r *Rotation) Begin(x, y, tilt float64) {
	r.dragging = true
	r.startX = x
	r.startY = y
	r.startRX = tilt
	r.startRZ = r.Z
}

// Move updates spin from the horizontal drag and returns the new tilt for
// the vertical drag. A full view width is one turn; a full view height is
// the whole tilt range.
func (r *Rotation) Move(x, y, viewW, viewH float64) float64 {
	if viewW <= 0 {
		viewW = 1
	}
	if viewH <= 0 {
		viewH = 1
	}
	dz := (x - r.startX) / viewW * config.DragSpinRange
	dx := (y - r.startY) / viewH * config.DragTiltRange
	r.Z = r.startRZ + dz
	return config.RotationXRange.Clamp(r.startRX + dx)
}

func (r *Rotation) End() {
	r.dragging = false
}

func (r *Rotation) Dragging() bool {
	return r.dragging
}

// Spin advances the automatic rotation by speed degrees unless a drag is in
// progress.
func (r *Rotation) Spin(speed float64) {
	if r.dragging {
		return
	}
	r.Z = math.Mod(r.Z-speed, 360)
}
