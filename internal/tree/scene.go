// Package tree holds the screen-space layout of a light tree: the scene
// geometry for a canvas size and tilt, and the position, size and color of
// every bulb along each chain's spiral.
package tree

import "math"

type Point struct {
	X, Y float64
}

// Scene is the per-frame geometry shared by all chains.
type Scene struct {
	Width, Height float64
	RotationX     float64 // tilt in degrees
	TiltAngle     float64 // tilt in radians
	TreeHeight    float64
	BaseRadius    float64
	BaseCenter    Point
}

func NewScene(width, height, rotationX float64) Scene {
	tilt := rotationX / 180 * math.Pi
	treeHeight := math.Min(width, height) * 0.8
	baseRadius := treeHeight * 0.3
	return Scene{
		Width:      width,
		Height:     height,
		RotationX:  rotationX,
		TiltAngle:  tilt,
		TreeHeight: treeHeight,
		BaseRadius: baseRadius,
		BaseCenter: Point{
			X: width / 2,
			Y: height/2 + (treeHeight/2)*math.Cos(tilt) - (baseRadius/2)*math.Sin(tilt),
		},
	}
}
