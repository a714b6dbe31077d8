package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mousePointer stands in for the mouse among touch IDs.
const mousePointer ebiten.TouchID = -1

func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

func (g *Game) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.panel.Visible = !g.panel.Visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.preset.Settings.AutoSpin = !g.preset.Settings.AutoSpin
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.music.TogglePause()
	}
	if !g.panel.Visible {
		return nil
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	step := 1
	if shift {
		step = 10
	}
	switch {
	case repeatingKeyPressed(ebiten.KeyUp):
		g.panel.MoveCursor(-1)
	case repeatingKeyPressed(ebiten.KeyDown):
		g.panel.MoveCursor(1)
	case repeatingKeyPressed(ebiten.KeyLeft):
		g.panel.Adjust(-step)
	case repeatingKeyPressed(ebiten.KeyRight):
		g.panel.Adjust(step)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if shift {
			g.panel.NextChain(-1)
		} else {
			g.panel.NextChain(1)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.panel.AddChain()
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete), inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.panel.RemoveChain()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.report(g.panel.Activate())
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.report(g.panel.Save())
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.report(g.panel.Load())
	}
	return nil
}

// handlePointer feeds mouse and touch drags into the rotation controller.
// Only the pointer that started a drag can move or end it.
func (g *Game) handlePointer() {
	if g.rot.Dragging() && !ebiten.IsFocused() {
		g.rot.End()
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.pointerDown(x, y, mousePointer)
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.pointerDown(x, y, id)
	}

	if !g.rot.Dragging() {
		return
	}
	if g.pointer == mousePointer {
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			g.rot.End()
			return
		}
		x, y := ebiten.CursorPosition()
		g.dragTo(x, y)
		return
	}
	if inpututil.IsTouchJustReleased(g.pointer) {
		g.rot.End()
		return
	}
	x, y := ebiten.TouchPosition(g.pointer)
	g.dragTo(x, y)
}

// pointerDown routes a press to the panel or starts a rotation drag.
func (g *Game) pointerDown(x, y int, id ebiten.TouchID) {
	if g.rot.Dragging() {
		return
	}
	if g.panel.Contains(x, y) {
		g.report(g.panel.Click(x, y))
		return
	}
	g.pointer = id
	g.rot.Begin(float64(x), float64(y), g.preset.Settings.RotationX)
}

func (g *Game) dragTo(x, y int) {
	g.preset.Settings.RotationX = g.rot.Move(float64(x), float64(y), float64(g.width), float64(g.height))
}
