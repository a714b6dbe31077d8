package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/light-tree/internal/config"
)

var (
	panelBg       = color.RGBA{R: 10, G: 12, B: 18, A: 210}
	panelBorder   = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	panelSelected = color.RGBA{R: 60, G: 80, B: 120, A: 200}
	panelHeader   = color.RGBA{R: 35, G: 40, B: 55, A: 230}
	panelButton   = color.RGBA{R: 100, G: 120, B: 160, A: 255}
)

const valueColumn = 104

// Draw paints the panel in the top-left corner.
func (pn *Panel) Draw(screen *ebiten.Image) {
	if !pn.Visible {
		return
	}
	x := float32(config.PanelX)
	y := float32(config.PanelY)
	w := float32(config.PanelWidth)
	h := float32(pn.Height())
	vector.DrawFilledRect(screen, x, y, w, h, panelBg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, panelBorder, false)

	right := config.PanelX + config.PanelWidth - config.PanelPadding
	for i, r := range pn.Rows() {
		ry := config.PanelY + config.PanelPadding + i*config.PanelRowHeight
		switch {
		case r.Header:
			vector.DrawFilledRect(screen, x+1, float32(ry), w-2, config.PanelRowHeight, panelHeader, false)
		case r.Selected:
			vector.DrawFilledRect(screen, x+1, float32(ry), w-2, config.PanelRowHeight, panelSelected, false)
		}
		ebitenutil.DebugPrintAt(screen, r.Label, config.PanelX+config.PanelPadding, ry)

		vx := config.PanelX + valueColumn
		if r.Swatch != nil {
			vector.DrawFilledRect(screen, float32(vx), float32(ry+3), 10, 10, r.Swatch, false)
			vector.StrokeRect(screen, float32(vx), float32(ry+3), 10, 10, 1, panelBorder, false)
			vx += 14
		}
		ebitenutil.DebugPrintAt(screen, r.Value, vx, ry)

		if r.Adjustable {
			for j, label := range []string{"-", "+"} {
				bx := right - (2-j)*config.PanelHotZone
				vector.StrokeRect(screen, float32(bx+1), float32(ry+1), config.PanelHotZone-2, config.PanelRowHeight-2, 1, panelButton, false)
				ebitenutil.DebugPrintAt(screen, label, bx+6, ry)
			}
		}
	}
}
