// Package game runs the light tree window: it lays out and draws the chains
// every frame, spins the tree, and routes keyboard, mouse and touch input to
// the rotation controller and the parameter panel.
package game

import (
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/iburimskiy/light-tree/internal/audio"
	"github.com/iburimskiy/light-tree/internal/config"
	"github.com/iburimskiy/light-tree/internal/tree"
	"go.uber.org/zap"
)

type Options struct {
	Preset  *config.Preset // defaults when nil
	Music   *audio.Player  // optional
	Dialogs Dialogs        // NativeDialogs when nil
	Logger  *zap.Logger    // no-op when nil
	Seed    int64
}

type Game struct {
	log      *zap.Logger
	preset   *config.Preset
	rot      Rotation
	panel    *Panel
	music    *audio.Player
	renderer *Renderer
	bulbs    []tree.Bulb

	width, height int

	pointer ebiten.TouchID
	touches []ebiten.TouchID

	lastErr error
}

func New(opts Options) *Game {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	preset := opts.Preset
	if preset == nil {
		preset = config.DefaultPreset()
	}
	dialogs := opts.Dialogs
	if dialogs == nil {
		dialogs = NativeDialogs{}
	}
	return &Game{
		log:      log,
		preset:   preset,
		panel:    NewPanel(preset, dialogs, rand.New(rand.NewSource(opts.Seed)), log),
		music:    opts.Music,
		renderer: NewRenderer(),
		width:    config.WindowWidth,
		height:   config.WindowHeight,
	}
}

func (g *Game) Update() error {
	if err := g.handleKeys(); err != nil {
		return err
	}
	g.handlePointer()
	g.tick()
	return nil
}

// tick advances everything that moves on its own.
func (g *Game) tick() {
	if g.preset.Settings.AutoSpin {
		g.rot.Spin(g.preset.Settings.SpinSpeed)
	}
	g.music.Update()
}

// View is the layout input for the current frame.
func (g *Game) View() tree.View {
	s := g.preset.Settings
	return tree.View{
		Scene:     tree.NewScene(float64(g.width), float64(g.height), s.RotationX),
		RotationZ: g.rot.Z,
		Shape:     s.TreeShape,
		GlowScale: g.music.Pulse(),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.bulbs = tree.LayoutAll(g.bulbs, g.preset.Chains, g.View())
	g.renderer.Draw(screen, g.preset.Settings.Background.NRGBA(), g.bulbs)
	g.panel.Draw(screen)
	ebitenutil.DebugPrintAt(screen, g.status(), config.PanelX+4, 6)
}

func (g *Game) status() string {
	status := fmt.Sprintf("%d chains, %d bulbs, tilt %.0f", len(g.preset.Chains), len(g.bulbs), g.preset.Settings.RotationX)
	if !g.preset.Settings.AutoSpin {
		status += " | spin paused (P)"
	}
	if g.music.Paused() {
		status += " | music paused (Space)"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

// report surfaces a non-fatal error in the status line.
func (g *Game) report(err error) {
	if err == nil {
		return
	}
	g.lastErr = err
	g.log.Warn("panel action failed", zap.Error(err))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
