package game

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/light-tree/internal/config"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"
)

type rowKind int

const (
	rowHeader rowKind = iota
	rowNumber
	rowColor
	rowChoice
	rowToggle
	rowAction
)

type row struct {
	label string
	kind  rowKind

	// rowNumber
	rng    config.Range
	format string
	get    func() float64
	set    func(float64)

	color  *config.Color // rowColor
	choice *string       // rowChoice
	toggle *bool         // rowToggle
	run    func() error  // rowAction
}

func (r row) value() string {
	switch r.kind {
	case rowNumber:
		return fmt.Sprintf(r.format, r.get())
	case rowColor:
		return r.color.String()
	case rowChoice:
		return *r.choice
	case rowToggle:
		if *r.toggle {
			return "on"
		}
		return "off"
	}
	return ""
}

func (r row) adjustable() bool {
	return r.kind == rowNumber || r.kind == rowChoice
}

// Row is one line of the panel as drawn.
type Row struct {
	Label      string
	Value      string
	Header     bool
	Selected   bool
	Adjustable bool
	Swatch     color.Color // nil unless the row edits a color
}

// Panel edits the chains and settings of a preset in place: one folder for
// the selected chain and an options folder.
type Panel struct {
	Visible bool

	preset  *config.Preset
	dialogs Dialogs
	rng     *rand.Rand
	log     *zap.Logger

	chain  int
	cursor int
}

func NewPanel(preset *config.Preset, dialogs Dialogs, rng *rand.Rand, log *zap.Logger) *Panel {
	pn := &Panel{
		Visible: true,
		preset:  preset,
		dialogs: dialogs,
		rng:     rng,
		log:     log,
	}
	pn.cursor = pn.firstSelectable()
	return pn
}

func intRow(label string, rng config.Range, v *int) row {
	return row{
		label:  label,
		kind:   rowNumber,
		rng:    rng,
		format: "%.0f",
		get:    func() float64 { return float64(*v) },
		set:    func(f float64) { *v = int(math.Round(f)) },
	}
}

func floatRow(label string, rng config.Range, format string, v *float64) row {
	return row{
		label:  label,
		kind:   rowNumber,
		rng:    rng,
		format: format,
		get:    func() float64 { return *v },
		set:    func(f float64) { *v = math.Round(f/rng.Step) * rng.Step },
	}
}

func (pn *Panel) rows() []row {
	var rows []row
	if n := len(pn.preset.Chains); n > 0 {
		c := &pn.preset.Chains[pn.chain]
		rows = append(rows,
			row{label: fmt.Sprintf("Chain %d/%d", pn.chain+1, n), kind: rowHeader},
			intRow("bulbsCount", config.BulbsCountRange, &c.BulbsCount),
			intRow("bulbRadius", config.BulbRadiusRange, &c.BulbRadius),
			intRow("glowOffset", config.GlowOffsetRange, &c.GlowOffset),
			intRow("turnsCount", config.TurnsCountRange, &c.TurnsCount),
			intRow("startAngle", config.StartAngleRange, &c.StartAngle),
			row{label: "startColor", kind: rowColor, color: &c.StartColor},
			row{label: "endColor", kind: rowColor, color: &c.EndColor},
			floatRow("opacity", config.OpacityRange, "%.2f", &c.Opacity),
		)
	}
	s := &pn.preset.Settings
	rows = append(rows,
		row{label: "Options", kind: rowHeader},
		row{label: "background", kind: rowColor, color: &s.Background},
		row{label: "treeShape", kind: rowChoice, choice: &s.TreeShape},
		floatRow("spinSpeed", config.SpinSpeedRange, "%.1f", &s.SpinSpeed),
		row{label: "autoSpin", kind: rowToggle, toggle: &s.AutoSpin},
		row{label: "ADD CHAIN", kind: rowAction, run: func() error { pn.AddChain(); return nil }},
		row{label: "REMOVE CHAIN", kind: rowAction, run: func() error { pn.RemoveChain(); return nil }},
		row{label: "SAVE PRESET", kind: rowAction, run: pn.Save},
		row{label: "LOAD PRESET", kind: rowAction, run: pn.Load},
	)
	return rows
}

// Rows returns the panel lines in draw order.
func (pn *Panel) Rows() []Row {
	rows := pn.rows()
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = Row{
			Label:      r.label,
			Value:      r.value(),
			Header:     r.kind == rowHeader,
			Selected:   i == pn.cursor,
			Adjustable: r.adjustable(),
		}
		if r.kind == rowColor {
			out[i].Swatch = r.color.NRGBA()
		}
	}
	return out
}

func (pn *Panel) Chain() int  { return pn.chain }
func (pn *Panel) Cursor() int { return pn.cursor }

func (pn *Panel) firstSelectable() int {
	for i, r := range pn.rows() {
		if r.kind != rowHeader {
			return i
		}
	}
	return 0
}

// MoveCursor moves the selection by delta rows, skipping headers and
// wrapping around.
func (pn *Panel) MoveCursor(delta int) {
	rows := pn.rows()
	if delta == 0 || len(rows) == 0 {
		return
	}
	step := 1
	if delta < 0 {
		step, delta = -1, -delta
	}
	for ; delta > 0; delta-- {
		for {
			pn.cursor = (pn.cursor + step + len(rows)) % len(rows)
			if rows[pn.cursor].kind != rowHeader {
				break
			}
		}
	}
}

func (pn *Panel) fixCursor() {
	rows := pn.rows()
	if pn.cursor >= len(rows) {
		pn.cursor = len(rows) - 1
	}
	if pn.cursor < 0 || rows[pn.cursor].kind == rowHeader {
		pn.cursor = pn.firstSelectable()
	}
}

// Adjust moves the selected value by steps increments. Tree shapes cycle;
// other rows ignore it.
func (pn *Panel) Adjust(steps int) {
	r := pn.rows()[pn.cursor]
	switch r.kind {
	case rowNumber:
		r.set(r.rng.Clamp(r.get() + float64(steps)*r.rng.Step))
	case rowChoice:
		idx := 0
		for i, s := range config.Shapes {
			if s == *r.choice {
				idx = i
			}
		}
		n := len(config.Shapes)
		*r.choice = config.Shapes[((idx+steps)%n+n)%n]
	}
}

// Activate runs the selected action, flips a toggle or opens the color
// picker.
func (pn *Panel) Activate() error {
	r := pn.rows()[pn.cursor]
	switch r.kind {
	case rowColor:
		return pn.pickColor(r.label, r.color)
	case rowToggle:
		*r.toggle = !*r.toggle
	case rowAction:
		return r.run()
	}
	return nil
}

func (pn *Panel) pickColor(label string, c *config.Color) error {
	picked, err := pn.dialogs.PickColor(label, c.NRGBA())
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("pick %s: %w", label, err)
	}
	picked.A = 255
	*c = config.Color(picked)
	return nil
}

// NextChain selects another chain folder, wrapping around.
func (pn *Panel) NextChain(delta int) {
	n := len(pn.preset.Chains)
	if n == 0 {
		return
	}
	pn.chain = ((pn.chain+delta)%n + n) % n
}

// AddChain appends a random chain and selects it.
func (pn *Panel) AddChain() {
	pn.preset.Chains = append(pn.preset.Chains, config.RandomChain(pn.rng))
	pn.chain = len(pn.preset.Chains) - 1
	pn.fixCursor()
	pn.log.Debug("chain added", zap.Int("chains", len(pn.preset.Chains)))
}

// RemoveChain deletes the selected chain. The last chain can be removed too.
func (pn *Panel) RemoveChain() {
	n := len(pn.preset.Chains)
	if n == 0 {
		return
	}
	pn.preset.Chains = append(pn.preset.Chains[:pn.chain], pn.preset.Chains[pn.chain+1:]...)
	if pn.chain >= len(pn.preset.Chains) && pn.chain > 0 {
		pn.chain--
	}
	pn.fixCursor()
	pn.log.Debug("chain removed", zap.Int("chains", len(pn.preset.Chains)))
}

func (pn *Panel) Save() error {
	path, err := pn.dialogs.SaveFile("Save tree preset")
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := config.Save(path, pn.preset); err != nil {
		return err
	}
	pn.log.Info("preset saved", zap.String("path", path))
	return nil
}

func (pn *Panel) Load() error {
	path, err := pn.dialogs.OpenFile("Load tree preset")
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	if err != nil {
		return err
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	*pn.preset = *loaded
	pn.chain = 0
	pn.fixCursor()
	pn.log.Info("preset loaded", zap.String("path", path), zap.Int("chains", len(loaded.Chains)))
	return nil
}

// Height is the panel's pixel height.
func (pn *Panel) Height() int {
	return len(pn.rows())*config.PanelRowHeight + 2*config.PanelPadding
}

// Contains reports whether (x, y) falls on the visible panel.
func (pn *Panel) Contains(x, y int) bool {
	return pn.Visible &&
		x >= config.PanelX && x < config.PanelX+config.PanelWidth &&
		y >= config.PanelY && y < config.PanelY+pn.Height()
}

// rowAt returns the row index under y, or -1.
func (pn *Panel) rowAt(y int) int {
	i := (y - config.PanelY - config.PanelPadding) / config.PanelRowHeight
	if y < config.PanelY+config.PanelPadding || i >= len(pn.rows()) {
		return -1
	}
	return i
}

// Click selects the row under (x, y). The -/+ zones at the right edge
// adjust numbers and shapes; elsewhere a click activates the row.
func (pn *Panel) Click(x, y int) error {
	if !pn.Contains(x, y) {
		return nil
	}
	i := pn.rowAt(y)
	if i < 0 {
		return nil
	}
	r := pn.rows()[i]
	if r.kind == rowHeader {
		return nil
	}
	pn.cursor = i

	right := config.PanelX + config.PanelWidth - config.PanelPadding
	if r.adjustable() {
		switch {
		case x >= right-config.PanelHotZone:
			pn.Adjust(1)
		case x >= right-2*config.PanelHotZone:
			pn.Adjust(-1)
		}
		return nil
	}
	return pn.Activate()
}
