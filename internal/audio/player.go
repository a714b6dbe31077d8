// Package audio plays an optional music track and turns its loudness into a
// pulse factor for the tree's glow.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/iburimskiy/light-tree/internal/config"
	"go.uber.org/zap"
)

var ErrUnsupported = errors.New("audio: unsupported file type")

// Player loops one track. A nil *Player is a silent player whose pulse is 1.
type Player struct {
	log *zap.Logger

	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *visualTap

	level  float64
	paused bool
}

func NewPlayer(log *zap.Logger) *Player {
	return &Player{log: log}
}

func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// Open decodes path and starts playing it on loop.
func (p *Player) Open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open music: %w", err)
	}
	streamer, format, err := decode(f, path)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode music: %w", err)
	}

	// streamer -> loop -> tap -> ctrl
	t := newVisualTap(beep.Loop(-1, streamer), config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return fmt.Errorf("init speaker: %w", err)
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = t
	p.paused = false
	speaker.Play(ctrl)

	p.log.Info("music playing",
		zap.String("path", path),
		zap.Int("sample_rate", int(format.SampleRate)),
		zap.Duration("length", format.SampleRate.D(streamer.Len())),
	)
	return nil
}

func (p *Player) TogglePause() {
	if p == nil || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
	p.log.Debug("music paused", zap.Bool("paused", p.paused))
}

func (p *Player) Paused() bool {
	return p != nil && p.paused
}

// Update samples the tap once per tick.
func (p *Player) Update() {
	if p == nil || p.tap == nil {
		return
	}
	var samples [][2]float64
	if !p.paused {
		samples = p.tap.snapshot(config.SampleWindow)
	}
	p.level = smoothLevel(p.level, samples, config.SmoothingFactor)
}

// Pulse scales the glow band; 1 means no change.
func (p *Player) Pulse() float64 {
	if p == nil {
		return 1
	}
	return 1 + p.level*config.PulseGain
}

func (p *Player) Close() error {
	if p == nil || p.ctrl == nil {
		return nil
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()

	var errs []error
	if p.streamer != nil {
		errs = append(errs, p.streamer.Close())
		p.streamer = nil
	}
	if p.file != nil {
		errs = append(errs, p.file.Close())
		p.file = nil
	}
	p.ctrl = nil
	p.tap = nil
	return errors.Join(errs...)
}
