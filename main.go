package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/light-tree/internal/audio"
	"github.com/iburimskiy/light-tree/internal/config"
	"github.com/iburimskiy/light-tree/internal/game"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger

	presetFile string
	musicFile  string
	width      int
	height     int
	seed       int64
	verbose    bool
	outFile    string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lighttree",
		Short: "animated, rotatable light tree",
		Long: `Draws a spinning tree of light chains.

Drag to tilt and spin the tree. Use the panel on the left to tune chains:
Up/Down select, Left/Right adjust (Shift x10), Tab next chain, A add,
Delete remove, Enter pick color, S save, L load, P pause spin, H hide panel.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runWindow,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVar(&presetFile, "preset", "", "preset file (yaml)")
	rootCmd.Flags().StringVar(&musicFile, "music", "", "music file to pulse the glow with (wav, mp3, flac)")
	rootCmd.Flags().IntVar(&width, "width", config.WindowWidth, "window width")
	rootCmd.Flags().IntVar(&height, "height", config.WindowHeight, "window height")
	rootCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "seed for added chains")

	presetCmd := &cobra.Command{
		Use:   "preset",
		Short: "print the default preset",
		Args:  cobra.NoArgs,
		RunE:  writePreset,
	}
	presetCmd.Flags().StringVarP(&outFile, "out", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(presetCmd)
	return rootCmd
}

func loadPreset() (*config.Preset, error) {
	if presetFile == "" {
		return config.DefaultPreset(), nil
	}
	p, err := config.Load(presetFile)
	if err != nil {
		return nil, err
	}
	logger.Info("preset loaded", zap.String("path", presetFile), zap.Int("chains", len(p.Chains)))
	return p, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	preset, err := loadPreset()
	if err != nil {
		return err
	}

	var music *audio.Player
	if musicFile != "" {
		music = audio.NewPlayer(logger)
		if err := music.Open(musicFile); err != nil {
			return err
		}
		defer func() {
			if err := music.Close(); err != nil {
				logger.Warn("closing music", zap.Error(err))
			}
		}()
	}

	g := game.New(game.Options{
		Preset: preset,
		Music:  music,
		Logger: logger,
		Seed:   seed,
	})

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Debug("starting", zap.Int("width", width), zap.Int("height", height), zap.Int64("seed", seed))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func writePreset(cmd *cobra.Command, args []string) error {
	p := config.DefaultPreset()
	if outFile != "" {
		if err := config.Save(outFile, p); err != nil {
			return err
		}
		logger.Info("preset written", zap.String("path", outFile))
		return nil
	}
	data, err := config.Marshal(p)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
