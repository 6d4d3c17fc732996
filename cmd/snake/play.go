package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play snake",
	Long: `Start a game. Without a variant, a picker lets you choose one and
brings you back after you quit a game.

Controls:
  Arrows/WASD/HJKL  - Steer (reversing is ignored)
  Mouse drag        - Steer in the drag direction
  Enter/Space       - Continue after game over
  Ctrl+S            - Save a snapshot of the board (~/.snake/snapshots)
  ?                 - Toggle help
  Q/Esc/Ctrl+C      - Quit

Examples:
  snake play
  snake play snake_walls
  snake play --difficulty hard --seed 7
  snake play --config ./my-snake.toml --log-file snake.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	if len(args) == 1 {
		v, err := variantArg(args)
		if err == nil {
			err = playVariant(cmd, v, store, logger)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for {
		width, height := terminalSize()
		result, err := tui.RunMenu(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		switch {
		case result.Quit:
			return
		case result.WantsScoreboard:
			err = tui.RunScoreboard(store, "", width, height)
		default:
			var v registry.Variant
			v, err = registry.Lookup(result.VariantID)
			if err == nil {
				err = playVariant(cmd, v, store, logger)
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func playVariant(cmd *cobra.Command, v registry.Variant, store *storage.Store, logger *log.Logger) error {
	cfg, err := buildConfig(cmd, v)
	if err != nil {
		return err
	}
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	logger.Info("game started", "variant", v.ID, "border", cfg.Rules.Border, "strict_food", cfg.Rules.StrictFood)

	return tui.Run(tui.Session{
		Engine:  engine,
		Variant: v,
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed},
		Store:   store,
		Logger:  logger,
		SaveDir: snapshotDir(),
	})
}

func terminalSize() (int, int) {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg.ScreenW, cfg.ScreenH
}

func snapshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "snapshots")
}
