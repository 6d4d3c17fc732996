package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// newLogger builds the command logger. Interactive commands own the
// terminal, so they pass interactive=true and only log when --log-file is
// set. It returns a close function for the log file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}

// variantArg returns the variant named by the first argument, or the
// classic rules.
func variantArg(args []string) (registry.Variant, error) {
	id := snake.VariantClassic
	if len(args) > 0 {
		id = args[0]
	}
	v, err := registry.Lookup(id)
	if err != nil {
		return v, fmt.Errorf("%w (run 'snake list' to see variants)", err)
	}
	return v, nil
}

// buildConfig loads the configuration and layers the variant, the
// difficulty preset and the rule flags on top, in that order.
func buildConfig(cmd *cobra.Command, v registry.Variant) (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	cfg = v.Apply(cfg)

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyDifficultyPreset(&cfg, preset)

	if flagBorder != "" {
		cfg.Rules.Border = config.BorderMode(flagBorder)
	}
	if cmd.Flags().Changed("strict-food") {
		cfg.Rules.StrictFood = flagStrictFood
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newEngine creates an engine honoring --seed.
func newEngine(cfg config.SnakeConfig, opts ...snake.Option) (*snake.Engine, error) {
	if flagSeed != 0 {
		opts = append([]snake.Option{snake.WithSeed(flagSeed)}, opts...)
	}
	return snake.New(cfg, opts...)
}
