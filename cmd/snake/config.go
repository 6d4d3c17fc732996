package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagConfigFormat string

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use after applying the config
file, the variant, the difficulty preset and the rule flags. The output is a
valid config file.

Examples:
  snake config > ~/.snake/snake.yaml
  snake config snake_walls --difficulty hard --format toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) {
	v, err := variantArg(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := buildConfig(cmd, v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var data []byte
	switch flagConfigFormat {
	case "yaml", "yml":
		data, err = config.Encode(cfg)
	case "toml":
		data, err = config.EncodeTOML(cfg)
	default:
		err = fmt.Errorf("unknown format %q (want yaml or toml)", flagConfigFormat)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cmd.OutOrStdout().Write(data)
}
