// snake is the classic snake game for the terminal, plus a headless
// simulator for replaying and checking games.
//
// Usage:
//
//	snake play [variant]    - Play (opens a variant picker without an argument)
//	snake list              - List rule variants
//	snake sim [variant]     - Run the engine headless from an input script
//	snake scores [variant]  - Show the score log
//	snake config [variant]  - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Config file (YAML or TOML)
//	--seed <value>        - RNG seed for food placement (0 = time based)
//	--db <path>           - Score log database (default: ~/.snake/scores.db)
//	--difficulty <name>   - easy, normal, hard or fixed
//	--border <mode>       - wrap or terminate, overrides the variant
//	--strict-food         - Never spawn food on the snake
//	--log-file <path>     - Write logs to a file while playing
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the engine to register its variants
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagConfig     string
	flagSeed       int64
	flagDBPath     string
	flagDifficulty string
	flagBorder     string
	flagStrictFood bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake steers a growing line of cells around a square board.
Eating food makes it longer and faster; running into itself ends the game.

Available commands:
  play     - Play a variant (picker when omitted)
  list     - Show all rule variants
  sim      - Run the engine headless from an input script
  scores   - View the score log
  config   - Print the effective configuration

Examples:
  snake play
  snake play snake_walls --difficulty hard
  snake sim --ticks 200 --input "5:up,9:left" --seed 42
  snake scores snake_strict`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to a config file (.yaml or .toml)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed for food placement (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to the score log database")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagBorder, "border", "", "Border policy: wrap or terminate (overrides the variant)")
	pf.BoolVar(&flagStrictFood, "strict-food", false, "Never spawn food on the snake (overrides the variant)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
