package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresPlain bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the score log",
	Long: `Display the best finished games for a variant.

On a terminal this opens an interactive table; use --plain (or pipe the
output) for text.

Examples:
  snake scores
  snake scores snake_walls --plain --limit 5
  snake scores snake_strict --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a text table instead of the interactive view")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to print")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	v, err := variantArg(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(v.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", v.ID)
		return
	}

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		if err := tui.RunScoreboard(store, v.ID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(cmd.OutOrStdout(), store, v, flagScoresLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(w io.Writer, store *storage.Store, v registry.Variant, limit int) error {
	scores, err := store.TopScores(v.ID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", v.Title)
	if len(scores) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintf(w, "\nPlay 'snake play %s' to set the first score!\n", v.ID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-15s  %-6s  %s\n", "Rank", "Length", "Ended by", "Ticks", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-15s  %-6s  %s\n", "----", "------", "--------", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-6d  %-15s  %-6d  %s\n",
			i+1, e.Score, strings.ReplaceAll(e.Reason, "_", " "), e.Ticks, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(v.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nBest: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}
