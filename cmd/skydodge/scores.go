package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skydodge/internal/config"
	"github.com/vovakirdan/skydodge/internal/games/skydodge"
	"github.com/vovakirdan/skydodge/internal/platform/tui"
	"github.com/vovakirdan/skydodge/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs and the best score",
	Long: `Display the top runs recorded in the scores database.

Examples:
  skydodge scores
  skydodge scores --limit 25
  skydodge scores -i
  skydodge scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history (the best score is kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	bestKey := config.DefaultConfig().Storage.BestScoreKey

	if flagClear {
		if err := store.ClearScores(skydodge.GameID); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, bestKey, width, height)
	}

	scores, err := store.TopScores(skydodge.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	fmt.Println(title.Render("High Scores - " + skydodge.GameTitle))
	fmt.Println()

	best, err := store.GetInt(bestKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		best = 0
	case err != nil:
		return fmt.Errorf("error reading best score: %w", err)
	}

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skydodge play' to set the first high score!")
		return nil
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 12},
			{Title: "When", Width: 16},
		}),
		table.WithRows(tui.ScoreRows(scores)),
		table.WithHeight(len(scores)+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	fmt.Println(t.View())

	fmt.Println()
	fmt.Printf("Best: %s\n", humanize.Comma(int64(best)))
	// The best score survives --clear, so the listed runs may top out lower.
	if high, err := store.HighScore(skydodge.GameID); err == nil && high != best {
		fmt.Printf("Best listed run: %s\n", humanize.Comma(int64(high)))
	}
	if stats, err := store.GetGameStats(skydodge.GameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Runs: %s, average %s, last played %s\n",
			humanize.Comma(int64(stats.GamesCount)),
			humanize.CommafWithDigits(stats.AvgScore, 1),
			humanize.Time(stats.LastPlayed),
		)
	}
	return nil
}
