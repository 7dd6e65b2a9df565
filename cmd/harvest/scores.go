package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/farmtofeast/harvest-hustle/internal/highscore"
	"github.com/farmtofeast/harvest-hustle/internal/platform/tui"
	"github.com/farmtofeast/harvest-hustle/internal/storage"
)

var flagScoresUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and run history",
	Long: `Display the device leaderboard (the three initials slots) and the
recorded run history.

Examples:
  harvest scores
  harvest scores --ui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresUI, "ui", false, "Open the interactive run history browser")
}

func runScores(cmd *cobra.Command, args []string) {
	// Load the leaderboard
	board := highscore.Default()
	if medium, err := highscore.NewFileMedium(flagSavePath); err == nil {
		board = highscore.NewStore(medium).Load()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if flagScoresUI {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, uiErr := tui.RunScoreboard(store, board, width, height); uiErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", uiErr)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Device Best:")
	for i, e := range board {
		fmt.Printf("  %d. %s %4d\n", i+1, e.Initials, e.Score)
	}
	fmt.Println()

	if store == nil {
		return
	}

	runs, err := store.TopRuns("", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'harvest play' to make history!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-10s  %-7s  %-9s  %s\n", "Rank", "Score", "Difficulty", "Levels", "Outcome", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-7s  %-9s  %s\n", "----", "-----", "----------", "------", "-------", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-10s  %-7d  %-9s  %s\n", i+1, r.Score, r.Difficulty, r.LevelsCleared, r.Outcome, dateStr)
	}

	fmt.Println()
	if best, bestErr := store.BestScore(""); bestErr == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
