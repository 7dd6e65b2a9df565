package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/farmtofeast/harvest-hustle/internal/core"
	"github.com/farmtofeast/harvest-hustle/internal/game"
	"github.com/farmtofeast/harvest-hustle/internal/highscore"
	"github.com/farmtofeast/harvest-hustle/internal/level"
	"github.com/farmtofeast/harvest-hustle/internal/platform/tui"
	"github.com/farmtofeast/harvest-hustle/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Harvest Hustle",
	Long: `Start the game.

Controls:
  Left/Right or A/D   - Tilt left/right
  Up/Down or W/S      - Tilt forward/back (top-down levels)
  Space               - Shake
  E or Tab            - Rotate the encoder
  Enter               - Press the button (tap repeatedly to hold)
  Q/Ctrl+C            - Quit

Examples:
  harvest play
  harvest play --seed 42
  harvest play --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// The playfield needs a minimum terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < tui.ViewW+2 || h < tui.ViewH+3 {
			fmt.Fprintf(os.Stderr, "Error: terminal too small (%dx%d), need at least %dx%d\n",
				w, h, tui.ViewW+2, tui.ViewH+3)
			os.Exit(1)
		}
	}

	catalog, err := level.Load(flagLevelsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open the leaderboard file
	var scores *highscore.Store
	if medium, medErr := highscore.NewFileMedium(flagSavePath); medErr == nil {
		scores = highscore.NewStore(medium)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: leaderboard disabled: %v\n", medErr)
	}

	// Open run history storage
	var recorder game.RunRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	} else {
		recorder = store
	}

	runErr := tui.Run(catalog, scores, recorder, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
