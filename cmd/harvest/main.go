// harvest is a terminal rendition of the Harvest Hustle handheld: collect
// ingredients by tilting, shaking, and rotating, cook the dish, and chase
// the three-slot leaderboard.
//
// Usage:
//
//	harvest play             - Play the game
//	harvest levels           - List the level catalog
//	harvest scores           - Show the leaderboard and run history
//	harvest serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--save <path>    - Leaderboard file (default: ~/.harvest/nvm.bin)
//	--db <path>      - Run history database (default: ~/.harvest/history.db)
//	--levels <path>  - Custom level catalog YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagSavePath   string
	flagDBPath     string
	flagLevelsPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Harvest Hustle - From farm to feast in your terminal",
	Long: `Harvest Hustle is a farm-to-table arcade game. Each level asks for a
set of ingredients, each collected with its own gesture: tilt under falling
eggs, shake fruit out of trees, dwell next to animals, or crank the encoder
to dig up root vegetables. Clear every level without running out the clock.

Available commands:
  play     - Play the game
  levels   - List the level catalog
  scores   - View the leaderboard and run history
  serve    - Start SSH server for remote play

Examples:
  harvest play
  harvest play --seed 42
  harvest levels
  harvest scores --ui
  harvest serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "~/.harvest/nvm.bin", "Path to leaderboard file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.harvest/history.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsPath, "levels", "", "Path to custom level catalog YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
