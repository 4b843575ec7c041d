// skydodge is a terminal avoidance game: steer left and right while blocks
// fall from a sky that slowly darkens into space.
//
// Usage:
//
//	skydodge play            - Play in this terminal
//	skydodge scores          - Show recorded runs and the best score
//	skydodge serve           - Start SSH server for remote play
//	skydodge simulate        - Run a game headless and print the result
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.skydodge/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skydodge",
	Short: "Sky Dodge - dodge falling blocks in your terminal",
	Long: `Sky Dodge is a single-screen avoidance game. Slide left and right to
dodge falling blocks. Every tick survived scores a point, blocks speed up
over time and the sky fades to a starfield as the score climbs.

Available commands:
  play      - Play in this terminal (default)
  scores    - View recorded runs
  serve     - Start SSH server for remote play
  simulate  - Run a headless game

Examples:
  skydodge
  skydodge play --difficulty hard
  skydodge scores
  skydodge serve --ssh :2222
  skydodge simulate --autopilot --seed 42`,
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skydodge/scores.db", "Path to scores database")

	addGameFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}
