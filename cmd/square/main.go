// square is a terminal remake of a tiny Miyoo handheld game: steer a square
// around a field, collect pickups, juggle its menus.
//
// Usage:
//
//	square run               - Play in the current terminal
//	square serve             - Start SSH server for remote play
//	square scores            - Show the high score table
//	square states            - Print the engine state tree
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--db <path>      - Override database path
//	--config <path>  - Path to a config YAML
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
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "square",
	Short: "Square - a tiny handheld game in your terminal",
	Long: `Square is a terminal remake of a small handheld game: steer a square
around a walled field and collect pickups.

Available commands:
  run      - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the high score table
  states   - Print the engine state tree

Examples:
  square run
  square run --seed 42
  square serve --ssh :2222
  square scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statesCmd)
}
