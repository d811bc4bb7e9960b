// gridhall is a terminal arcade bundling 2048, Snake and Minesweeper.
//
// Usage:
//
//	gridhall list              - List available games
//	gridhall play <game>       - Play a game
//	gridhall menu              - Start menu to pick games interactively
//	gridhall serve             - Start SSH server for remote play
//	gridhall scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.gridhall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/gridhall/gridhall/internal/games/mines"
	_ "github.com/gridhall/gridhall/internal/games/snake"
	_ "github.com/gridhall/gridhall/internal/games/x2048"
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
	Use:   "gridhall",
	Short: "GridHall - Play grid games in your terminal",
	Long: `GridHall is a terminal gaming platform bundling three classic
grid games: 2048, Snake and Minesweeper.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  gridhall list
  gridhall play 2048
  gridhall menu
  gridhall serve --ssh :2222
  gridhall scores snake`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridhall/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
