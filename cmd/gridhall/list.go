package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gridhall/gridhall/internal/registry"
	"github.com/gridhall/gridhall/internal/storage"
)

var flagListScores bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered in the arcade, optionally with high scores.`,
	Run:   runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListScores, "scores", false, "Include each game's high score")
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	var store *storage.Store
	if flagListScores {
		s, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	if store != nil {
		fmt.Fprintln(w, "ID\tTitle\tBest")
		for _, g := range games {
			high, err := store.HighScore(g.ID)
			if err != nil {
				high = 0
			}
			fmt.Fprintf(w, "%s\t%s\t%d\n", g.ID, g.Title, high)
		}
	} else {
		fmt.Fprintln(w, "ID\tTitle")
		for _, g := range games {
			fmt.Fprintf(w, "%s\t%s\n", g.ID, g.Title)
		}
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Run 'gridhall play <id>' to play a game.")
}
