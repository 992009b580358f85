package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/registry"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/storage"
)

var flagRemote bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.

By default shows scores from the local database. With --remote, fetches
the shared leaderboard instead (requires a configured leaderboard URL).

Examples:
  arcade scores flyer
  arcade scores snake --remote`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRemote, "remote", false, "Fetch the shared leaderboard instead of local scores")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	if flagRemote {
		runRemoteScores(gameID, title)
		return
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-18s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-18s  %-10s  %s\n", "----", "------", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-18s  %-10d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

// runRemoteScores prints the shared leaderboard's top table.
func runRemoteScores(gameID, title string) {
	lb := leaderboardClient()
	if !lb.Enabled() {
		fmt.Fprintln(os.Stderr, "Error: no leaderboard configured")
		fmt.Fprintln(os.Stderr, "Set --leaderboard-url or WINGSHACK_LEADERBOARD_URL.")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	top, err := lb.Top(ctx, gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching leaderboard: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Leaderboard - %s\n", title)
	fmt.Println()

	if len(top.Entries) == 0 {
		fmt.Println("No scores on the board yet.")
		return
	}

	fmt.Printf("  %-4s  %-18s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-18s  %-10s  %s\n", "----", "------", "-----", "----")

	for _, e := range top.Entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-18s  %-10d  %s\n", e.Rank, e.Player, e.Score, dateStr)
	}
}
