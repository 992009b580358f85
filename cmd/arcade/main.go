// arcade is the Wing Shack terminal arcade: seven mini-games, local high
// scores, and an optional shared leaderboard.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade api               - Start the leaderboard HTTP service
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.wingshack/scores.db)
//	--leaderboard-url    - Leaderboard service URL (or WINGSHACK_LEADERBOARD_URL)
//	--leaderboard-key    - Leaderboard API key (or WINGSHACK_LEADERBOARD_KEY)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/leaderboard"

	// Import games to register them
	_ "github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/games/flyer"
	_ "github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/games/memory"
	_ "github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/games/pong"
	_ "github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/games/shells"
	_ "github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/games/snake"
	_ "github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/games/spinner"
	_ "github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/games/tapfrenzy"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagLBURL  string
	flagLBKey  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Wing Shack Arcade - Play mini-games in your terminal",
	Long: `Wing Shack Arcade is a terminal gaming platform with seven quick
mini-games, local high scores, and an optional shared leaderboard.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  api      - Start the leaderboard HTTP service
  scores   - View high scores

Examples:
  arcade list
  arcade play flyer
  arcade menu
  arcade serve --ssh :2222
  arcade scores snake`,
}

// leaderboardClient builds the shared client from flags, falling back to
// environment variables so the TUI works out of the box on kiosk installs.
func leaderboardClient() *leaderboard.Client {
	url := flagLBURL
	if url == "" {
		url = os.Getenv("WINGSHACK_LEADERBOARD_URL")
	}
	key := flagLBKey
	if key == "" {
		key = os.Getenv("WINGSHACK_LEADERBOARD_KEY")
	}
	return leaderboard.NewClient(url, key)
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wingshack/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLBURL, "leaderboard-url", "", "Leaderboard service URL (empty = disabled)")
	rootCmd.PersistentFlags().StringVar(&flagLBKey, "leaderboard-key", "", "Leaderboard API key")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(scoresCmd)
}
