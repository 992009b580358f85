package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/core"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/games/flyer"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/games/memory"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/games/pong"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/games/shells"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/games/snake"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/games/spinner"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/games/tapfrenzy"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/platform/tui"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/registry"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows - Move
  Space       - Flap/Confirm
  1-9         - Pick a pad, cup, or grid cell
  P           - Pause
  R           - Restart (after game over)
  S           - Submit score to the leaderboard (after game over)
  Q/Ctrl+C    - Quit

Examples:
  arcade play flyer
  arcade play shells --seed 42
  arcade play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// applyConfigPath routes the --config flag to the selected game's loader.
func applyConfigPath(gameID, path string) {
	switch gameID {
	case "snake":
		snake.SetConfigPath(path)
	case "flyer":
		flyer.SetConfigPath(path)
	case "pong":
		pong.SetConfigPath(path)
	case "memory":
		memory.SetConfigPath(path)
	case "tapfrenzy":
		tapfrenzy.SetConfigPath(path)
	case "spinner":
		spinner.SetConfigPath(path)
	case "shells":
		shells.SetConfigPath(path)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path before creation
	applyConfigPath(gameID, flagConfig)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, leaderboardClient(), cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
