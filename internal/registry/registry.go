// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/core"
)

// Game is the interface every arcade game implements. Games contain pure
// simulation logic with no external dependencies (especially no Bubble Tea);
// the platform handles input mapping, timing, and terminal rendering.
//
// The embedded LifecycleHandle is the only way the host shell changes a
// game's phase: it is constructed with the game and passed down, never
// discovered through rendered output.
type Game interface {
	core.LifecycleHandle

	// ID returns a unique identifier (e.g. "snake", "flyer").
	// Used for CLI commands, score storage, and leaderboard rows.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset reinitializes entity state and returns the phase to idle.
	// Called once before the first Start and again on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick. dt is the clamped elapsed
	// time in seconds supplied by the platform clock; turn-based games may
	// ignore it. Step is a no-op unless the phase is running.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the current state into the screen buffer.
	// It never mutates simulation state.
	Render(dst *core.Screen)

	// State returns the current phase and score.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
