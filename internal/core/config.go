package core

// RuntimeConfig is passed to games at initialization. Games use it to adapt to
// screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Animation callbacks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform substitutes current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is returned by Game.State() to communicate status to the platform.
// Score is monotonically non-decreasing within a session except where a game
// documents penalties, and is never negative.
type GameState struct {
	Phase Phase
	Score int
}

// Over reports whether the run reached its terminal condition.
func (s GameState) Over() bool {
	return s.Phase == PhaseEnded
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
