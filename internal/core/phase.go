package core

// Phase is the coarse lifecycle state of a single game instance.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// LifecycleHandle is the start/pause/resume contract every game exposes to its
// host shell. The host never touches game internals through it; it only toggles
// whether the clock drives the update step. Reset is a separate hook on the
// game itself because it reinitializes entity state.
type LifecycleHandle interface {
	Phase() Phase
	Start() bool
	Pause() bool
	Resume() bool
}

// Lifecycle implements the shared phase state machine. Games embed it and call
// End when a terminal condition is reached; the platform drives the rest.
//
// Legal transitions:
//
//	idle --start--> running --pause--> paused --resume--> running
//	running --(terminal)--> ended
//	ended --reset--> idle
//	paused --reset--> idle
type Lifecycle struct {
	phase Phase
}

// Phase returns the current lifecycle phase.
func (l *Lifecycle) Phase() Phase {
	return l.phase
}

// Start moves idle -> running. Returns false if the transition is illegal.
func (l *Lifecycle) Start() bool {
	if l.phase != PhaseIdle {
		return false
	}
	l.phase = PhaseRunning
	return true
}

// Pause moves running -> paused.
func (l *Lifecycle) Pause() bool {
	if l.phase != PhaseRunning {
		return false
	}
	l.phase = PhasePaused
	return true
}

// Resume moves paused -> running.
func (l *Lifecycle) Resume() bool {
	if l.phase != PhasePaused {
		return false
	}
	l.phase = PhaseRunning
	return true
}

// End moves running -> ended. Games call this when their terminal condition
// fires; it is not an error state.
func (l *Lifecycle) End() bool {
	if l.phase != PhaseRunning {
		return false
	}
	l.phase = PhaseEnded
	return true
}

// ResetPhase returns the lifecycle to idle. Called from each game's Reset hook,
// which also reinitializes entity state. Allowed from any phase so a fresh
// instance can be reset before its first start.
func (l *Lifecycle) ResetPhase() {
	l.phase = PhaseIdle
}

// Running reports whether the update step should advance this tick.
func (l *Lifecycle) Running() bool {
	return l.phase == PhaseRunning
}
