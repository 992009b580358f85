package core

// Action is a semantic game action, abstracted from physical key presses.
// Games work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - paddle/menu up, snake direction
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFlap           // Space - flap (flyer), spin (spinner)
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - back to menu
	ActionRestart        // R - reset after the run ends
	ActionQuit           // Q, Ctrl+C - exit session
	ActionPause          // P - pause/resume toggle (handled by the host shell)

	// ActionSlot1..ActionSlot9 select a pad, cup, or grid cell by number.
	// Memory uses 1-4, shells 1-3, tapfrenzy the full 3x3 grid.
	ActionSlot1
	ActionSlot2
	ActionSlot3
	ActionSlot4
	ActionSlot5
	ActionSlot6
	ActionSlot7
	ActionSlot8
	ActionSlot9
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFlap:
		return "Flap"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	}
	if a >= ActionSlot1 && a <= ActionSlot9 {
		return "Slot" + string(rune('1'+int(a-ActionSlot1)))
	}
	return "Unknown"
}

// Slot returns the 0-based slot index for ActionSlot1..ActionSlot9, or -1.
func (a Action) Slot() int {
	if a < ActionSlot1 || a > ActionSlot9 {
		return -1
	}
	return int(a - ActionSlot1)
}

// SlotAction returns the action selecting the 0-based slot index.
func SlotAction(slot int) Action {
	if slot < 0 || slot > 8 {
		return ActionNone
	}
	return ActionSlot1 + Action(slot)
}

// InputFrame is the input state for one simulation tick: every action that was
// triggered since the previous tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Slot returns the first triggered slot index this frame, or -1.
func (f InputFrame) Slot() int {
	for a := ActionSlot1; a <= ActionSlot9; a++ {
		if f.Has(a) {
			return a.Slot()
		}
	}
	return -1
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
