package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/core"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/leaderboard"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/registry"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/storage"
)

// submitState tracks the leaderboard flow after a run ends.
type submitState int

const (
	submitNone    submitState = iota // Overlay closed
	submitEntering                   // Name input visible
	submitPending                    // POST in flight
	submitDone                       // Acknowledged, rank known
	submitFailed                     // Error shown, retry offered
)

// submitResultMsg carries the outcome of a leaderboard POST back to Update.
type submitResultMsg struct {
	resp *leaderboard.SubmitResponse
	err  error
}

// Model is the Bubble Tea model for running arcade games. It owns the tick
// loop, the frame clock, and the game's lifecycle handle; games themselves
// never see Bubble Tea.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	lb     *leaderboard.Client
	keymap *KeyMapper
	clock  *core.Clock

	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int
	quitting   bool
	backToMenu bool
	scoreSaved bool // Local save done for the current game over

	submit     submitState
	nameInput  textinput.Model
	submitErr  string
	submitRank int
	pendingSub leaderboard.Submission // Kept for safe retry with the same ID
	hasPending bool
}

// NewModel creates a new Bubble Tea model for the given game.
// lb may be a disabled client; the submit overlay hides itself then.
func NewModel(game registry.Game, store *storage.Store, lb *leaderboard.Client, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.CharLimit = leaderboard.NameMaxLen
	ti.Width = leaderboard.NameMaxLen + 2

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		lb:         lb,
		keymap:     NewKeyMapper(),
		clock:      core.NewClock(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		nameInput:  ti,
	}
	if store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			m.best = high
		}
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.game.Start()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case submitResultMsg:
		return m.handleSubmitResult(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The name-entry overlay captures all keys while open.
	if m.submit == submitEntering {
		return m.handleNameEntry(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "b", "esc":
		// Back to menu, but only from a safe stop. The session model
		// intercepts the flag and swallows the quit.
		if m.gameState.Over() || m.game.Phase() == core.PhasePaused {
			m.backToMenu = true
			return m, tea.Quit
		}
	}

	// Pause is a host concern: the shell drives the lifecycle handle
	// directly and re-arms the clock so the stall never reaches the game.
	if msg.String() == "p" {
		switch m.game.Phase() {
		case core.PhaseRunning:
			m.game.Pause()
		case core.PhasePaused:
			m.game.Resume()
			m.clock.Rearm()
		}
		return m, nil
	}

	if m.gameState.Over() {
		switch msg.String() {
		case "s":
			if m.lb.Enabled() && m.submit == submitNone {
				m.submit = submitEntering
				m.nameInput.Focus()
				return m, textinput.Blink
			}
		case "r":
			if m.submit == submitFailed && m.hasPending {
				// Retry reuses the pending submission ID.
				m.submit = submitPending
				return m, m.resubmitCmd()
			}
			m.inputFrame.Set(core.ActionRestart)
			return m, nil
		}
	}

	m.keymap.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleNameEntry drives the submit overlay's text input.
func (m Model) handleNameEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.submit = submitNone
		m.nameInput.Blur()
		return m, nil
	case "enter":
		name := m.nameInput.Value()
		if err := leaderboard.ValidateName(name); err != nil {
			m.submitErr = err.Error()
			return m, nil
		}
		m.submitErr = ""
		m.submit = submitPending
		m.nameInput.Blur()
		cmd := m.submitCmd(name)
		return m, cmd
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// submitCmd builds a fresh submission and posts it off the UI loop.
func (m *Model) submitCmd(name string) tea.Cmd {
	m.pendingSub = leaderboard.NewSubmission(m.game.ID(), name, m.gameState.Score)
	m.hasPending = true
	return m.resubmitCmd()
}

// resubmitCmd retries the pending submission with its original ID.
func (m *Model) resubmitCmd() tea.Cmd {
	sub := m.pendingSub
	lb := m.lb
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		resp, err := lb.Resubmit(ctx, sub)
		return submitResultMsg{resp: resp, err: err}
	}
}

// handleSubmitResult records the POST outcome for the overlay.
func (m Model) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.submit = submitFailed
		m.submitErr = msg.err.Error()
		return m, nil
	}
	m.submit = submitDone
	m.submitRank = msg.resp.Rank
	m.hasPending = false
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Mid-run resizes restart the game with the new dimensions.
	if !m.gameState.Over() {
		m.game.Reset(m.config)
		m.game.Start()
		m.clock.Rearm()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.Over() {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.game.Start()
		m.clock.Rearm()
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.submit = submitNone
		m.submitErr = ""
		m.hasPending = false
		m.nameInput.SetValue("")
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	dt := m.clock.Tick(now)
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	// Save the score locally once per game over.
	if m.gameState.Over() && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), storage.LocalPlayer, m.gameState.Score)
		}
		if m.gameState.Score > m.best {
			m.best = m.gameState.Score
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.best > 0 {
		m.screen.DrawText(m.screen.Width()-16, 0, fmt.Sprintf("Best: %d", m.best))
	}

	if m.gameState.Over() {
		m.drawSubmitOverlay()
	}

	return RenderScreen(m.screen)
}

// drawSubmitOverlay renders the leaderboard flow over the game's own
// game-over box.
func (m Model) drawSubmitOverlay() {
	w := m.screen.Width()
	y := m.screen.Height() - 2

	switch m.submit {
	case submitNone:
		if m.lb.Enabled() {
			m.screen.DrawTextCentered(y, "S: submit score to the leaderboard")
		}
	case submitEntering:
		box := core.NewRect((w-40)/2, y-3, 40, 4)
		m.screen.DrawRect(box, ' ')
		m.screen.DrawBox(box)
		m.screen.DrawText(box.X+2, box.Y+1, "Name: "+m.nameInput.View())
		hint := "Enter: submit  Esc: cancel"
		if m.submitErr != "" {
			hint = m.submitErr
		}
		m.screen.DrawText(box.X+2, box.Y+2, hint)
	case submitPending:
		m.screen.DrawTextCentered(y, "Submitting...")
	case submitDone:
		if m.submitRank > 0 {
			m.screen.DrawTextCentered(y, fmt.Sprintf("On the board at #%d!", m.submitRank))
		} else {
			m.screen.DrawTextCentered(y, "Score submitted")
		}
	case submitFailed:
		m.screen.DrawTextCentered(y, "Submit failed: "+m.submitErr+"  (R: retry)")
	}
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, lb *leaderboard.Client, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, lb, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
