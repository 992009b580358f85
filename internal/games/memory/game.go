// Package memory implements a watch-and-repeat sequence game. Each round the
// machine flashes one more pad, then the player replays the whole sequence.
//
// Playback runs through named stages with explicit durations instead of
// chained timers, so pausing mid-flash resumes exactly where it stopped.
package memory

import (
	"fmt"
	"math/rand"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/config"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/core"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/registry"
)

// stage is the in-round state while the game is running.
type stage int

const (
	stageLeadIn stage = iota // Pause before playback, shows the round banner
	stageFlash               // One pad is lit
	stageGap                 // Dark gap between flashes
	stageAwait               // Player's turn to repeat
	stageFeedback            // Brief confirmation after a completed round
)

func (s stage) String() string {
	switch s {
	case stageLeadIn:
		return "lead-in"
	case stageFlash:
		return "flash"
	case stageGap:
		return "gap"
	case stageAwait:
		return "await"
	case stageFeedback:
		return "feedback"
	default:
		return "unknown"
	}
}

const feedbackDuration = 0.6

var padColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightBlue,
}

var configPath string

// SetConfigPath sets a custom tuning file used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the memory simulation.
type Game struct {
	core.Lifecycle

	cfg  core.RuntimeConfig
	tune config.MemoryConfig
	rng  *rand.Rand

	sequence []int // Pad indices, grows by one each round
	round    int   // Completed rounds; doubles as the score

	stage      stage
	stageTimer float64 // Counts down the current stage
	playIdx    int     // Next sequence element to flash
	inputIdx   int     // Next sequence element the player must match

	lastPressed int // Pad lit by the player's own press, -1 when none
}

// New creates a memory game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("memory", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "memory"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Wing It Back"
}

// Reset reinitializes the game and returns the phase to idle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ResetPhase()

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	tune, err := config.LoadMemory(configPath)
	if err != nil {
		tune = config.DefaultMemoryConfig()
	}
	if tune.Pads < 2 {
		tune.Pads = 2
	}
	if tune.Pads > 4 {
		tune.Pads = 4
	}
	g.tune = tune

	g.sequence = g.sequence[:0]
	g.round = 0
	g.lastPressed = -1

	g.beginRound()
}

// beginRound extends the sequence by one pad and arms playback.
func (g *Game) beginRound() {
	g.sequence = append(g.sequence, g.rng.Intn(g.tune.Pads))
	g.playIdx = 0
	g.inputIdx = 0
	g.stage = stageLeadIn
	g.stageTimer = g.tune.LeadIn
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if !g.Running() {
		return core.StepResult{State: g.State()}
	}

	switch g.stage {
	case stageLeadIn, stageFlash, stageGap, stageFeedback:
		g.advanceStage(dt)
	case stageAwait:
		g.handleInput(in)
	}

	return core.StepResult{State: g.State()}
}

// advanceStage burns down the current timed stage and moves to the next one.
func (g *Game) advanceStage(dt float64) {
	g.stageTimer -= dt
	if g.stageTimer > 0 {
		return
	}

	switch g.stage {
	case stageLeadIn:
		g.stage = stageFlash
		g.stageTimer = g.tune.FlashDuration
	case stageFlash:
		g.playIdx++
		if g.playIdx >= len(g.sequence) {
			g.stage = stageAwait
			g.lastPressed = -1
		} else {
			g.stage = stageGap
			g.stageTimer = g.tune.GapDuration
		}
	case stageGap:
		g.stage = stageFlash
		g.stageTimer = g.tune.FlashDuration
	case stageFeedback:
		g.beginRound()
	}
}

// handleInput checks one pad press against the expected sequence element.
// Any mismatch ends the run; a full match scores a round.
func (g *Game) handleInput(in core.InputFrame) {
	slot := in.Slot()
	if slot < 0 || slot >= g.tune.Pads {
		return
	}

	g.lastPressed = slot

	if slot != g.sequence[g.inputIdx] {
		g.End()
		return
	}

	g.inputIdx++
	if g.inputIdx >= len(g.sequence) {
		g.round++
		g.stage = stageFeedback
		g.stageTimer = feedbackDuration
	}
}

// litPad returns the pad to highlight this frame, or -1.
func (g *Game) litPad() int {
	if g.stage == stageFlash && g.playIdx < len(g.sequence) {
		return g.sequence[g.playIdx]
	}
	if g.stage == stageAwait {
		return g.lastPressed
	}
	return -1
}

// Render draws the pad row and round banner.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Wing It Back  |  Round %d", g.round+1)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	padW, padH := 10, 5
	gap := 3
	totalW := g.tune.Pads*padW + (g.tune.Pads-1)*gap
	startX := (dst.Width() - totalW) / 2
	padY := (dst.Height() - padH) / 2

	lit := g.litPad()
	for i := 0; i < g.tune.Pads; i++ {
		x := startX + i*(padW+gap)
		rect := core.NewRect(x, padY, padW, padH)
		dst.DrawBox(rect)

		fill := ' '
		color := core.ColorDefault
		if i == lit {
			fill = '▓'
			color = padColors[i%len(padColors)]
		}
		for dy := 1; dy < padH-1; dy++ {
			for dx := 1; dx < padW-1; dx++ {
				dst.SetColored(x+dx, padY+dy, fill, color)
			}
		}
		dst.DrawText(x+padW/2, padY+padH, fmt.Sprintf("%d", i+1))
	}

	var status string
	switch g.stage {
	case stageLeadIn:
		status = "Watch..."
	case stageFlash, stageGap:
		status = "Watch..."
	case stageAwait:
		status = fmt.Sprintf("Your turn: %d of %d", g.inputIdx+1, len(g.sequence))
	case stageFeedback:
		status = "Nice!"
	}
	dst.DrawTextCentered(padY+padH+2, status)

	switch g.Phase() {
	case core.PhasePaused:
		drawOverlay(dst, "Paused", "Press P to resume")
	case core.PhaseEnded:
		drawOverlay(dst, "Wrong pad!", fmt.Sprintf("Rounds: %d  |  Press R to restart", g.round))
	}
}

func drawOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+3, line2)
}

// State returns the current phase and completed-round count.
func (g *Game) State() core.GameState {
	return core.GameState{Phase: g.Phase(), Score: g.round}
}

// Sequence returns a copy of the current pad sequence. Used by tests.
func (g *Game) Sequence() []int {
	out := make([]int, len(g.sequence))
	copy(out, g.sequence)
	return out
}
