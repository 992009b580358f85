// Package shells implements the classic shell game: the prize is revealed
// under one cup, the cups are shuffled with accelerating swaps, and the
// player picks where the prize ended up.
package shells

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
	stageReveal  stage = iota // Prize shown under its cup
	stageShuffle              // Timed pairwise swaps
	stageGuess                // Waiting for the player's pick
)

func (s stage) String() string {
	switch s {
	case stageReveal:
		return "reveal"
	case stageShuffle:
		return "shuffle"
	case stageGuess:
		return "guess"
	default:
		return "unknown"
	}
}

const (
	cupArt  = "/___\\"
	cupW    = 5
	cupGap  = 4
	ballChar = '●'
)

var configPath string

// SetConfigPath sets a custom tuning file used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the shell-game simulation.
type Game struct {
	core.Lifecycle

	cfg  core.RuntimeConfig
	tune config.ShellsConfig
	rng  *rand.Rand

	ballPos    int // Position index the prize sits under
	stage      stage
	stageTimer float64

	swapsDone  int
	swapDelays []float64 // Per-swap delay schedule, front-loaded slow
	lastSwap   [2]int    // Positions of the most recent swap, for rendering

	guess int // Player's pick, -1 until made
	won   bool
	score int
}

// New creates a shells game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("shells", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "shells"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Cup Hustle"
}

// Reset reinitializes the round and returns the phase to idle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ResetPhase()

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	tune, err := config.LoadShells(configPath)
	if err != nil {
		tune = config.DefaultShellsConfig()
	}
	if tune.Cups < 2 {
		tune.Cups = 2
	}
	if tune.Cups > 9 {
		tune.Cups = 9
	}
	if tune.Swaps < 1 {
		tune.Swaps = 1
	}
	g.tune = tune

	g.ballPos = g.rng.Intn(tune.Cups)
	g.stage = stageReveal
	g.stageTimer = tune.RevealDuration
	g.swapsDone = 0
	g.swapDelays = buildSwapSchedule(tune)
	g.lastSwap = [2]int{-1, -1}
	g.guess = -1
	g.won = false
	g.score = 0
}

// buildSwapSchedule interpolates the per-swap delay from first to last, then
// scales the whole run to the configured shuffle duration. Swaps start slow
// enough to follow and finish fast enough to lose track of.
func buildSwapSchedule(tune config.ShellsConfig) []float64 {
	n := tune.Swaps
	if n <= 0 {
		return nil
	}

	delays := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		delays[i] = tune.FirstSwapDelay + (tune.LastSwapDelay-tune.FirstSwapDelay)*frac
		total += delays[i]
	}

	if tune.ShuffleDuration > 0 && total > 0 {
		scale := tune.ShuffleDuration / total
		for i := range delays {
			delays[i] *= scale
		}
	}
	return delays
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if !g.Running() {
		return core.StepResult{State: g.State()}
	}

	switch g.stage {
	case stageReveal:
		g.stageTimer -= dt
		if g.stageTimer <= 0 {
			g.stage = stageShuffle
			g.armNextSwap()
		}
	case stageShuffle:
		g.stageTimer -= dt
		if g.stageTimer <= 0 {
			g.doSwap()
			if g.swapsDone >= len(g.swapDelays) {
				g.stage = stageGuess
				g.lastSwap = [2]int{-1, -1}
			} else {
				g.armNextSwap()
			}
		}
	case stageGuess:
		g.handleGuess(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) armNextSwap() {
	g.stageTimer = g.swapDelays[g.swapsDone]
}

// doSwap exchanges two distinct random positions, carrying the prize along
// if it was under either.
func (g *Game) doSwap() {
	a := g.rng.Intn(g.tune.Cups)
	b := g.rng.Intn(g.tune.Cups - 1)
	if b >= a {
		b++
	}

	if g.ballPos == a {
		g.ballPos = b
	} else if g.ballPos == b {
		g.ballPos = a
	}

	g.lastSwap = [2]int{a, b}
	g.swapsDone++
}

// handleGuess resolves the player's pick and ends the round.
func (g *Game) handleGuess(in core.InputFrame) {
	slot := in.Slot()
	if slot < 0 || slot >= g.tune.Cups {
		return
	}

	g.guess = slot
	g.won = slot == g.ballPos
	if g.won {
		g.score = g.tune.WinPoints
	}
	g.End()
}

// Render draws the cup row and the prize when visible.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(0, 0, " Cup Hustle")
	dst.DrawHLine(0, 1, dst.Width(), '─')

	totalW := g.tune.Cups*cupW + (g.tune.Cups-1)*cupGap
	startX := (dst.Width() - totalW) / 2
	cupY := dst.Height() / 2

	showBall := g.stage == stageReveal || g.Phase() == core.PhaseEnded

	for i := 0; i < g.tune.Cups; i++ {
		x := startX + i*(cupW+cupGap)

		lifted := showBall && i == g.ballPos
		y := cupY
		if lifted {
			y = cupY - 2
		}

		color := core.ColorDefault
		if g.stage == stageShuffle && (i == g.lastSwap[0] || i == g.lastSwap[1]) {
			color = core.ColorBrightCyan
		}
		if g.Phase() == core.PhaseEnded && i == g.guess {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColored(x, y, cupArt, color)
		dst.DrawText(x+cupW/2, cupY+2, fmt.Sprintf("%d", i+1))

		if lifted {
			dst.SetColored(x+cupW/2, cupY, ballChar, core.ColorBrightRed)
		}
	}

	var status string
	switch {
	case g.Phase() == core.PhaseEnded && g.won:
		status = fmt.Sprintf("Found it! +%d  |  Press R to play again", g.tune.WinPoints)
	case g.Phase() == core.PhaseEnded:
		status = fmt.Sprintf("It was under cup %d  |  Press R to play again", g.ballPos+1)
	case g.stage == stageReveal:
		status = "Watch the prize..."
	case g.stage == stageShuffle:
		status = "Keep your eye on it!"
	default:
		status = "Where is it? Press 1-" + fmt.Sprint(g.tune.Cups)
	}
	dst.DrawTextCentered(cupY+4, status)

	if g.Phase() == core.PhasePaused {
		drawOverlay(dst, "Paused", "Press P to resume")
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

// State returns the current phase and score.
func (g *Game) State() core.GameState {
	return core.GameState{Phase: g.Phase(), Score: g.score}
}

// BallPos returns the prize position. Used by tests.
func (g *Game) BallPos() int {
	return g.ballPos
}

// Won reports whether the final guess was correct. Used by tests.
func (g *Game) Won() bool {
	return g.won
}
