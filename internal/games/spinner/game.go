// Package spinner implements a prize wheel. The landing segment is drawn
// uniformly when the spin starts; the visible deceleration is an ease-out
// animation toward that pre-computed target, so the wheel always settles
// exactly on the chosen segment.
package spinner

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/config"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/core"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/registry"
)

// stage is the in-round state while the game is running.
type stage int

const (
	stageReady    stage = iota // Waiting for the spin input
	stageSpinning              // Animating toward the target angle
)

var configPath string

// SetConfigPath sets a custom tuning file used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the wheel simulation.
type Game struct {
	core.Lifecycle

	cfg  core.RuntimeConfig
	tune config.SpinnerConfig
	rng  *rand.Rand

	stage     stage
	angle     float64 // Radians, grows monotonically during the spin
	target    float64 // Final angle for the selected segment
	spinTime  float64 // Seconds since the spin started
	selection int     // Pre-drawn winning segment

	score int
}

// New creates a spinner game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("spinner", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "spinner"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Prize Wheel"
}

// Reset reinitializes the wheel and returns the phase to idle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ResetPhase()

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	tune, err := config.LoadSpinner(configPath)
	if err != nil {
		tune = config.DefaultSpinnerConfig()
	}
	if len(tune.Segments) == 0 {
		tune = config.DefaultSpinnerConfig()
	}
	g.tune = tune

	g.stage = stageReady
	g.angle = 0
	g.target = 0
	g.spinTime = 0
	g.selection = -1
	g.score = 0
}

// beginSpin draws the landing segment and arms the animation target.
func (g *Game) beginSpin() {
	n := len(g.tune.Segments)
	g.selection = g.rng.Intn(n)

	span := 2 * math.Pi / float64(n)
	// Full rotations plus the center of the selected segment.
	g.target = float64(g.tune.FullSpins)*2*math.Pi + float64(g.selection)*span + span/2
	g.angle = 0
	g.spinTime = 0
	g.stage = stageSpinning
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if !g.Running() {
		return core.StepResult{State: g.State()}
	}

	switch g.stage {
	case stageReady:
		if in.Has(core.ActionFlap) || in.Has(core.ActionConfirm) {
			g.beginSpin()
		}
	case stageSpinning:
		g.spinTime += dt
		p := g.spinTime / g.tune.SpinDuration
		if p >= 1 {
			g.angle = g.target
			g.score = g.tune.Segments[g.selection].Points
			g.End()
			break
		}
		// Ease-out cubic: fast launch, smooth deceleration to rest.
		eased := 1 - math.Pow(1-p, 3)
		g.angle = g.target * eased
	}

	return core.StepResult{State: g.State()}
}

// currentSegment maps the wheel angle back to the segment under the pointer.
func (g *Game) currentSegment() int {
	n := len(g.tune.Segments)
	span := 2 * math.Pi / float64(n)
	a := math.Mod(g.angle, 2*math.Pi)
	idx := int(a / span)
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// Render draws the segment strip with the pointer fixed at the top.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(0, 0, " Prize Wheel")
	dst.DrawHLine(0, 1, dst.Width(), '─')

	n := len(g.tune.Segments)
	rowH := 1
	listH := n * rowH
	startY := 3 + (dst.Height()-4-listH)/2
	current := g.currentSegment()

	widest := 0
	for _, s := range g.tune.Segments {
		if len(s.Label) > widest {
			widest = len(s.Label)
		}
	}
	boxW := widest + 12
	startX := (dst.Width() - boxW) / 2

	dst.DrawText(startX-4, startY+current, "▶▶▶")

	for i, s := range g.tune.Segments {
		y := startY + i
		line := fmt.Sprintf(" %-*s %4d ", widest, s.Label, s.Points)
		color := core.ColorDefault
		if i == current {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColored(startX, y, line, color)
	}

	var status string
	switch {
	case g.Phase() == core.PhaseEnded:
		won := g.tune.Segments[g.selection]
		status = fmt.Sprintf("You won: %s (+%d)  |  Press R to spin again", won.Label, won.Points)
	case g.stage == stageReady:
		status = "Press SPACE to spin"
	default:
		status = "Spinning..."
	}
	dst.DrawTextCentered(startY+listH+2, status)

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

// Selection returns the drawn segment index, or -1 before a spin. Used by tests.
func (g *Game) Selection() int {
	return g.selection
}

// Angle returns the wheel angle in radians. Used by tests.
func (g *Game) Angle() float64 {
	return g.angle
}
