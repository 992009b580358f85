// Package flyer implements a flap-to-fly obstacle game.
// Continuous-time physics: gravity pulls every tick, a flap sets (not adds to)
// the upward velocity, and pipes scroll left at constant speed.
package flyer

import (
	"fmt"
	"math/rand"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/config"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/core"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/registry"
)

// Visual characters
const (
	actorChar     = '▶'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
)

var configPath string

// SetConfigPath sets a custom tuning file used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the flyer simulation.
type Game struct {
	core.Lifecycle

	cfg  core.RuntimeConfig
	tune config.FlyerConfig
	rng  *rand.Rand

	actorY   float64 // Top of the hitbox
	actorVel float64 // Cells/s, positive down
	field    *pipeField
	score    int
}

// New creates a flyer game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("flyer", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "flyer"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sky Wings"
}

// Reset reinitializes the run and returns the phase to idle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ResetPhase()

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	tune, err := config.LoadFlyer(configPath)
	if err != nil {
		tune = config.DefaultFlyerConfig()
	}
	g.tune = tune

	g.actorY = float64(cfg.ScreenH) / 2.0
	g.actorVel = 0
	g.score = 0

	if g.field == nil {
		g.field = newPipeField(tune.Obstacles, g.rng, cfg.ScreenW, cfg.ScreenH)
	} else {
		g.field.tune = tune.Obstacles
		g.field.reset(g.rng, cfg.ScreenW, cfg.ScreenH)
	}
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if !g.Running() {
		return core.StepResult{State: g.State()}
	}

	// A flap sets the upward velocity; it does not accumulate.
	if in.Has(core.ActionFlap) || in.Has(core.ActionUp) {
		g.actorVel = g.tune.Physics.FlapVelocity
	}

	g.actorVel += g.tune.Physics.Gravity * dt
	if g.actorVel > g.tune.Physics.MaxFallSpeed {
		g.actorVel = g.tune.Physics.MaxFallSpeed
	}
	g.actorY += g.actorVel * dt

	actorRight := float64(g.tune.Player.X + g.tune.Player.Width)
	g.score += g.field.advance(dt, g.tune.Physics.ScrollSpeed, actorRight)

	// Ceiling
	if g.actorY < 0 {
		g.actorY = 0
		g.End()
	}

	// Ground (one line reserved at the bottom)
	groundY := g.cfg.ScreenH - 1
	if g.actorY+float64(g.tune.Player.Height) >= float64(groundY) {
		g.actorY = float64(groundY - g.tune.Player.Height)
		g.End()
	}

	if g.Running() && g.field.collides(g.hitbox(), groundY) {
		g.End()
	}

	return core.StepResult{State: g.State()}
}

// hitbox returns the actor's collision box, shrunk for fairness.
func (g *Game) hitbox() core.RectF {
	full := core.RectF{
		X: float64(g.tune.Player.X),
		Y: g.actorY,
		W: float64(g.tune.Player.Width),
		H: float64(g.tune.Player.Height),
	}
	return full.Shrink(g.tune.Player.HitMargin)
}

// Render draws the current state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	groundY := dst.Height() - 1
	dst.DrawHLine(0, groundY, dst.Width(), groundChar)

	for _, p := range g.field.all() {
		g.drawPipe(dst, p, groundY)
	}

	actorY := int(g.actorY)
	for dy := 0; dy < g.tune.Player.Height; dy++ {
		for dx := 0; dx < g.tune.Player.Width; dx++ {
			ch := '●'
			if dx == g.tune.Player.Width-1 && dy == 0 {
				ch = actorChar
			}
			dst.SetColored(g.tune.Player.X+dx, actorY+dy, ch, core.ColorBrightYellow)
		}
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	switch g.Phase() {
	case core.PhasePaused:
		drawOverlay(dst, "Paused", "Press P to resume")
	case core.PhaseEnded:
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

func (g *Game) drawPipe(dst *core.Screen, p Pipe, groundY int) {
	x := int(p.X)
	w := g.tune.Obstacles.PipeWidth

	for y := 0; y < p.GapY; y++ {
		for dx := 0; dx < w; dx++ {
			dst.SetColored(x+dx, y, pipeChar, core.ColorGreen)
		}
	}
	if p.GapY > 0 {
		for dx := 0; dx < w; dx++ {
			dst.SetColored(x+dx, p.GapY-1, pipeCapTop, core.ColorGreen)
		}
	}

	bottomY := p.GapY + p.GapHeight
	for y := bottomY; y < groundY; y++ {
		for dx := 0; dx < w; dx++ {
			dst.SetColored(x+dx, y, pipeChar, core.ColorGreen)
		}
	}
	if bottomY < groundY {
		for dx := 0; dx < w; dx++ {
			dst.SetColored(x+dx, bottomY, pipeCapBottom, core.ColorGreen)
		}
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

// Pipes returns the live obstacle list. Used by tests.
func (g *Game) Pipes() []Pipe {
	return g.field.all()
}

// ActorY returns the actor's vertical position. Used by tests.
func (g *Game) ActorY() float64 {
	return g.actorY
}
