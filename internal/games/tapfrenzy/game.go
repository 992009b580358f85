// Package tapfrenzy implements a timed reaction game. Targets pop up on a
// 3x3 grid for a short lifetime; tapping a good target scores, tapping a
// penalty target costs points, and the session ends on a fixed clock.
package tapfrenzy

import (
	"fmt"
	"math/rand"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/config"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/core"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/registry"
)

const gridSlots = 9

// target is one live item on the grid.
type target struct {
	slot int
	bad  bool
	age  float64 // Seconds since spawn
}

var configPath string

// SetConfigPath sets a custom tuning file used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the tapfrenzy simulation.
type Game struct {
	core.Lifecycle

	cfg  core.RuntimeConfig
	tune config.TapFrenzyConfig
	rng  *rand.Rand

	remaining  float64 // Session seconds left
	spawnTimer float64 // Counts down to the next spawn
	targets    []target

	score   int
	hits    int
	misses  int  // Penalty taps
	cleared bool // Level target reached when the clock ran out
}

// New creates a tapfrenzy game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tapfrenzy", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tapfrenzy"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Wing Rush"
}

// Reset reinitializes the session and returns the phase to idle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ResetPhase()

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	tune, err := config.LoadTapFrenzy(configPath)
	if err != nil {
		tune = config.DefaultTapFrenzyConfig()
	}
	g.tune = tune

	g.remaining = tune.SessionSeconds
	g.targets = g.targets[:0]
	g.score = 0
	g.hits = 0
	g.misses = 0
	g.cleared = false
	g.armSpawn()
}

// armSpawn draws the next spawn delay from the configured window.
func (g *Game) armSpawn() {
	g.spawnTimer = g.tune.SpawnMin + g.rng.Float64()*(g.tune.SpawnMax-g.tune.SpawnMin)
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if !g.Running() {
		return core.StepResult{State: g.State()}
	}

	g.remaining -= dt
	if g.remaining <= 0 {
		g.remaining = 0
		g.cleared = g.targetMet()
		g.End()
		return core.StepResult{State: g.State()}
	}

	g.handleTap(in)
	g.ageTargets(dt)
	g.maybeSpawn(dt)

	return core.StepResult{State: g.State()}
}

// handleTap resolves a slot press against the live targets. Tapping an empty
// cell is a no-op rather than a penalty.
func (g *Game) handleTap(in core.InputFrame) {
	slot := in.Slot()
	if slot < 0 || slot >= gridSlots {
		return
	}

	for i, tg := range g.targets {
		if tg.slot != slot {
			continue
		}
		if tg.bad {
			g.score -= g.tune.BadPenalty
			if g.score < 0 {
				g.score = 0
			}
			g.misses++
		} else {
			g.score += g.tune.GoodPoints
			g.hits++
		}
		g.targets = append(g.targets[:i], g.targets[i+1:]...)
		return
	}
}

// ageTargets despawns targets that outlived their window.
func (g *Game) ageTargets(dt float64) {
	alive := g.targets[:0]
	for _, tg := range g.targets {
		tg.age += dt
		if tg.age < g.tune.Lifetime {
			alive = append(alive, tg)
		}
	}
	g.targets = alive
}

// maybeSpawn places a new target when the timer fires, respecting the
// concurrency cap and never stacking two targets on one cell.
func (g *Game) maybeSpawn(dt float64) {
	g.spawnTimer -= dt
	if g.spawnTimer > 0 {
		return
	}
	g.armSpawn()

	if len(g.targets) >= g.tune.MaxConcurrent {
		return
	}

	var free []int
	occupied := make(map[int]bool, len(g.targets))
	for _, tg := range g.targets {
		occupied[tg.slot] = true
	}
	for s := 0; s < gridSlots; s++ {
		if !occupied[s] {
			free = append(free, s)
		}
	}
	if len(free) == 0 {
		return
	}

	g.targets = append(g.targets, target{
		slot: free[g.rng.Intn(len(free))],
		bad:  g.rng.Float64() < g.tune.BadChance,
	})
}

// targetMet reports whether the score reached the first level target. A
// config with no targets has nothing to fail against.
func (g *Game) targetMet() bool {
	if len(g.tune.LevelTargets) == 0 {
		return true
	}
	return g.score >= g.tune.LevelTargets[0]
}

// Level returns the 1-based level reached for the current score, per the
// configured targets. Level 1 is the floor.
func (g *Game) Level() int {
	level := 1
	for _, want := range g.tune.LevelTargets {
		if g.score >= want {
			level++
		}
	}
	return level
}

// Render draws the grid, timer, and live targets.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Wing Rush  |  Score: %d  Level: %d  Time: %04.1f", g.score, g.Level(), g.remaining)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	cellW, cellH := 9, 4
	gap := 2
	gridW := 3*cellW + 2*gap
	gridH := 3*cellH + 2*gap
	startX := (dst.Width() - gridW) / 2
	startY := 2 + (dst.Height()-2-gridH)/2

	live := make(map[int]target, len(g.targets))
	for _, tg := range g.targets {
		live[tg.slot] = tg
	}

	for s := 0; s < gridSlots; s++ {
		col, row := s%3, s/3
		x := startX + col*(cellW+gap)
		y := startY + row*(cellH+gap)
		dst.DrawBox(core.NewRect(x, y, cellW, cellH))
		dst.DrawText(x+1, y, fmt.Sprintf("%d", s+1))

		tg, ok := live[s]
		if !ok {
			continue
		}
		ch, color := '◉', core.ColorBrightYellow
		if tg.bad {
			ch, color = '✗', core.ColorBrightRed
		}
		dst.SetColored(x+cellW/2, y+cellH/2, ch, color)
	}

	switch g.Phase() {
	case core.PhasePaused:
		drawOverlay(dst, "Paused", "Press P to resume")
	case core.PhaseEnded:
		verdict := "Target missed"
		if g.cleared {
			verdict = "Level cleared!"
		}
		drawOverlay(dst, verdict, fmt.Sprintf("Score: %d  Level: %d  |  Press R to restart", g.score, g.Level()))
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

// Targets returns the live targets. Used by tests.
func (g *Game) Targets() []target {
	return g.targets
}

// Remaining returns the session seconds left. Used by tests.
func (g *Game) Remaining() float64 {
	return g.remaining
}

// Cleared reports whether the level target was met when the session ended.
func (g *Game) Cleared() bool {
	return g.cleared
}
