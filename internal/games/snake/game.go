// Package snake implements the classic grid snake game.
// Movement is discrete-time: the snake advances on a fixed interval that
// shortens as food is eaten, while input is buffered between moves.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/config"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/core"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/registry"
)

// Direction is the snake's heading.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

func (d Direction) opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Point is a grid cell coordinate.
type Point struct {
	X, Y int
}

var configPath string

// SetConfigPath sets a custom tuning file used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the snake simulation.
type Game struct {
	core.Lifecycle

	cfg  core.RuntimeConfig
	tune config.SnakeConfig
	rng  *rand.Rand

	body      []Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered, applied once per move
	growing   bool

	food      Point
	score     int
	foodEaten int

	interval  float64 // Seconds between moves
	moveTimer float64

	gridW, gridH int
	offsetX      int
	offsetY      int
}

// New creates a snake game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset reinitializes the playfield and returns the phase to idle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ResetPhase()

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	tune, err := config.LoadSnake(configPath)
	if err != nil {
		tune = config.DefaultSnakeConfig()
	}
	g.tune = tune

	g.gridW = tune.Grid.Width
	g.gridH = tune.Grid.Height
	// Shrink to fit small terminals, keeping room for HUD and border.
	g.gridW = core.Clamp(g.gridW, 8, core.Max(8, cfg.ScreenW-2))
	g.gridH = core.Clamp(g.gridH, 6, core.Max(6, cfg.ScreenH-4))
	g.offsetX = (cfg.ScreenW - g.gridW) / 2
	g.offsetY = 2 + (cfg.ScreenH-2-g.gridH)/2

	g.score = 0
	g.foodEaten = 0
	g.interval = tune.Speed.MoveInterval
	g.moveTimer = 0
	g.growing = false

	g.initBody()
	g.spawnFood()
}

// initBody places the snake heading right at the grid center.
func (g *Game) initBody() {
	startLen := core.Max(2, g.tune.StartLen)
	headX := g.gridW/2 + startLen/2
	y := g.gridH / 2

	g.body = make([]Point, 0, startLen)
	for i := 0; i < startLen; i++ {
		g.body = append(g.body, Point{X: headX - i, Y: y})
	}
	g.direction = DirRight
	g.nextDir = DirRight
}

// spawnFood places food at a random cell not occupied by the body.
func (g *Game) spawnFood() {
	var empty []Point
	for y := 0; y < g.gridH; y++ {
		for x := 0; x < g.gridW; x++ {
			p := Point{X: x, Y: y}
			if !g.bodyAt(p) {
				empty = append(empty, p)
			}
		}
	}

	if len(empty) == 0 {
		// Board full: the player effectively won; nothing left to eat.
		g.food = Point{X: -1, Y: -1}
		return
	}

	g.food = empty[g.rng.Intn(len(empty))]
}

func (g *Game) bodyAt(p Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if !g.Running() {
		return core.StepResult{State: g.State()}
	}

	g.bufferDirection(in)

	g.moveTimer += dt
	if g.moveTimer >= g.interval {
		g.moveTimer -= g.interval
		g.move()
	}

	return core.StepResult{State: g.State()}
}

// bufferDirection records the latest direction input, ignoring reversals
// against the current heading.
func (g *Game) bufferDirection(in core.InputFrame) {
	want := g.nextDir

	switch {
	case in.Has(core.ActionUp):
		want = DirUp
	case in.Has(core.ActionDown):
		want = DirDown
	case in.Has(core.ActionLeft):
		want = DirLeft
	case in.Has(core.ActionRight):
		want = DirRight
	}

	if want != g.direction.opposite() {
		g.nextDir = want
	}
}

// move advances the head one cell, applying growth, scoring, and collisions.
func (g *Game) move() {
	if len(g.body) == 0 {
		return
	}

	g.direction = g.nextDir

	head := g.body[0]
	var newHead Point
	switch g.direction {
	case DirUp:
		newHead = Point{X: head.X, Y: head.Y - 1}
	case DirDown:
		newHead = Point{X: head.X, Y: head.Y + 1}
	case DirLeft:
		newHead = Point{X: head.X - 1, Y: head.Y}
	case DirRight:
		newHead = Point{X: head.X + 1, Y: head.Y}
	}

	// Wall collision
	if newHead.X < 0 || newHead.X >= g.gridW || newHead.Y < 0 || newHead.Y >= g.gridH {
		g.End()
		return
	}

	// Self collision; the tail cell is about to vacate unless growing.
	checkLen := len(g.body)
	if !g.growing && checkLen > 0 {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.body[i] == newHead {
			g.End()
			return
		}
	}

	g.body = append([]Point{newHead}, g.body...)

	if newHead == g.food {
		g.score++
		g.foodEaten++
		g.growing = true
		g.applySpeedSchedule()
		g.spawnFood()
	}

	if g.growing {
		g.growing = false
	} else if len(g.body) > 1 {
		g.body = g.body[:len(g.body)-1]
	}
}

// applySpeedSchedule shortens the move interval every N foods, down to the
// configured floor.
func (g *Game) applySpeedSchedule() {
	step := g.tune.Speed.StepEveryFood
	if step <= 0 || g.foodEaten%step != 0 {
		return
	}
	g.interval = core.ClampF(g.interval-g.tune.Speed.IntervalStep, g.tune.Speed.MinInterval, g.tune.Speed.MoveInterval)
}

// Render draws the playfield.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Snake  |  Score: %d  Length: %d", g.score, len(g.body))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	// Border around the grid
	dst.DrawBox(core.NewRect(g.offsetX-1, g.offsetY-1, g.gridW+2, g.gridH+2))

	for i, seg := range g.body {
		ch := 'o'
		color := core.ColorGreen
		if i == 0 {
			ch = 'O'
			color = core.ColorBrightGreen
		}
		dst.SetColored(g.offsetX+seg.X, g.offsetY+seg.Y, ch, color)
	}

	if g.food.X >= 0 {
		dst.SetColored(g.offsetX+g.food.X, g.offsetY+g.food.Y, '*', core.ColorBrightRed)
	}

	switch g.Phase() {
	case core.PhasePaused:
		drawOverlay(dst, "Paused", "Press P to continue")
	case core.PhaseEnded:
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawOverlay draws a centered two-line message box.
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

// Body returns a copy of the body cells, head first. Used by tests.
func (g *Game) Body() []Point {
	out := make([]Point, len(g.body))
	copy(out, g.body)
	return out
}

// Bounds returns the grid dimensions.
func (g *Game) Bounds() (w, h int) {
	return g.gridW, g.gridH
}

// Interval returns the current move interval in seconds.
func (g *Game) Interval() float64 {
	return g.interval
}
