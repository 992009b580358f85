// Package pong implements a one-player pong match against a CPU paddle.
// The ball moves in continuous time; each rally alternates with a short
// serve delay so a conceding player is never ambushed.
package pong

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/config"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/core"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/registry"
)

const (
	paddleChar = '█'
	ballChar   = '●'
	netChar    = '┆'
)

var configPath string

// SetConfigPath sets a custom tuning file used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the pong simulation. The human controls the left paddle.
type Game struct {
	core.Lifecycle

	cfg  core.RuntimeConfig
	tune config.PongConfig
	rng  *rand.Rand

	courtW, courtH int
	offsetY        int

	playerY float64 // Paddle top
	cpuY    float64

	ballX, ballY   float64
	ballVX, ballVY float64
	ballSpeed      float64

	playerScore int
	cpuScore    int

	serveTimer float64 // Counts down; ball is held until it reaches zero
	serveDir   int     // -1 toward the player, +1 toward the CPU
}

// New creates a pong game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pong"
}

// Reset reinitializes the match and returns the phase to idle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ResetPhase()

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	tune, err := config.LoadPong(configPath)
	if err != nil {
		tune = config.DefaultPongConfig()
	}
	g.tune = tune

	g.courtW = cfg.ScreenW
	g.courtH = cfg.ScreenH - 2 // Top row is the HUD
	g.offsetY = 2

	mid := float64(g.courtH-tune.Paddles.Height) / 2
	g.playerY = mid
	g.cpuY = mid

	g.playerScore = 0
	g.cpuScore = 0

	g.serve(1)
}

// serve centers the ball and arms the delay before it moves toward dir.
func (g *Game) serve(dir int) {
	g.ballX = float64(g.courtW) / 2
	g.ballY = float64(g.courtH) / 2
	g.serveDir = dir
	g.serveTimer = g.tune.Gameplay.ServeDelay
	g.ballSpeed = g.tune.Physics.BallSpeed

	// Random but shallow launch angle so the receiver has a chance.
	angle := (g.rng.Float64()*2 - 1) * 0.6
	g.ballVX = math.Cos(angle) * g.ballSpeed * float64(dir)
	g.ballVY = math.Sin(angle) * g.ballSpeed
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if !g.Running() {
		return core.StepResult{State: g.State()}
	}

	g.movePlayer(in, dt)
	g.moveCPU(dt)

	if g.serveTimer > 0 {
		g.serveTimer -= dt
		return core.StepResult{State: g.State()}
	}

	g.moveBall(dt)

	return core.StepResult{State: g.State()}
}

// movePlayer nudges the left paddle while a direction is held.
func (g *Game) movePlayer(in core.InputFrame, dt float64) {
	if in.Has(core.ActionUp) {
		g.playerY -= g.tune.Physics.PaddleSpeed * dt
	}
	if in.Has(core.ActionDown) {
		g.playerY += g.tune.Physics.PaddleSpeed * dt
	}
	g.playerY = core.ClampF(g.playerY, 0, float64(g.courtH-g.tune.Paddles.Height))
}

// moveCPU tracks the ball with limited speed and a deadzone, which makes the
// opponent beatable: a fast spun ball outruns it.
func (g *Game) moveCPU(dt float64) {
	center := g.cpuY + float64(g.tune.Paddles.Height)/2
	diff := g.ballY - center

	if math.Abs(diff) <= g.tune.CPU.Deadzone {
		return
	}

	speed := g.tune.Physics.PaddleSpeed * g.tune.CPU.TrackSpeed * dt
	if diff > 0 {
		g.cpuY += math.Min(speed, diff)
	} else {
		g.cpuY += math.Max(-speed, diff)
	}
	g.cpuY = core.ClampF(g.cpuY, 0, float64(g.courtH-g.tune.Paddles.Height))
}

// moveBall integrates the ball and resolves wall, paddle, and goal events.
func (g *Game) moveBall(dt float64) {
	g.ballX += g.ballVX * dt
	g.ballY += g.ballVY * dt

	// Top and bottom walls reflect.
	if g.ballY < 0 {
		g.ballY = -g.ballY
		g.ballVY = -g.ballVY
	}
	if g.ballY > float64(g.courtH-1) {
		g.ballY = 2*float64(g.courtH-1) - g.ballY
		g.ballVY = -g.ballVY
	}

	playerX := float64(g.tune.Paddles.Offset)
	cpuX := float64(g.courtW - 1 - g.tune.Paddles.Offset)

	// Paddle contact only while the ball travels toward that paddle, so a
	// single crossing cannot bounce twice.
	if g.ballVX < 0 && g.ballX <= playerX+1 && g.ballX >= playerX &&
		g.paddleCovers(g.playerY, g.ballY) {
		g.ballX = playerX + 1
		g.bounce(g.playerY)
	}
	if g.ballVX > 0 && g.ballX >= cpuX-1 && g.ballX <= cpuX &&
		g.paddleCovers(g.cpuY, g.ballY) {
		g.ballX = cpuX - 1
		g.bounce(g.cpuY)
	}

	// Goals. Each exit scores exactly once: serve() immediately recenters
	// the ball inside the court.
	if g.ballX < 0 {
		g.cpuScore++
		g.afterPoint(1)
	} else if g.ballX > float64(g.courtW-1) {
		g.playerScore++
		g.afterPoint(-1)
	}
}

func (g *Game) paddleCovers(paddleY, ballY float64) bool {
	return ballY >= paddleY-0.5 && ballY <= paddleY+float64(g.tune.Paddles.Height)-0.5
}

// bounce reverses the ball, speeds it up toward the cap, and applies spin
// proportional to how far from the paddle center it hit.
func (g *Game) bounce(paddleY float64) {
	g.ballSpeed = math.Min(g.ballSpeed*g.tune.Physics.SpeedUpFactor, g.tune.Physics.MaxBallSpeed)

	half := float64(g.tune.Paddles.Height) / 2
	offset := (g.ballY - (paddleY + half)) / half // -1..1

	g.ballVY = offset * g.tune.Physics.SpinFactor

	vx := math.Sqrt(math.Max(g.ballSpeed*g.ballSpeed-g.ballVY*g.ballVY, 1))
	if g.ballVX > 0 {
		vx = -vx
	}
	g.ballVX = vx
}

// afterPoint ends the match at the win score or re-serves toward dir.
func (g *Game) afterPoint(dir int) {
	if g.playerScore >= g.tune.Gameplay.WinScore || g.cpuScore >= g.tune.Gameplay.WinScore {
		g.ballX = core.ClampF(g.ballX, 0, float64(g.courtW-1))
		g.End()
		return
	}
	g.serve(dir)
}

// Render draws the court.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Pong  |  You %d : %d CPU  (first to %d)", g.playerScore, g.cpuScore, g.tune.Gameplay.WinScore)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	for y := 0; y < g.courtH; y += 2 {
		dst.Set(g.courtW/2, g.offsetY+y, netChar)
	}

	g.drawPaddle(dst, g.tune.Paddles.Offset, g.playerY, core.ColorBrightGreen)
	g.drawPaddle(dst, g.courtW-1-g.tune.Paddles.Offset, g.cpuY, core.ColorBrightRed)

	if g.serveTimer <= 0 || g.Phase() != core.PhaseRunning {
		dst.SetColored(int(g.ballX), g.offsetY+int(g.ballY), ballChar, core.ColorBrightYellow)
	} else {
		dst.SetColored(int(g.ballX), g.offsetY+int(g.ballY), '◌', core.ColorGray)
	}

	switch g.Phase() {
	case core.PhasePaused:
		drawOverlay(dst, "Paused", "Press P to resume")
	case core.PhaseEnded:
		verdict := "You win!"
		if g.cpuScore > g.playerScore {
			verdict = "CPU wins"
		}
		drawOverlay(dst, verdict, fmt.Sprintf("%d : %d  |  Press R to restart", g.playerScore, g.cpuScore))
	}
}

func (g *Game) drawPaddle(dst *core.Screen, x int, y float64, color core.Color) {
	top := int(y)
	for dy := 0; dy < g.tune.Paddles.Height; dy++ {
		dst.SetColored(x, g.offsetY+top+dy, paddleChar, color)
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

// State returns the current phase and the player's score.
func (g *Game) State() core.GameState {
	return core.GameState{Phase: g.Phase(), Score: g.playerScore}
}

// Scores returns both sides of the match. Used by tests.
func (g *Game) Scores() (player, cpu int) {
	return g.playerScore, g.cpuScore
}

// Ball returns the ball position. Used by tests.
func (g *Game) Ball() (x, y float64) {
	return g.ballX, g.ballY
}
