package flyer

import (
	"math/rand"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/config"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/core"
)

// Pipe is a transient obstacle: a vertical pair of columns with a gap.
// Created by the spawner, destroyed once fully off the left edge.
type Pipe struct {
	X         float64 // Left edge, continuous
	GapY      int     // Top of the gap
	GapHeight int
	Scored    bool // Set once the actor has fully passed
}

// pipeField owns the obstacle list: spawn timing, leftward scroll, scoring,
// and pruning. One field is live per game instance.
type pipeField struct {
	tune    config.FlyerObstacles
	rng     *rand.Rand
	screenW int
	screenH int

	pipes      []Pipe
	spawnTimer float64
}

func newPipeField(tune config.FlyerObstacles, rng *rand.Rand, screenW, screenH int) *pipeField {
	return &pipeField{
		tune:    tune,
		rng:     rng,
		screenW: screenW,
		screenH: screenH,
	}
}

// advance moves all pipes left, spawns on the wall-clock interval, scores
// pipes the actor has fully passed, and prunes off-screen ones. Returns the
// number of pipes passed this tick.
func (f *pipeField) advance(dt, scrollSpeed float64, actorRight float64) int {
	f.spawnTimer += dt
	if f.spawnTimer >= f.tune.SpawnInterval {
		f.spawnTimer -= f.tune.SpawnInterval
		f.spawn()
	}

	passed := 0
	for i := range f.pipes {
		f.pipes[i].X -= scrollSpeed * dt
		if !f.pipes[i].Scored && f.pipes[i].X+float64(f.tune.PipeWidth) < actorRight {
			f.pipes[i].Scored = true
			passed++
		}
	}

	// Prune fully off-screen pipes every tick: nothing survives past one
	// pipe width beyond the left edge.
	alive := f.pipes[:0]
	for _, p := range f.pipes {
		if p.X > -float64(f.tune.PipeWidth) {
			alive = append(alive, p)
		}
	}
	f.pipes = alive

	return passed
}

// spawn appends a pipe at the right edge with a random gap.
func (f *pipeField) spawn() {
	gap := f.tune.MinGapSize
	if f.tune.MaxGapSize > f.tune.MinGapSize {
		gap += f.rng.Intn(f.tune.MaxGapSize - f.tune.MinGapSize + 1)
	}

	usable := f.screenH - 1 - f.tune.TopMargin - f.tune.BottomMargin - gap
	if usable < 1 {
		usable = 1
	}
	gapY := f.tune.TopMargin + f.rng.Intn(usable)

	f.pipes = append(f.pipes, Pipe{
		X:         float64(f.screenW),
		GapY:      gapY,
		GapHeight: gap,
	})
}

// collides reports whether the hitbox overlaps any pipe column.
func (f *pipeField) collides(hitbox core.RectF, groundY int) bool {
	for _, p := range f.pipes {
		w := float64(f.tune.PipeWidth)
		top := core.RectF{X: p.X, Y: 0, W: w, H: float64(p.GapY)}
		bottomY := float64(p.GapY + p.GapHeight)
		bottom := core.RectF{X: p.X, Y: bottomY, W: w, H: float64(groundY) - bottomY}

		if hitbox.Intersects(top) || hitbox.Intersects(bottom) {
			return true
		}
	}
	return false
}

// all returns the live pipes for rendering and tests.
func (f *pipeField) all() []Pipe {
	return f.pipes
}

// reset clears the field for a new run.
func (f *pipeField) reset(rng *rand.Rand, screenW, screenH int) {
	f.rng = rng
	f.screenW = screenW
	f.screenH = screenH
	f.pipes = f.pipes[:0]
	f.spawnTimer = 0
}
