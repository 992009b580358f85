package tapfrenzy

import (
	"testing"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/core"
)

const dt = 1.0 / 60.0

func newStarted(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	if !g.Start() {
		t.Fatal("start from idle should succeed")
	}
	return g
}

func TestSessionClockEndsRun(t *testing.T) {
	g := newStarted(t, 1)
	g.remaining = 0.05

	in := core.NewInputFrame()
	for i := 0; i < 10 && g.Running(); i++ {
		g.Step(in, dt)
	}

	if g.Phase() != core.PhaseEnded {
		t.Fatalf("expected ended when the clock ran out, got %s", g.Phase())
	}
	if g.Remaining() != 0 {
		t.Errorf("remaining time should floor at 0, got %f", g.Remaining())
	}
}

func TestSessionVerdictAgainstLevelTarget(t *testing.T) {
	cases := []struct {
		name    string
		offset  int // Relative to the first level target
		cleared bool
	}{
		{"target reached", 0, true},
		{"target missed", -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newStarted(t, 1)
			g.score = g.tune.LevelTargets[0] + tc.offset
			g.remaining = 0.01

			in := core.NewInputFrame()
			g.Step(in, dt)

			if g.Phase() != core.PhaseEnded {
				t.Fatalf("expected ended, got %s", g.Phase())
			}
			if g.Cleared() != tc.cleared {
				t.Errorf("Cleared() = %v at score %d, want %v", g.Cleared(), g.score, tc.cleared)
			}
		})
	}
}

func TestVerdictResetsWithSession(t *testing.T) {
	g := newStarted(t, 1)
	g.score = g.tune.LevelTargets[0]
	g.remaining = 0.01
	g.Step(core.NewInputFrame(), dt)

	if !g.Cleared() {
		t.Fatal("session at the target score should clear")
	}

	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	if g.Cleared() {
		t.Error("verdict should clear on reset")
	}
}

func TestSpawnWindowRespected(t *testing.T) {
	g := newStarted(t, 7)

	// The armed delay is always inside [SpawnMin, SpawnMax].
	for i := 0; i < 100; i++ {
		g.armSpawn()
		if g.spawnTimer < g.tune.SpawnMin || g.spawnTimer > g.tune.SpawnMax {
			t.Fatalf("spawn delay %f outside [%f, %f]", g.spawnTimer, g.tune.SpawnMin, g.tune.SpawnMax)
		}
	}
}

func TestConcurrencyCap(t *testing.T) {
	g := newStarted(t, 7)

	in := core.NewInputFrame()
	for i := 0; i < 1800 && g.Running(); i++ {
		g.Step(in, dt)
		if len(g.Targets()) > g.tune.MaxConcurrent {
			t.Fatalf("%d live targets, cap is %d", len(g.Targets()), g.tune.MaxConcurrent)
		}
	}
}

func TestNoStackedTargets(t *testing.T) {
	g := newStarted(t, 11)

	in := core.NewInputFrame()
	for i := 0; i < 1800 && g.Running(); i++ {
		g.Step(in, dt)
		seen := make(map[int]bool)
		for _, tg := range g.Targets() {
			if seen[tg.slot] {
				t.Fatalf("two targets on slot %d", tg.slot)
			}
			seen[tg.slot] = true
		}
	}
}

func TestLifetimeDespawn(t *testing.T) {
	g := newStarted(t, 7)

	g.targets = []target{{slot: 4, age: g.tune.Lifetime - 0.01}}
	g.spawnTimer = 100 // Keep new spawns out of the way

	in := core.NewInputFrame()
	g.Step(in, dt)

	if len(g.Targets()) != 0 {
		t.Error("expired target should despawn")
	}
}

func TestGoodTapScores(t *testing.T) {
	g := newStarted(t, 7)
	g.targets = []target{{slot: 2}}

	in := core.NewInputFrame()
	in.Set(core.SlotAction(2))
	g.Step(in, dt)

	if g.State().Score != g.tune.GoodPoints {
		t.Errorf("score = %d, want %d", g.State().Score, g.tune.GoodPoints)
	}
	if len(g.Targets()) != 0 {
		t.Error("tapped target should be consumed")
	}
}

func TestBadTapPenalized(t *testing.T) {
	g := newStarted(t, 7)
	g.score = 5
	g.targets = []target{{slot: 0, bad: true}}

	in := core.NewInputFrame()
	in.Set(core.SlotAction(0))
	g.Step(in, dt)

	if g.State().Score != 5-g.tune.BadPenalty {
		t.Errorf("score = %d, want %d", g.State().Score, 5-g.tune.BadPenalty)
	}
}

func TestScoreFloorsAtZero(t *testing.T) {
	g := newStarted(t, 7)
	g.score = 1
	g.targets = []target{{slot: 0, bad: true}}

	in := core.NewInputFrame()
	in.Set(core.SlotAction(0))
	g.Step(in, dt)

	if g.State().Score != 0 {
		t.Errorf("score should floor at 0, got %d", g.State().Score)
	}
}

func TestEmptyCellTapIsNoOp(t *testing.T) {
	g := newStarted(t, 7)
	g.score = 3
	g.targets = []target{{slot: 8}}

	in := core.NewInputFrame()
	in.Set(core.SlotAction(0))
	g.Step(in, dt)

	if g.State().Score != 3 {
		t.Errorf("empty-cell tap changed the score to %d", g.State().Score)
	}
	if len(g.Targets()) != 1 {
		t.Error("empty-cell tap consumed a target")
	}
}

func TestLevelThresholds(t *testing.T) {
	g := newStarted(t, 7)

	cases := []struct {
		score int
		level int
	}{
		{0, 1},
		{g.tune.LevelTargets[0] - 1, 1},
		{g.tune.LevelTargets[0], 2},
		{g.tune.LevelTargets[1], 3},
		{g.tune.LevelTargets[2], 4},
		{g.tune.LevelTargets[2] + 50, 4},
	}
	for _, tc := range cases {
		g.score = tc.score
		if got := g.Level(); got != tc.level {
			t.Errorf("Level() at score %d = %d, want %d", tc.score, got, tc.level)
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 606, ScreenW: 80, ScreenH: 24}

	g1, g2 := New(), New()
	g1.Reset(cfg)
	g1.Start()
	g2.Reset(cfg)
	g2.Start()

	in := core.NewInputFrame()
	for i := 0; i < 900; i++ {
		in.Clear()
		if i%37 == 0 {
			in.Set(core.SlotAction(i % 9))
		}
		g1.Step(in, dt)
		g2.Step(in, dt)
	}

	if g1.State().Score != g2.State().Score {
		t.Error("same seed and inputs diverged on score")
	}
	if len(g1.Targets()) != len(g2.Targets()) {
		t.Error("same seed and inputs diverged on targets")
	}
}
