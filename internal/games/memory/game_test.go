package memory

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

// runUntilAwait steps with empty input until playback finishes.
func runUntilAwait(t *testing.T, g *Game) {
	t.Helper()
	in := core.NewInputFrame()
	for i := 0; i < 10000; i++ {
		if g.stage == stageAwait {
			return
		}
		g.Step(in, dt)
	}
	t.Fatal("playback never reached the await stage")
}

func TestFirstRoundHasOnePad(t *testing.T) {
	g := newStarted(t, 3)

	if len(g.Sequence()) != 1 {
		t.Fatalf("round 1 sequence length = %d, want 1", len(g.Sequence()))
	}
	if g.stage != stageLeadIn {
		t.Errorf("expected lead-in after start, got %s", g.stage)
	}
}

func TestPlaybackStageOrder(t *testing.T) {
	g := newStarted(t, 3)
	g.sequence = []int{0, 1, 2}
	g.playIdx = 0
	g.stage = stageLeadIn
	g.stageTimer = g.tune.LeadIn

	in := core.NewInputFrame()
	var seen []stage
	last := stage(-1)
	for i := 0; i < 10000 && g.stage != stageAwait; i++ {
		if g.stage != last {
			seen = append(seen, g.stage)
			last = g.stage
		}
		g.Step(in, dt)
	}

	want := []stage{stageLeadIn, stageFlash, stageGap, stageFlash, stageGap, stageFlash}
	if len(seen) != len(want) {
		t.Fatalf("stage trace %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("stage trace %v, want %v", seen, want)
		}
	}
}

func TestInputIgnoredDuringPlayback(t *testing.T) {
	g := newStarted(t, 3)

	// Mash a wrong pad during the lead-in; nothing should happen.
	wrong := (g.Sequence()[0] + 1) % g.tune.Pads
	in := core.NewInputFrame()
	in.Set(core.SlotAction(wrong))
	for i := 0; i < 5; i++ {
		g.Step(in, dt)
	}

	if g.Phase() == core.PhaseEnded {
		t.Error("presses during playback should be ignored")
	}
}

func TestCorrectRepeatScoresRound(t *testing.T) {
	g := newStarted(t, 3)
	runUntilAwait(t, g)

	pad := g.Sequence()[0]
	in := core.NewInputFrame()
	in.Set(core.SlotAction(pad))
	g.Step(in, dt)

	if g.State().Score != 1 {
		t.Fatalf("score = %d after correct repeat, want 1", g.State().Score)
	}
	if g.stage != stageFeedback {
		t.Errorf("expected feedback stage, got %s", g.stage)
	}

	// The feedback stage rolls into a longer round.
	in.Clear()
	for i := 0; i < 10000 && g.stage == stageFeedback; i++ {
		g.Step(in, dt)
	}
	if len(g.Sequence()) != 2 {
		t.Errorf("round 2 sequence length = %d, want 2", len(g.Sequence()))
	}
}

func TestMismatchEndsRun(t *testing.T) {
	g := newStarted(t, 3)
	runUntilAwait(t, g)

	wrong := (g.Sequence()[0] + 1) % g.tune.Pads
	in := core.NewInputFrame()
	in.Set(core.SlotAction(wrong))
	g.Step(in, dt)

	if g.Phase() != core.PhaseEnded {
		t.Fatalf("expected ended on mismatch, got %s", g.Phase())
	}
	if g.State().Score != 0 {
		t.Errorf("score = %d after first-round miss, want 0", g.State().Score)
	}
}

func TestPartialMatchThenMiss(t *testing.T) {
	g := newStarted(t, 3)
	g.sequence = []int{0, 1}
	g.stage = stageAwait
	g.inputIdx = 0
	g.round = 1

	in := core.NewInputFrame()
	in.Set(core.SlotAction(0))
	g.Step(in, dt)
	if g.Phase() == core.PhaseEnded {
		t.Fatal("correct partial input should not end the run")
	}

	in.Clear()
	in.Set(core.SlotAction(0)) // Expected 1
	g.Step(in, dt)
	if g.Phase() != core.PhaseEnded {
		t.Fatal("mismatch mid-sequence should end the run")
	}
	if g.State().Score != 1 {
		t.Errorf("completed rounds should survive the miss, score = %d", g.State().Score)
	}
}

func TestSequenceGrowsByAppending(t *testing.T) {
	g := newStarted(t, 9)

	in := core.NewInputFrame()
	var prev []int
	for round := 0; round < 5; round++ {
		runUntilAwait(t, g)
		seq := g.Sequence()

		if len(seq) != round+1 {
			t.Fatalf("round %d sequence length = %d", round+1, len(seq))
		}
		for i := range prev {
			if seq[i] != prev[i] {
				t.Fatal("earlier rounds must be a prefix of later ones")
			}
		}
		prev = seq

		for _, pad := range seq {
			in.Clear()
			in.Set(core.SlotAction(pad))
			g.Step(in, dt)
		}
	}

	if g.State().Score != 5 {
		t.Errorf("score = %d after 5 clean rounds, want 5", g.State().Score)
	}
}

func TestOutOfRangeSlotIgnored(t *testing.T) {
	g := newStarted(t, 3)
	runUntilAwait(t, g)

	in := core.NewInputFrame()
	in.Set(core.ActionSlot9) // Only pads 1-4 exist
	g.Step(in, dt)

	if g.Phase() == core.PhaseEnded {
		t.Error("out-of-range slot should be ignored, not treated as a miss")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 555, ScreenW: 80, ScreenH: 24}

	g1, g2 := New(), New()
	g1.Reset(cfg)
	g2.Reset(cfg)

	s1, s2 := g1.Sequence(), g2.Sequence()
	if s1[0] != s2[0] {
		t.Error("same seed produced different sequences")
	}
}
