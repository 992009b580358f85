package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	if _, err := store.SaveScore("snake", "Al Pine", 100); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("snake", "Bea Sharp", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("snake", "Al Pine", 200); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	if _, err := store.SaveScore("pong", "Al Pine", 5); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Player != "Al Pine" {
		t.Errorf("Expected player 'Al Pine', got %q", scores[0].Player)
	}

	pongScores, err := store.TopScores("pong", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(pongScores) != 1 {
		t.Errorf("Expected 1 pong score, got %d", len(pongScores))
	}
}

func TestStoreEmptyPlayerDefaults(t *testing.T) {
	store := openTemp(t)

	if _, err := store.SaveScore("snake", "", 10); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("snake", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Player != LocalPlayer {
		t.Errorf("Expected player %q, got %q", LocalPlayer, scores[0].Player)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("tapfrenzy", "local", (i+1)*100)
	}

	scores, err := store.TopScores("tapfrenzy", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("flyer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("flyer", "local", 100)
	store.SaveScore("flyer", "local", 300)
	store.SaveScore("flyer", "local", 200)

	high, err = store.HighScore("flyer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("flyer", "local", 100)
	store.SaveScore("flyer", "local", 200)
	store.SaveScore("shells", "local", 10)

	if err := store.ClearScores("flyer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	flyerScores, _ := store.TopScores("flyer", 10)
	if len(flyerScores) != 0 {
		t.Errorf("Expected 0 flyer scores after clear, got %d", len(flyerScores))
	}

	shellScores, _ := store.TopScores("shells", 10)
	if len(shellScores) != 1 {
		t.Errorf("Shells scores should not be affected by clearing flyer")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("memory", "local", 4)
	store.SaveScore("memory", "local", 8)
	store.SaveScore("memory", "local", 6)

	stats, err := store.GetGameStats("memory")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 8 {
		t.Errorf("HighScore = %d, want 8", stats.HighScore)
	}
	if stats.AvgScore != 6 {
		t.Errorf("AvgScore = %f, want 6", stats.AvgScore)
	}
	if stats.TotalScore != 18 {
		t.Errorf("TotalScore = %d, want 18", stats.TotalScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
