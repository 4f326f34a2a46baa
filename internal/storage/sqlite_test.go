package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("Database file was not created")
	}
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore(score); err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", score, err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for score := 1; score <= 15; score++ {
		if _, err := store.SaveScore(score); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 15 {
		t.Errorf("Expected top score 15, got %d", scores[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty store
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty store = %d, expected 0", high)
	}

	if _, err := store.SaveScore(42); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}
	if _, err := store.SaveScore(7); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("HighScore() = %d, expected 42", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(10); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTestStore(t)

	// Unset key returns the fallback
	val, err := store.Setting("language", "en")
	if err != nil {
		t.Fatalf("Setting() failed: %v", err)
	}
	if val != "en" {
		t.Errorf("Setting() fallback = %q, expected en", val)
	}

	if err := store.SetSetting("language", "ru"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}

	val, err = store.Setting("language", "en")
	if err != nil {
		t.Fatalf("Setting() failed: %v", err)
	}
	if val != "ru" {
		t.Errorf("Setting() = %q, expected ru", val)
	}

	// Overwrite
	if err := store.SetSetting("language", "en"); err != nil {
		t.Fatalf("SetSetting() overwrite failed: %v", err)
	}
	val, _ = store.Setting("language", "ru")
	if val != "en" {
		t.Errorf("Setting() after overwrite = %q, expected en", val)
	}
}
