package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Pattern: "glider", Width: 40, Height: 20, Generations: 12, PeakPopulation: 5, FinalPopulation: 5},
		{Pattern: "", Width: 40, Height: 20, Generations: 3, PeakPopulation: 9, FinalPopulation: 0},
		{Pattern: "gosper-gun", Width: 60, Height: 30, Generations: 500, PeakPopulation: 120, FinalPopulation: 110},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}

	// Newest first
	if recent[0].Pattern != "gosper-gun" || recent[0].Generations != 500 {
		t.Errorf("Expected newest run first, got %+v", recent[0])
	}
	if recent[2].Pattern != "glider" || recent[2].PeakPopulation != 5 {
		t.Errorf("Expected oldest run last, got %+v", recent[2])
	}
	if recent[1].Width != 40 || recent[1].Height != 20 || recent[1].FinalPopulation != 0 {
		t.Errorf("Round-tripped fields differ: %+v", recent[1])
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		store.SaveRun(RunRecord{Width: 10, Height: 10, Generations: uint64(i)})
	}

	recent, err := store.RecentRuns(5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(recent))
	}

	// Zero limit falls back to 10
	recent, _ = store.RecentRuns(0)
	if len(recent) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(recent))
	}
}

func TestStoreLongestRun(t *testing.T) {
	store := openTestStore(t)

	longest, err := store.LongestRun("glider")
	if err != nil {
		t.Fatalf("LongestRun() failed: %v", err)
	}
	if longest != 0 {
		t.Errorf("Expected 0 for no runs, got %d", longest)
	}

	store.SaveRun(RunRecord{Pattern: "glider", Width: 5, Height: 5, Generations: 40})
	store.SaveRun(RunRecord{Pattern: "glider", Width: 5, Height: 5, Generations: 90})
	store.SaveRun(RunRecord{Pattern: "block", Width: 5, Height: 5, Generations: 1000})

	longest, _ = store.LongestRun("glider")
	if longest != 90 {
		t.Errorf("Expected longest glider run 90, got %d", longest)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Width: 5, Height: 5, Generations: 1})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	recent, _ := store.RecentRuns(10)
	if len(recent) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(recent))
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
