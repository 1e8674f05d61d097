package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveOutcome(OutcomeEntry{Outcome: "won", Ticks: 10}); err != nil {
		t.Fatalf("SaveOutcome() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	entries, err := store.RecentOutcomes(10)
	if err != nil {
		t.Fatalf("RecentOutcomes() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 entry after reopen, got %d", len(entries))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saved := OutcomeEntry{
		SessionID:        NewSessionID(),
		Outcome:          "lost",
		Ticks:            312,
		Shots:            14,
		EnemiesDestroyed: 3,
	}
	id, err := store.SaveOutcome(saved)
	if err != nil {
		t.Fatalf("SaveOutcome() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	entries, err := store.RecentOutcomes(10)
	if err != nil {
		t.Fatalf("RecentOutcomes() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	got := entries[0]
	if got.ID != id || got.SessionID != saved.SessionID || got.Outcome != "lost" ||
		got.Ticks != 312 || got.Shots != 14 || got.EnemiesDestroyed != 3 {
		t.Errorf("Round trip mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreGeneratesSessionID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveOutcome(OutcomeEntry{Outcome: "won"}); err != nil {
		t.Fatalf("SaveOutcome() failed: %v", err)
	}

	entries, _ := store.RecentOutcomes(1)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if _, err := uuid.Parse(entries[0].SessionID); err != nil {
		t.Errorf("SessionID %q is not a UUID: %v", entries[0].SessionID, err)
	}
}

func TestStoreRejectsDuplicateSession(t *testing.T) {
	store := openTestStore(t)
	id := NewSessionID()

	if _, err := store.SaveOutcome(OutcomeEntry{SessionID: id, Outcome: "won"}); err != nil {
		t.Fatalf("SaveOutcome() failed: %v", err)
	}
	if _, err := store.SaveOutcome(OutcomeEntry{SessionID: id, Outcome: "lost"}); err == nil {
		t.Error("Expected error when saving the same session twice")
	}
}

func TestStoreRejectsEmptyOutcome(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveOutcome(OutcomeEntry{Ticks: 5}); err == nil {
		t.Error("Expected error for entry without outcome")
	}
}

func TestStoreRecentOutcomesOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveOutcome(OutcomeEntry{Outcome: "lost", Ticks: (i + 1) * 100}); err != nil {
			t.Fatalf("SaveOutcome() failed: %v", err)
		}
	}

	entries, err := store.RecentOutcomes(3)
	if err != nil {
		t.Fatalf("RecentOutcomes() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries with limit, got %d", len(entries))
	}

	// Newest first: 500, 400, 300
	if entries[0].Ticks != 500 || entries[1].Ticks != 400 || entries[2].Ticks != 300 {
		t.Errorf("Entries not in expected order: %v", entries)
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Played != 0 || sum.Won != 0 || sum.Lost != 0 {
		t.Errorf("Expected empty summary, got %+v", sum)
	}

	for _, outcome := range []string{"won", "lost", "lost", "won", "lost"} {
		if _, err := store.SaveOutcome(OutcomeEntry{Outcome: outcome}); err != nil {
			t.Fatalf("SaveOutcome() failed: %v", err)
		}
	}

	sum, err = store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Played != 5 || sum.Won != 2 || sum.Lost != 3 {
		t.Errorf("Summary() = %+v, expected 5 played, 2 won, 3 lost", sum)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveOutcome(OutcomeEntry{Outcome: "won"})
	store.SaveOutcome(OutcomeEntry{Outcome: "lost"})

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	entries, _ := store.RecentOutcomes(10)
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries after clear, got %d", len(entries))
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
