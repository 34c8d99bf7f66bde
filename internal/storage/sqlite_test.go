package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
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

func testRun(ticks int) Run {
	inputs := make([]core.InputFrame, ticks)
	for i := range inputs {
		inputs[i] = core.InputFrame{Thrust: i%2 == 0, Steer: core.Steering(i % 3), Fire: i % 4}
	}
	return Run{
		GameID:     "asteroids",
		Seed:       -42,
		Config:     []byte("gameplay:\n  initial_wave: 5\n"),
		Inputs:     inputs,
		Ticks:      ticks,
		Games:      2,
		BestScore:  340,
		FinalScore: 120,
		FinalHash:  1<<63 + 12345,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(testRun(10)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.Runs(10)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run after reopening, got %d", len(runs))
	}
}

func TestStoreSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)
	want := testRun(100)

	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if got == nil {
		t.Fatal("Run() returned nil for a saved run")
	}

	if got.ID != id || got.GameID != want.GameID || got.Seed != want.Seed {
		t.Errorf("metadata mismatch: got %+v", got)
	}
	if string(got.Config) != string(want.Config) {
		t.Errorf("Config = %q, expected %q", got.Config, want.Config)
	}
	if got.Ticks != 100 || got.Games != 2 || got.BestScore != 340 || got.FinalScore != 120 {
		t.Errorf("stats mismatch: got %+v", got)
	}
	if got.FinalHash != want.FinalHash {
		t.Errorf("FinalHash = %d, expected %d", got.FinalHash, want.FinalHash)
	}
	if len(got.Inputs) != len(want.Inputs) {
		t.Fatalf("Inputs length = %d, expected %d", len(got.Inputs), len(want.Inputs))
	}
	for i := range want.Inputs {
		if got.Inputs[i] != want.Inputs[i] {
			t.Fatalf("Inputs[%d] = %+v, expected %+v", i, got.Inputs[i], want.Inputs[i])
		}
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRunMissing(t *testing.T) {
	store := openTestStore(t)

	run, err := store.Run(999)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if run != nil {
		t.Errorf("Expected nil for missing run, got %+v", run)
	}
}

func TestStoreSaveRunRejectsMismatchedInputs(t *testing.T) {
	store := openTestStore(t)
	run := testRun(5)
	run.Ticks = 6

	if _, err := store.SaveRun(run); err == nil {
		t.Error("SaveRun should reject an input stream that does not cover every tick")
	}
}

func TestStoreRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		run := testRun(i)
		run.FinalScore = i * 10
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.Runs(2)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs with limit 2, got %d", len(runs))
	}
	if runs[0].FinalScore != 30 || runs[1].FinalScore != 20 {
		t.Errorf("Runs should be newest first, got scores %d, %d", runs[0].FinalScore, runs[1].FinalScore)
	}

	all, err := store.Runs(0)
	if err != nil {
		t.Fatalf("Runs(0) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Runs(0) should use the default limit, got %d runs", len(all))
	}
}

func TestStoreDeleteRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(testRun(3))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.DeleteRun(id); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}

	run, err := store.Run(id)
	if err != nil || run != nil {
		t.Errorf("deleted run should be gone, got %+v, err %v", run, err)
	}

	if err := store.DeleteRun(id); err != nil {
		t.Errorf("deleting a missing run should not fail: %v", err)
	}
}

func TestStoreEmptyRun(t *testing.T) {
	store := openTestStore(t)
	run := testRun(0)

	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	got, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if got == nil || len(got.Inputs) != 0 || got.Ticks != 0 {
		t.Errorf("empty run round trip = %+v", got)
	}
}
