package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/birthdaybook/internal/models"
	"github.com/mmynk/birthdaybook/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "birthdaybook-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("LatestSnapshot on empty database", func(t *testing.T) {
		_, err := store.LatestSnapshot(ctx)
		if !errors.Is(err, storage.ErrSnapshotNotFound) {
			t.Errorf("Expected ErrSnapshotNotFound, got %v", err)
		}
	})

	t.Run("SaveSnapshot generates ID and timestamp", func(t *testing.T) {
		snapshot, err := store.SaveSnapshot(ctx, []models.Entry{
			{Name: "john", Day: 1, Month: 2},
		})
		if err != nil {
			t.Fatalf("SaveSnapshot failed: %v", err)
		}

		if snapshot.ID == "" {
			t.Error("Expected snapshot ID to be generated")
		}
		if snapshot.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
		if len(snapshot.Entries) != 1 {
			t.Errorf("Expected 1 entry, got %d", len(snapshot.Entries))
		}

		t.Logf("Saved snapshot: ID=%s, CreatedAt=%d", snapshot.ID, snapshot.CreatedAt)
	})

	t.Run("GetSnapshot keeps entry order", func(t *testing.T) {
		original := []models.Entry{
			{Name: "Charlie", Day: 29, Month: 2},
			{Name: "Alice", Day: 3, Month: 10},
			{Name: "Bob", Day: 31, Month: 12},
		}

		saved, err := store.SaveSnapshot(ctx, original)
		if err != nil {
			t.Fatalf("SaveSnapshot failed: %v", err)
		}

		retrieved, err := store.GetSnapshot(ctx, saved.ID)
		if err != nil {
			t.Fatalf("GetSnapshot failed: %v", err)
		}

		if retrieved.ID != saved.ID {
			t.Errorf("ID mismatch: got %s, want %s", retrieved.ID, saved.ID)
		}
		if retrieved.CreatedAt != saved.CreatedAt {
			t.Errorf("CreatedAt mismatch: got %d, want %d", retrieved.CreatedAt, saved.CreatedAt)
		}
		if len(retrieved.Entries) != len(original) {
			t.Fatalf("Entries count mismatch: got %d, want %d", len(retrieved.Entries), len(original))
		}
		for i, e := range retrieved.Entries {
			if e != original[i] {
				t.Errorf("Entry %d mismatch: got %+v, want %+v", i, e, original[i])
			}
		}
	})

	t.Run("GetSnapshot returns error for nonexistent snapshot", func(t *testing.T) {
		_, err := store.GetSnapshot(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrSnapshotNotFound) {
			t.Errorf("Expected ErrSnapshotNotFound, got %v", err)
		}
	})

	t.Run("SaveSnapshot with no entries", func(t *testing.T) {
		saved, err := store.SaveSnapshot(ctx, nil)
		if err != nil {
			t.Fatalf("SaveSnapshot failed: %v", err)
		}

		retrieved, err := store.GetSnapshot(ctx, saved.ID)
		if err != nil {
			t.Fatalf("GetSnapshot failed: %v", err)
		}
		if len(retrieved.Entries) != 0 {
			t.Errorf("Expected 0 entries, got %d", len(retrieved.Entries))
		}
	})

	t.Run("LatestSnapshot returns last saved", func(t *testing.T) {
		first, err := store.SaveSnapshot(ctx, []models.Entry{{Name: "first", Day: 1, Month: 1}})
		if err != nil {
			t.Fatalf("SaveSnapshot failed: %v", err)
		}
		second, err := store.SaveSnapshot(ctx, []models.Entry{{Name: "second", Day: 2, Month: 2}})
		if err != nil {
			t.Fatalf("SaveSnapshot failed: %v", err)
		}

		latest, err := store.LatestSnapshot(ctx)
		if err != nil {
			t.Fatalf("LatestSnapshot failed: %v", err)
		}
		if latest.ID != second.ID {
			t.Errorf("Expected latest snapshot %s, got %s (first was %s)", second.ID, latest.ID, first.ID)
		}
		if len(latest.Entries) != 1 || latest.Entries[0].Name != "second" {
			t.Errorf("Unexpected latest entries: %+v", latest.Entries)
		}
	})

	t.Run("ListSnapshots newest first without entries", func(t *testing.T) {
		snapshots, err := store.ListSnapshots(ctx)
		if err != nil {
			t.Fatalf("ListSnapshots failed: %v", err)
		}
		if len(snapshots) != 5 {
			t.Fatalf("Expected 5 snapshots, got %d", len(snapshots))
		}

		latest, err := store.LatestSnapshot(ctx)
		if err != nil {
			t.Fatalf("LatestSnapshot failed: %v", err)
		}
		if snapshots[0].ID != latest.ID {
			t.Errorf("Expected first listed snapshot to be %s, got %s", latest.ID, snapshots[0].ID)
		}
		for _, s := range snapshots {
			if len(s.Entries) != 0 {
				t.Errorf("Expected no entries in listing, got %d for %s", len(s.Entries), s.ID)
			}
		}
	})
}

func TestNewReopensExistingDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "book.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	saved, err := store.SaveSnapshot(ctx, []models.Entry{{Name: "john", Day: 1, Month: 2}})
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	store.Close()

	// Migrations must be safe to run again
	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	latest, err := reopened.LatestSnapshot(ctx)
	if err != nil {
		t.Fatalf("LatestSnapshot failed: %v", err)
	}
	if latest.ID != saved.ID {
		t.Errorf("ID mismatch: got %s, want %s", latest.ID, saved.ID)
	}
}
