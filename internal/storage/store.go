// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/birthdaybook/internal/models"
)

// ErrSnapshotNotFound is returned when a requested snapshot does not exist,
// including when nothing has been saved yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Store defines the interface for birthday book persistence.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// SaveSnapshot persists entries, in order, as a new snapshot.
	// The returned snapshot has its ID and CreatedAt populated.
	SaveSnapshot(ctx context.Context, entries []models.Entry) (*models.Snapshot, error)

	// GetSnapshot retrieves a snapshot and its entries by ID.
	GetSnapshot(ctx context.Context, snapshotID string) (*models.Snapshot, error)

	// LatestSnapshot retrieves the most recently saved snapshot.
	LatestSnapshot(ctx context.Context) (*models.Snapshot, error)

	// ListSnapshots returns snapshot metadata, newest first, without entries.
	ListSnapshots(ctx context.Context) ([]*models.Snapshot, error)

	// Close releases any resources held by the store.
	Close() error
}
