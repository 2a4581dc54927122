// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/birthdaybook/internal/models"
	"github.com/mmynk/birthdaybook/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveSnapshot persists entries as a new snapshot in a single transaction.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, entries []models.Entry) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().Unix(),
		Entries:   append([]models.Entry(nil), entries...),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO snapshots (id, created_at) VALUES (?, ?)",
		snapshot.ID, snapshot.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	for i, e := range snapshot.Entries {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO snapshot_entries (snapshot_id, position, name, birth_day, birth_month)
			 VALUES (?, ?, ?, ?, ?)`,
			snapshot.ID, i, e.Name, int64(e.Day), int64(e.Month),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return snapshot, nil
}

// GetSnapshot retrieves a snapshot by ID, including its entries in order.
func (s *SQLiteStore) GetSnapshot(ctx context.Context, snapshotID string) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, created_at FROM snapshots WHERE id = ?",
		snapshotID,
	).Scan(&snapshot.ID, &snapshot.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrSnapshotNotFound, snapshotID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	entries, err := s.listEntries(ctx, snapshot.ID)
	if err != nil {
		return nil, err
	}
	snapshot.Entries = entries

	return snapshot, nil
}

// LatestSnapshot retrieves the most recently saved snapshot.
// Snapshots saved within the same second are ordered by insertion.
func (s *SQLiteStore) LatestSnapshot(ctx context.Context) (*models.Snapshot, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM snapshots ORDER BY created_at DESC, rowid DESC LIMIT 1",
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}

	return s.GetSnapshot(ctx, id)
}

// ListSnapshots returns all snapshots, newest first, without their entries.
func (s *SQLiteStore) ListSnapshots(ctx context.Context) ([]*models.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, created_at FROM snapshots ORDER BY created_at DESC, rowid DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*models.Snapshot
	for rows.Next() {
		snapshot := &models.Snapshot{}
		if err := rows.Scan(&snapshot.ID, &snapshot.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}

	return snapshots, nil
}

func (s *SQLiteStore) listEntries(ctx context.Context, snapshotID string) ([]models.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, birth_day, birth_month FROM snapshot_entries
		 WHERE snapshot_id = ? ORDER BY position`,
		snapshotID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.Name, &e.Day, &e.Month); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}
