package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mmynk/birthdaybook/internal/birthdays"
	"github.com/mmynk/birthdaybook/internal/metrics"
	"github.com/mmynk/birthdaybook/internal/models"
	"github.com/mmynk/birthdaybook/internal/storage"
)

// ErrPersistenceDisabled is returned by Save and Load when the service has no
// storage backend.
var ErrPersistenceDisabled = errors.New("persistence is disabled")

// BirthdayService runs the birthday book operations for one session.
type BirthdayService struct {
	book    *birthdays.Store
	store   storage.Store
	metrics *metrics.Metrics
}

// NewBirthdayService creates a service around an empty book.
// store may be nil to disable Save and Load.
func NewBirthdayService(store storage.Store, m *metrics.Metrics) *BirthdayService {
	return &BirthdayService{
		book:    birthdays.New(),
		store:   store,
		metrics: m,
	}
}

// Add adds an entry to the book.
func (s *BirthdayService) Add(entry models.Entry) error {
	slog.Debug("Add request received", "name", entry.Name, "day", entry.Day, "month", entry.Month)

	if err := s.book.Add(entry); err != nil {
		reason := metrics.ReasonInvalidDate
		if errors.Is(err, birthdays.ErrCapacityExceeded) {
			reason = metrics.ReasonCapacity
		}
		s.metrics.EntriesRejected.WithLabelValues(reason).Inc()
		slog.Warn("Add rejected", "name", entry.Name, "reason", reason, "error", err)
		return err
	}

	s.metrics.EntriesAdded.Inc()
	s.metrics.BookSize.Set(float64(s.book.Size()))
	slog.Info("Entry added", "name", entry.Name, "size", s.book.Size())

	return nil
}

// Search writes the entries born on day/month to w and returns how many were
// written, including when a write fails partway.
func (s *BirthdayService) Search(w io.Writer, day, month uint) (int, error) {
	slog.Debug("Search request received", "day", day, "month", month)

	count, err := s.book.FprintMatches(w, day, month)
	if err != nil {
		slog.Error("Search failed", "written", count, "error", err)
		return count, fmt.Errorf("failed to print matches: %w", err)
	}

	s.metrics.Searches.Inc()
	s.metrics.SearchMatches.Add(float64(count))
	slog.Info("Search successful", "day", day, "month", month, "count", count)

	return count, nil
}

// Size returns the number of entries in the book.
func (s *BirthdayService) Size() int {
	return s.book.Size()
}

// Save stores the book's entries as a new snapshot.
func (s *BirthdayService) Save(ctx context.Context) (*models.Snapshot, error) {
	if s.store == nil {
		return nil, ErrPersistenceDisabled
	}

	snapshot, err := s.store.SaveSnapshot(ctx, s.book.Entries())
	if err != nil {
		slog.Error("Save failed", "error", err)
		return nil, err
	}

	s.metrics.Snapshots.WithLabelValues("save").Inc()
	slog.Info("Snapshot saved", "snapshot_id", snapshot.ID, "entries", len(snapshot.Entries))

	return snapshot, nil
}

// Load replaces the book with the entries of the latest snapshot and returns
// how many were loaded. The current book is kept if anything fails.
func (s *BirthdayService) Load(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, ErrPersistenceDisabled
	}

	snapshot, err := s.store.LatestSnapshot(ctx)
	if err != nil {
		slog.Warn("Load failed", "error", err)
		return 0, err
	}

	book, err := birthdays.NewFrom(snapshot.Entries)
	if err != nil {
		slog.Error("Snapshot rejected", "snapshot_id", snapshot.ID, "error", err)
		return 0, fmt.Errorf("snapshot %s: %w", snapshot.ID, err)
	}

	s.book = book
	s.metrics.Snapshots.WithLabelValues("load").Inc()
	s.metrics.BookSize.Set(float64(book.Size()))
	slog.Info("Snapshot loaded", "snapshot_id", snapshot.ID, "entries", book.Size())

	return book.Size(), nil
}

// ListSnapshots returns the saved snapshots, newest first, without entries.
func (s *BirthdayService) ListSnapshots(ctx context.Context) ([]*models.Snapshot, error) {
	if s.store == nil {
		return nil, ErrPersistenceDisabled
	}

	snapshots, err := s.store.ListSnapshots(ctx)
	if err != nil {
		slog.Error("ListSnapshots failed", "error", err)
		return nil, err
	}

	slog.Debug("ListSnapshots successful", "count", len(snapshots))
	return snapshots, nil
}
