// Package birthdays implements the bounded, insertion-ordered birthday book.
package birthdays

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"

	"github.com/mmynk/birthdaybook/internal/calendar"
	"github.com/mmynk/birthdaybook/internal/models"
)

// MaxCapacity is the most entries a Store can hold.
const MaxCapacity = 10

var (
	ErrCapacityExceeded = errors.New("there is not enough space to save the entry")
	ErrInvalidDate      = calendar.ErrInvalidDate
)

// Store is a birthday book of at most MaxCapacity entries, kept in the order
// they were added. It is not safe for concurrent use.
type Store struct {
	entries []models.Entry
}

// New creates an empty store with room for MaxCapacity entries.
func New() *Store {
	return &Store{entries: make([]models.Entry, 0, MaxCapacity)}
}

// NewFrom creates a store and adds each entry in order.
// It fails on the first entry Add rejects.
func NewFrom(entries []models.Entry) (*Store, error) {
	s := New()
	for i, e := range entries {
		if err := s.Add(e); err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, e.Name, err)
		}
	}
	return s, nil
}

// Add appends an entry to the store.
//
// A full store returns ErrCapacityExceeded before the date is looked at.
// Otherwise an invalid date returns a *calendar.InvalidDateError.
// The store is unchanged whenever an error is returned.
func (s *Store) Add(e models.Entry) error {
	if len(s.entries) >= MaxCapacity {
		return ErrCapacityExceeded
	}

	if err := calendar.Validate(e.Day, e.Month); err != nil {
		return err
	}

	s.entries = append(s.entries, e)
	return nil
}

// Size returns the number of entries in the store.
func (s *Store) Size() int {
	return len(s.entries)
}

// Entries returns a copy of all entries in insertion order.
func (s *Store) Entries() []models.Entry {
	return slices.Clone(s.entries)
}

// FindByDate returns the entries born on exactly day/month, in insertion order.
// The sequence is evaluated lazily and can be ranged over more than once.
func (s *Store) FindByDate(day, month uint) iter.Seq[models.Entry] {
	return func(yield func(models.Entry) bool) {
		for _, e := range s.entries {
			if e.Day != day || e.Month != month {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// FprintMatches writes one "<name>: <day>/<month>" line to w for every entry
// born on day/month. It returns the number of lines written.
func (s *Store) FprintMatches(w io.Writer, day, month uint) (int, error) {
	n := 0
	for e := range s.FindByDate(day, month) {
		if _, err := fmt.Fprintf(w, "%s: %d/%d\n", e.Name, e.Day, e.Month); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// PrintMatches is FprintMatches to standard output.
func (s *Store) PrintMatches(day, month uint) (int, error) {
	return s.FprintMatches(os.Stdout, day, month)
}
