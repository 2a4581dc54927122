package models

// Snapshot is one saved copy of a birthday book.
type Snapshot struct {
	// ID is the unique identifier for the snapshot (UUID format).
	ID string

	// CreatedAt is the Unix timestamp when the snapshot was saved.
	CreatedAt int64

	// Entries are the saved entries, in the order they were added to the book.
	// Empty when the snapshot was loaded as metadata only.
	Entries []Entry
}
