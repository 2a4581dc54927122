// Package models defines the core domain models for the birthday book.
//
// # Models
//
//   - Entry: a friend's name with their day and month of birth
//   - Snapshot: a saved, ordered copy of the book's entries
//
// There is no year of birth. Dates are plain (day, month) pairs and are
// validated by the calendar package when an entry is added to a book.
//
// # Design Principles
//
// 1. **Plain values**: models carry no behavior and no references to each other
// 2. **Order matters**: slices of entries are always kept in insertion order
// 3. **Storage agnostic**: persistence details live in the storage packages
package models
