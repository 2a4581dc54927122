package models

// Entry is one friend's birthday record.
//
// The zero value is a usable placeholder in memory but is never a valid
// birthday: day 0 of month 0 is rejected on insertion.
type Entry struct {
	// Name is the friend's name. Names are not required to be unique.
	Name string

	// Day is the day of the month of birth (1-31, depending on Month).
	Day uint

	// Month is the month of birth (1-12).
	Month uint
}
