// Package calendar validates day and month pairs without a year.
package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidDate is matched by every error returned from Validate.
var ErrInvalidDate = errors.New("invalid day and month")

// InvalidDateError reports a day and month pair that is not on the calendar.
type InvalidDateError struct {
	Day   uint
	Month uint
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%v: %d/%d", ErrInvalidDate, e.Day, e.Month)
}

// Is lets errors.Is(err, ErrInvalidDate) match any InvalidDateError.
func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// daysInMonth is indexed by month. February always has 29 days since there is
// no year to decide whether it is a leap year.
var daysInMonth = [13]uint{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysIn returns the number of days in month, or 0 if month is not 1-12.
func DaysIn(month uint) uint {
	if month < 1 || month > 12 {
		return 0
	}
	return daysInMonth[month]
}

// Validate checks that day is a day of month.
// It returns an *InvalidDateError carrying both values otherwise.
func Validate(day, month uint) error {
	if day < 1 || day > DaysIn(month) {
		return &InvalidDateError{Day: day, Month: month}
	}
	return nil
}
