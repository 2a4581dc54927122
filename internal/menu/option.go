// Package menu implements the numbered text menu over the birthday service.
package menu

import (
	"errors"
	"strconv"
	"strings"
)

// Option is a numbered menu choice.
type Option int

const (
	OptionAdd Option = iota + 1
	OptionSearch
	OptionLoad
	OptionSave
	OptionQuit
)

// These messages are shown to the user verbatim, so they are written as
// sentences rather than in the usual lower-case error style.
var (
	ErrNotANumber    = errors.New("Invalid input, please enter a valid number")
	ErrUnknownOption = errors.New("Invalid option, please enter a number between 1 and 5.")
)

var optionLabels = map[Option]string{
	OptionAdd:    "Add a person",
	OptionSearch: "Search for birthdays",
	OptionLoad:   "Load",
	OptionSave:   "Save",
	OptionQuit:   "Quit",
}

func (o Option) String() string {
	if label, ok := optionLabels[o]; ok {
		return label
	}
	return "Option(" + strconv.Itoa(int(o)) + ")"
}

// ParseOption parses one line of user input into a menu option.
func ParseOption(input string) (Option, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrNotANumber
	}

	o := Option(n)
	if o < OptionAdd || o > OptionQuit {
		return 0, ErrUnknownOption
	}
	return o, nil
}
