package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mmynk/birthdaybook/internal/calendar"
	"github.com/mmynk/birthdaybook/internal/models"
	"github.com/mmynk/birthdaybook/internal/service"
	"github.com/mmynk/birthdaybook/internal/storage"
)

const clearScreen = "\x1b[2J"

// Session is one interactive run of the menu.
type Session struct {
	svc   *service.BirthdayService
	in    *bufio.Scanner
	out   io.Writer
	clear bool
}

// NewSession creates a session reading choices from in and writing to out.
// When clear is set the screen is cleared before the menu is shown.
func NewSession(svc *service.BirthdayService, in io.Reader, out io.Writer, clear bool) *Session {
	return &Session{
		svc:   svc,
		in:    bufio.NewScanner(in),
		out:   out,
		clear: clear,
	}
}

// Run shows the menu until the user quits, the input ends or ctx is done.
// Errors from the operations are shown to the user and do not end the session.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		option, ok := s.choose()
		if !ok {
			return s.in.Err()
		}

		switch option {
		case OptionAdd:
			s.add()
		case OptionSearch:
			s.search()
		case OptionLoad:
			s.load(ctx)
		case OptionSave:
			s.save(ctx)
		case OptionQuit:
			return nil
		}
	}
}

// choose loops until a valid option is read. It reports false at end of input.
func (s *Session) choose() (Option, bool) {
	for {
		s.showMenu()

		line, ok := s.readLine()
		if !ok {
			return 0, false
		}

		option, err := ParseOption(line)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		return option, true
	}
}

func (s *Session) showMenu() {
	if s.clear {
		fmt.Fprint(s.out, clearScreen)
	}
	for o := OptionAdd; o <= OptionQuit; o++ {
		fmt.Fprintf(s.out, " %d. %s\n", o, o)
	}
	fmt.Fprintln(s.out, "Enter your choice: ")
}

func (s *Session) add() {
	name, ok := s.prompt("Name: ")
	if !ok {
		return
	}
	day, month, ok := s.promptDate()
	if !ok {
		return
	}

	err := s.svc.Add(models.Entry{Name: name, Day: day, Month: month})
	var dateErr *calendar.InvalidDateError
	switch {
	case errors.As(err, &dateErr):
		fmt.Fprintf(s.out, "Invalid date %d/%d\n", dateErr.Day, dateErr.Month)
	case err != nil:
		fmt.Fprintln(s.out, err)
	default:
		fmt.Fprintf(s.out, "Added %s (%d/%d)\n", name, day, month)
	}
}

func (s *Session) search() {
	day, month, ok := s.promptDate()
	if !ok {
		return
	}

	count, err := s.svc.Search(s.out, day, month)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	if count == 0 {
		fmt.Fprintln(s.out, "No birthdays found")
	}
}

func (s *Session) load(ctx context.Context) {
	count, err := s.svc.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrSnapshotNotFound):
		fmt.Fprintln(s.out, "Nothing has been saved yet")
	case err != nil:
		fmt.Fprintln(s.out, err)
	default:
		fmt.Fprintf(s.out, "Loaded %d entries\n", count)
		if snapshots, err := s.svc.ListSnapshots(ctx); err == nil {
			fmt.Fprintf(s.out, "%d snapshots saved, the latest was loaded\n", len(snapshots))
		}
	}
}

func (s *Session) save(ctx context.Context) {
	snapshot, err := s.svc.Save(ctx)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprintf(s.out, "Saved %d entries\n", len(snapshot.Entries))
}

func (s *Session) promptDate() (day, month uint, ok bool) {
	day, ok = s.promptNumber("Day: ")
	if !ok {
		return 0, 0, false
	}
	month, ok = s.promptNumber("Month: ")
	if !ok {
		return 0, 0, false
	}
	return day, month, true
}

func (s *Session) promptNumber(label string) (uint, bool) {
	line, ok := s.prompt(label)
	if !ok {
		return 0, false
	}

	n, err := strconv.ParseUint(line, 10, 0)
	if err != nil {
		fmt.Fprintln(s.out, ErrNotANumber)
		return 0, false
	}
	return uint(n), true
}

func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
