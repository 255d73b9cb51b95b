package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/queuedesk/internal/database/repository"
	"github.com/jask/queuedesk/internal/prefs"
)

const (
	minutesPerDay = 24 * 60
	maxWait       = 8 * 60
)

type QueueInput struct {
	Date           string
	Location       string
	EntryTime      string
	CompletionTime string
}

// QueueService records and lists visits to campus queues.
type QueueService struct {
	Entries *repository.QueueEntryRepo
	Options prefs.Options
}

func (s *QueueService) Record(ctx context.Context, actor Actor, in QueueInput) (repository.QueueEntry, error) {
	if !actor.SignedIn() {
		return repository.QueueEntry{}, ErrForbidden
	}
	date := strings.TrimSpace(in.Date)
	location := strings.TrimSpace(in.Location)
	if date == "" || location == "" || strings.TrimSpace(in.EntryTime) == "" || strings.TrimSpace(in.CompletionTime) == "" {
		return repository.QueueEntry{}, ErrMissingFields
	}
	if !s.Options.HasLocation(location) {
		return repository.QueueEntry{}, fmt.Errorf("location %q: %w", location, ErrUnknownOption)
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return repository.QueueEntry{}, fmt.Errorf("date %q: %w", date, ErrInvalidTime)
	}
	entry, err := ParseClock(in.EntryTime)
	if err != nil {
		return repository.QueueEntry{}, fmt.Errorf("entry time: %w", err)
	}
	done, err := ParseClock(in.CompletionTime)
	if err != nil {
		return repository.QueueEntry{}, fmt.Errorf("completion time: %w", err)
	}

	e := repository.QueueEntry{
		ID:             uuid.NewString(),
		UserID:         actor.UserID,
		Location:       location,
		Date:           date,
		EntryTime:      FormatClock(entry),
		CompletionTime: FormatClock(done),
		WaitingMinutes: WaitingMinutes(in.EntryTime, in.CompletionTime),
	}
	if err := s.Entries.Insert(ctx, e); err != nil {
		return repository.QueueEntry{}, fmt.Errorf("insert queue entry: %w", err)
	}
	return e, nil
}

// List returns the newest entries first: every entry for admins, the caller's
// own otherwise. A limit of zero means no limit.
func (s *QueueService) List(ctx context.Context, actor Actor, limit int) ([]repository.QueueEntry, error) {
	if !actor.SignedIn() {
		return nil, ErrForbidden
	}
	f := repository.QueueEntryFilters{Limit: limit}
	if !actor.IsAdmin() {
		f.UserID = actor.UserID
	}
	entries, err := s.Entries.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list queue entries: %w", err)
	}
	return entries, nil
}

// ParseClock parses H:MM or HH:MM into minutes after midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidTime)
	}
	h, errH := strconv.Atoi(hh)
	m, errM := strconv.Atoi(mm)
	if errH != nil || errM != nil || len(mm) != 2 || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidTime)
	}
	return h*60 + m, nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WaitingMinutes is the time from entry to completion. A completion at or
// before the entry is taken to be on the next day. Unparsable times and waits
// over eight hours count as zero.
func WaitingMinutes(entry, completion string) int {
	start, err := ParseClock(entry)
	if err != nil {
		return 0
	}
	end, err := ParseClock(completion)
	if err != nil {
		return 0
	}
	if end <= start {
		end += minutesPerDay
	}
	wait := end - start
	if wait > maxWait {
		return 0
	}
	return wait
}
