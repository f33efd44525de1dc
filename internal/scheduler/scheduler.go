// Package scheduler drives the pipeline from a natural-language request to
// a confirmed calendar event: parse intent, query availability, pick the
// first fitting slot, create the event.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chiragkumaaar/calendar-agent/internal"
	"github.com/chiragkumaaar/calendar-agent/internal/availability"
	"github.com/chiragkumaaar/calendar-agent/internal/timeframe"
)

var (
	// ErrNoSlot means no free slot of the requested length exists in the
	// requested window. Expected outcome, nothing is created.
	ErrNoSlot = errors.New("no available slot in the requested window")

	// ErrSlotTaken means an attendee became busy between the availability
	// search and event creation.
	ErrSlotTaken = errors.New("selected slot is no longer free")
)

type (
	Mux     = internal.Mux
	Account = internal.Account
	Event   = internal.Event
)

type Parser interface {
	Parse(ctx context.Context, text string) (*internal.MeetingRequest, error)
}

type Storage interface {
	Account(ctx context.Context, id string) (*internal.Account, error)
	RecordMeeting(ctx context.Context, accountID string, event *internal.Event) error
}

type Scheduler struct {
	output  io.Writer
	parser  Parser
	mux     Mux
	storage Storage

	// Now anchors relative time frames ("today", "tomorrow"); tests
	// replace it with a fixed clock.
	Now func() time.Time
}

func New(output io.Writer, parser Parser, mux Mux, storage Storage) *Scheduler {
	if output == nil {
		output = os.Stdout
	}
	return &Scheduler{
		output:  output,
		parser:  parser,
		mux:     mux,
		storage: storage,
		Now:     time.Now,
	}
}

func (s *Scheduler) Schedule(ctx context.Context, accountID, text string) (*Event, error) {
	req, err := s.parser.Parse(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("parsing request: %w", err)
	}

	acc, err := s.storage.Account(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("loading account %q: %w", accountID, err)
	}

	provider, err := s.mux.Get(acc.Platform)
	if err != nil {
		return nil, err
	}

	loc, err := provider.Timezone(ctx, acc)
	if err != nil {
		return nil, fmt.Errorf("resolving calendar timezone: %w", err)
	}

	window := timeframe.Resolve(req.TimeFrame, s.Now(), loc)
	s.logf(acc, "Searching %q between %s and %s", req.Summary(),
		formatDateTime(window.Start), formatDateTime(window.End))

	emails, names := req.SplitAttendees()
	if len(names) > 0 && len(emails) == 0 {
		s.logf(acc, "Attendees parsed as names only (%s); scheduling on your calendar, no invites will be sent",
			strings.Join(names, ", "))
	}
	queryIDs := emails
	if len(queryIDs) == 0 {
		queryIDs = []string{acc.Name}
	}

	busyByCalendar, err := provider.FreeBusy(ctx, acc, queryIDs, window.Start.UTC(), window.End.UTC())
	if err != nil {
		return nil, fmt.Errorf("querying free/busy: %w", err)
	}

	busyLists, err := ingestBusy(busyByCalendar)
	if err != nil {
		return nil, err
	}

	merged := availability.Merge(busyLists)
	candidates := availability.Scan(window, req.PreferredTimes, merged, loc)
	slot, ok := availability.FirstFit(availability.SortCandidates(candidates), req.Duration())
	if !ok {
		return nil, ErrNoSlot
	}

	// Calendars may have changed since the free/busy query; re-check the
	// exact slot before creating anything.
	taken, err := s.slotTaken(ctx, provider, acc, queryIDs, slot)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	event := &Event{
		Summary:     req.Summary(),
		Description: describe(req),
		Location:    req.Location,
		StartsAt:    slot.Start.In(loc),
		EndsAt:      slot.End.In(loc),
		Attendees:   emails,
	}

	created, err := provider.CreateEvent(ctx, acc, event)
	if err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}
	s.logf(acc, "Scheduled %q on %s", created.Summary, formatDateTime(created.StartsAt))

	if err := s.storage.RecordMeeting(ctx, accountID, created); err != nil {
		s.logf(acc, "Unable to record meeting in history: %v", err)
	}
	return created, nil
}

func (s *Scheduler) slotTaken(ctx context.Context, provider internal.Provider, acc *Account, queryIDs []string, slot availability.Interval) (bool, error) {
	busyByCalendar, err := provider.FreeBusy(ctx, acc, queryIDs, slot.Start, slot.End)
	if err != nil {
		return false, fmt.Errorf("re-checking slot: %w", err)
	}
	for _, periods := range busyByCalendar {
		if len(periods) > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (s *Scheduler) logf(acc *Account, format string, a ...any) {
	internal.Logf(s.output, "", acc, format, a...)
}
