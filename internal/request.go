package internal

import (
	"strings"
	"time"
)

// DefaultDurationMinutes is used when the parsed request carries no duration.
const DefaultDurationMinutes = 60

// MeetingRequest is the structured form of a natural-language scheduling
// request, produced by the intent parser and consumed read-only by the
// scheduler.
type MeetingRequest struct {
	Attendees       []string
	Topic           string
	TimeFrame       string
	DurationMinutes int
	PreferredTimes  string
	Location        string
	Raw             string
}

func (r MeetingRequest) Duration() time.Duration {
	minutes := r.DurationMinutes
	if minutes <= 0 {
		minutes = DefaultDurationMinutes
	}
	return time.Duration(minutes) * time.Minute
}

func (r MeetingRequest) Summary() string {
	if r.Topic != "" {
		return r.Topic
	}
	return "Meeting"
}

// SplitAttendees separates parsed attendees into email addresses and bare
// names. Only emails can be queried for availability or invited.
func (r MeetingRequest) SplitAttendees() (emails, names []string) {
	for _, a := range r.Attendees {
		s := strings.TrimSpace(a)
		switch {
		case s == "":
		case strings.Contains(s, "@"):
			emails = append(emails, s)
		default:
			names = append(names, s)
		}
	}
	return emails, names
}
