package internal

import "time"

type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	Attendees   []string
	HTMLLink    string
}

func (e Event) Duration() time.Duration {
	return e.EndsAt.Sub(e.StartsAt)
}
