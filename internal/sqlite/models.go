package sqlite

import (
	"strings"
	"time"

	"github.com/chiragkumaaar/calendar-agent/internal"
)

type Account struct {
	ID   string `db:"id"`
	Auth string `db:"auth"`
}

func (a Account) Convert() *internal.Account {
	acc := internal.Account{
		Auth: a.Auth,
	}
	acc.Platform, acc.Name, _ = strings.Cut(a.ID, "/")
	return &acc
}

type Meeting struct {
	EventID   string `db:"event_id"`
	Summary   string `db:"summary"`
	StartsAt  string `db:"starts_at"`
	EndsAt    string `db:"ends_at"`
	Attendees string `db:"attendees"`
	HTMLLink  string `db:"html_link"`
}

func (m Meeting) Convert() (*internal.Event, error) {
	startsAt, err := time.Parse(time.RFC3339, m.StartsAt)
	if err != nil {
		return nil, err
	}
	endsAt, err := time.Parse(time.RFC3339, m.EndsAt)
	if err != nil {
		return nil, err
	}

	var attendees []string
	if m.Attendees != "" {
		attendees = strings.Split(m.Attendees, ",")
	}
	return &internal.Event{
		ID:        m.EventID,
		Summary:   m.Summary,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		Attendees: attendees,
		HTMLLink:  m.HTMLLink,
	}, nil
}
