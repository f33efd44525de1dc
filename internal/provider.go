package internal

import (
	"context"
	"time"
)

type Mux interface {
	Get(platform string) (Provider, error)
}

// BusyPeriod is one occupied range as reported by a calendar platform,
// timestamps still in their RFC 3339 wire form.
type BusyPeriod struct {
	Start string
	End   string
}

type Provider interface {
	Login(_ context.Context, notify func(authURL string)) ([]byte, error)
	Email(_ context.Context, auth []byte) (string, error)
	Timezone(_ context.Context, _ *Account) (*time.Location, error)
	FreeBusy(_ context.Context, _ *Account, emails []string, from, to time.Time) (map[string][]BusyPeriod, error)
	CreateEvent(_ context.Context, _ *Account, _ *Event) (*Event, error)
}
