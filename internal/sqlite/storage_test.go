package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiragkumaaar/calendar-agent/internal"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	db, err := sql.Open(DriverName, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStorage(db)
}

func TestAccountRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	acc := &internal.Account{Platform: "google", Name: "me@example.com", Auth: `{"access_token":"x"}`}
	require.NoError(t, s.AddAccount(ctx, acc))

	got, err := s.Account(ctx, "google/me@example.com")
	require.NoError(t, err)
	assert.Equal(t, "google", got.Platform)
	assert.Equal(t, "me@example.com", got.Name)
	assert.Equal(t, acc.Auth, got.Auth)
}

func TestAddAccountUpdatesAuth(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	acc := &internal.Account{Platform: "google", Name: "me@example.com", Auth: "old"}
	require.NoError(t, s.AddAccount(ctx, acc))
	acc.Auth = "new"
	require.NoError(t, s.AddAccount(ctx, acc))

	got, err := s.Account(ctx, acc.ID())
	require.NoError(t, err)
	assert.Equal(t, "new", got.Auth)

	accounts, err := s.Accounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestAccountNotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Account(context.Background(), "google/nobody@example.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestRecordAndListMeetings(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	acc := &internal.Account{Platform: "google", Name: "me@example.com", Auth: "{}"}
	require.NoError(t, s.AddAccount(ctx, acc))

	first := &internal.Event{
		ID:        "evt-1",
		Summary:   "project sync",
		StartsAt:  time.Date(2025, time.October, 7, 9, 45, 0, 0, time.UTC),
		EndsAt:    time.Date(2025, time.October, 7, 10, 15, 0, 0, time.UTC),
		Attendees: []string{"alice@example.com", "bob@example.com"},
		HTMLLink:  "https://calendar.example.com/evt-1",
	}
	second := &internal.Event{
		ID:       "evt-2",
		Summary:  "retro",
		StartsAt: time.Date(2025, time.October, 8, 13, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2025, time.October, 8, 14, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.RecordMeeting(ctx, acc.ID(), first))
	require.NoError(t, s.RecordMeeting(ctx, acc.ID(), second))

	meetings, err := s.Meetings(ctx, acc.ID(), 10)
	require.NoError(t, err)
	require.Len(t, meetings, 2)

	// Most recent first.
	assert.Equal(t, "evt-2", meetings[0].ID)
	assert.Equal(t, "evt-1", meetings[1].ID)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, meetings[1].Attendees)
	assert.Empty(t, meetings[0].Attendees)
	assert.Equal(t, first.StartsAt, meetings[1].StartsAt)
}
