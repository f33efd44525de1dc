package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/chiragkumaaar/calendar-agent/internal"
)

const DriverName = "sqlite3"

var ErrAccountNotFound = errors.New("sqlite: account not found")

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sql.DB) *Storage {
	s := &Storage{
		db: sqlx.NewDb(db, DriverName),
	}
	err := s.RunMigrations()
	if err != nil {
		panic(fmt.Sprintf("sqlite: running migrations: %v", err))
	}
	return s
}

func (s Storage) AddAccount(ctx context.Context, account *internal.Account) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (id, auth) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET auth=?;
	`, account.ID(), account.Auth, account.Auth)
	return err
}

func (s Storage) Account(ctx context.Context, id string) (*internal.Account, error) {
	var acc Account
	err := s.db.GetContext(ctx, &acc, `
		SELECT id, auth FROM accounts WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return acc.Convert(), nil
}

func (s Storage) Accounts(ctx context.Context) ([]*internal.Account, error) {
	var accs []Account
	err := s.db.SelectContext(ctx, &accs, `
		SELECT id, auth FROM accounts ORDER BY id
	`)
	if err != nil {
		return nil, err
	}

	res := make([]*internal.Account, len(accs))
	for i, a := range accs {
		res[i] = a.Convert()
	}
	return res, nil
}

func (s Storage) RecordMeeting(ctx context.Context, accountID string, event *internal.Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO meetings (account_id, event_id, summary, starts_at, ends_at, attendees, html_link, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, accountID, event.ID, event.Summary,
		event.StartsAt.UTC().Format(time.RFC3339), event.EndsAt.UTC().Format(time.RFC3339),
		strings.Join(event.Attendees, ","), event.HTMLLink,
		time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s Storage) Meetings(ctx context.Context, accountID string, limit int) ([]*internal.Event, error) {
	if limit <= 0 {
		limit = 20
	}

	var meetings []Meeting
	err := s.db.SelectContext(ctx, &meetings, `
		SELECT event_id, summary, starts_at, ends_at, attendees, html_link
		FROM meetings
		WHERE account_id = ?
		ORDER BY starts_at DESC
		LIMIT ?
	`, accountID, limit)
	if err != nil {
		return nil, err
	}

	res := make([]*internal.Event, 0, len(meetings))
	for _, m := range meetings {
		event, err := m.Convert()
		if err != nil {
			return nil, err
		}
		res = append(res, event)
	}
	return res, nil
}
