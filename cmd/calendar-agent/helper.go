package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/chiragkumaaar/calendar-agent/calendar"
	"github.com/chiragkumaaar/calendar-agent/calendar/google"
	"github.com/chiragkumaaar/calendar-agent/internal"
	"github.com/chiragkumaaar/calendar-agent/internal/config"
	"github.com/chiragkumaaar/calendar-agent/internal/sqlite"
)

const googleProvider = "google"

// Strings collects repeatable flag values; comma-separated values are split.
type Strings []string

func (i *Strings) String() string {
	return strings.Join(*i, ", ")
}

func (i *Strings) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*i = append(*i, v)
		}
	}
	return nil
}

func openStorage(cfg *config.Config) (*sqlite.Storage, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Storage.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	db, err := sql.Open(sqlite.DriverName, cfg.Storage.DBPath)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStorage(db), nil
}

func newMux(cfg *config.Config, verbose bool) (internal.Mux, error) {
	credJSON, err := os.ReadFile(cfg.Google.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading google credentials file: %w", err)
	}

	googleCal, err := google.NewClient(credJSON)
	if err != nil {
		return nil, err
	}
	googleCal.Verbose = verbose

	mux := calendar.NewMux()
	mux.Register(googleProvider, googleCal)
	return mux, nil
}

// resolveAccount picks the configured account: the explicit flag wins, a
// sole stored account is used implicitly, anything else is ambiguous.
func resolveAccount(ctx context.Context, storage *sqlite.Storage, flagValue string) (*internal.Account, error) {
	if flagValue != "" {
		return storage.Account(ctx, flagValue)
	}

	accounts, err := storage.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	switch len(accounts) {
	case 0:
		return nil, fmt.Errorf("no accounts configured, run %q first", ConfigureCommand.Name)
	case 1:
		return accounts[0], nil
	}

	ids := make([]string, len(accounts))
	for i, acc := range accounts {
		ids[i] = acc.ID()
	}
	return nil, fmt.Errorf("multiple accounts configured, pick one with -account: %s", strings.Join(ids, ", "))
}
