package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chiragkumaaar/calendar-agent/internal"
	"github.com/chiragkumaaar/calendar-agent/internal/config"
)

var FreeBusyCommand = _freeBusyCommand{
	Name:        "freebusy",
	Description: "Show busy intervals for a set of attendees",
}

type _freeBusyCommand struct {
	Name        string
	Description string
}

func (s _freeBusyCommand) Run(ctx context.Context, cfg *config.Config, verbose bool, args []string) error {
	var (
		accountID string
		attendees Strings
		days      int
		start     internal.Date
	)

	fs := flag.NewFlagSet(s.Name, flag.ExitOnError)
	fs.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage of %s %s:\n", os.Args[0], fs.Name())
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		fs.PrintDefaults()
	}
	fs.StringVar(&accountID, "account", "", "account to query from (e.g. google/me@example.com)")
	fs.Var(&attendees, "attendees", "attendee emails (repeatable or comma-separated)")
	fs.IntVar(&days, "days", 7, "number of days from the start to check")
	fs.Var(&start, "start", "start date (e.g. 2025-10-06), defaults to today")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(attendees) == 0 {
		fs.Usage()
		return errors.New("no attendees provided")
	}

	storage, err := openStorage(cfg)
	if err != nil {
		return err
	}
	acc, err := resolveAccount(ctx, storage, accountID)
	if err != nil {
		return err
	}
	mux, err := newMux(cfg, verbose)
	if err != nil {
		return err
	}
	provider, err := mux.Get(acc.Platform)
	if err != nil {
		return err
	}

	from := start.Time
	if start.IsZero() {
		from = internal.NewDateFromTime(time.Now().UTC()).Time
	}
	to := from.AddDate(0, 0, days)

	fmt.Printf("Querying free/busy for %d attendee(s) from %s to %s (UTC)...\n",
		len(attendees), from.Format(internal.DateFormat), to.Format(internal.DateFormat))

	report, err := provider.FreeBusy(ctx, acc, attendees, from, to)
	if err != nil {
		return err
	}

	for _, email := range attendees {
		fmt.Printf("\n=== %s ===\n", email)
		busy := report[email]
		if len(busy) == 0 {
			fmt.Println("No busy slots in the window (appears free).")
			continue
		}
		for _, b := range busy {
			fmt.Printf("Busy: %s -> %s\n", b.Start, b.End)
		}
	}
	return nil
}
