package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chiragkumaaar/calendar-agent/internal/config"
)

var HistoryCommand = _historyCommand{
	Name:        "history",
	Description: "List meetings scheduled by the agent",
}

type _historyCommand struct {
	Name        string
	Description string
}

func (s _historyCommand) Run(ctx context.Context, cfg *config.Config, verbose bool, args []string) error {
	var (
		accountID string
		limit     int
	)

	fs := flag.NewFlagSet(s.Name, flag.ExitOnError)
	fs.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage of %s %s:\n", os.Args[0], fs.Name())
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		fs.PrintDefaults()
	}
	fs.StringVar(&accountID, "account", "", "account to list meetings for")
	fs.IntVar(&limit, "limit", 20, "maximum number of meetings to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	storage, err := openStorage(cfg)
	if err != nil {
		return err
	}
	acc, err := resolveAccount(ctx, storage, accountID)
	if err != nil {
		return err
	}

	meetings, err := storage.Meetings(ctx, acc.ID(), limit)
	if err != nil {
		return err
	}
	if len(meetings) == 0 {
		fmt.Println("No meetings scheduled yet.")
		return nil
	}

	for _, m := range meetings {
		line := fmt.Sprintf("%s  %q", m.StartsAt.In(time.Local).Format("02 Jan 06 15:04"), m.Summary)
		if len(m.Attendees) > 0 {
			line += "  with " + strings.Join(m.Attendees, ", ")
		}
		fmt.Println(line)
	}
	return nil
}
