package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chiragkumaaar/calendar-agent/internal/config"
	"github.com/chiragkumaaar/calendar-agent/internal/intent"
	"github.com/chiragkumaaar/calendar-agent/internal/llm"
	"github.com/chiragkumaaar/calendar-agent/internal/scheduler"
)

var ScheduleCommand = _scheduleCommand{
	Name:        "schedule",
	Description: "Schedule a meeting from a natural language request",
}

type _scheduleCommand struct {
	Name        string
	Description string
}

func (s _scheduleCommand) Run(ctx context.Context, cfg *config.Config, verbose bool, args []string) error {
	var accountID string

	fs := flag.NewFlagSet(s.Name, flag.ExitOnError)
	fs.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage: %s %s [options] \"<request>\"\n", os.Args[0], fs.Name())
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		fs.PrintDefaults()
	}
	fs.StringVar(&accountID, "account", "", "account to schedule from (e.g. google/me@example.com)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Allow multi-word requests without shell quoting.
	text := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if text == "" {
		fs.Usage()
		return errors.New("missing meeting request text")
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

	llmClient, err := llm.NewClient(cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		return fmt.Errorf("creating llm client: %w", err)
	}
	parser := intent.NewParser(llmClient)

	sched := scheduler.New(os.Stdout, parser, mux, storage)
	event, err := sched.Schedule(ctx, acc.ID(), text)
	if errors.Is(err, scheduler.ErrNoSlot) {
		fmt.Println("No available slot found in the requested window.")
		return nil
	}
	if errors.Is(err, scheduler.ErrSlotTaken) {
		fmt.Println("The selected slot was taken in the meantime, please try again.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Meeting scheduled")
	fmt.Printf("Title: %s\n", event.Summary)
	fmt.Printf("Time:  %s -> %s\n",
		event.StartsAt.Format("Mon, 02 Jan 2006, 03:04 PM"),
		event.EndsAt.Format("03:04 PM MST"))
	if len(event.Attendees) > 0 {
		fmt.Printf("Attendees (invites sent): %s\n", strings.Join(event.Attendees, ", "))
	} else {
		fmt.Println("No attendee emails provided, event created on your calendar only.")
	}
	if event.HTMLLink != "" {
		fmt.Printf("Link:  %s\n", event.HTMLLink)
	}
	return nil
}
