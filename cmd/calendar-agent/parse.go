package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chiragkumaaar/calendar-agent/internal/config"
	"github.com/chiragkumaaar/calendar-agent/internal/intent"
	"github.com/chiragkumaaar/calendar-agent/internal/llm"
)

var ParseCommand = _parseCommand{
	Name:        "parse",
	Description: "Parse a meeting request into structured JSON without scheduling",
}

type _parseCommand struct {
	Name        string
	Description string
}

func (s _parseCommand) Run(ctx context.Context, cfg *config.Config, verbose bool, args []string) error {
	fs := flag.NewFlagSet(s.Name, flag.ExitOnError)
	fs.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage: %s %s \"<request>\"\n", os.Args[0], fs.Name())
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	text := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if text == "" {
		fs.Usage()
		return errors.New("missing meeting request text")
	}

	llmClient, err := llm.NewClient(cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		return fmt.Errorf("creating llm client: %w", err)
	}

	req, err := intent.NewParser(llmClient).Parse(ctx, text)
	if err != nil {
		return err
	}

	out := struct {
		Attendees       []string `json:"attendees"`
		Topic           string   `json:"topic"`
		TimeFrame       string   `json:"time_frame"`
		DurationMinutes int      `json:"duration_minutes"`
		PreferredTimes  string   `json:"preferred_times"`
		Location        string   `json:"location"`
		Raw             string   `json:"raw"`
	}{
		Attendees:       req.Attendees,
		Topic:           req.Topic,
		TimeFrame:       req.TimeFrame,
		DurationMinutes: req.DurationMinutes,
		PreferredTimes:  req.PreferredTimes,
		Location:        req.Location,
		Raw:             req.Raw,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
