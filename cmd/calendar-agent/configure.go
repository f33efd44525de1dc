package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/chiragkumaaar/calendar-agent/calendar/google"
	"github.com/chiragkumaaar/calendar-agent/internal"
	"github.com/chiragkumaaar/calendar-agent/internal/config"
)

var ConfigureCommand = _configureCommand{
	Name:        "configure",
	Description: "Give the agent access to your Google Calendar",
}

type _configureCommand struct {
	Name        string
	Description string
}

func (s _configureCommand) Run(ctx context.Context, cfg *config.Config, verbose bool, args []string) error {
	storage, err := openStorage(cfg)
	if err != nil {
		return err
	}

	credJSON, err := os.ReadFile(cfg.Google.CredentialsFile)
	if err != nil {
		return fmt.Errorf("reading google credentials file: %w", err)
	}
	googleCal, err := google.NewClient(credJSON)
	if err != nil {
		return fmt.Errorf("creating client: %v", err)
	}
	googleCal.Verbose = verbose

	w := flag.CommandLine.Output()

	authToken, err := googleCal.Login(ctx, func(authURL string) {
		fmt.Fprintf(w, "Go to the following link in your browser\n%s\n", authURL)
	})
	if err != nil {
		return fmt.Errorf("google: logging in: %v", err)
	}
	userEmail, err := googleCal.Email(ctx, authToken)
	if err != nil {
		return fmt.Errorf("google: getting email: %v", err)
	}

	acc := internal.Account{
		Platform: googleProvider,
		Name:     userEmail,
		Auth:     string(authToken),
	}
	fmt.Fprintf(w, "Saving account %q for %q provider...\n", acc.Name, acc.Platform)
	err = storage.AddAccount(ctx, &acc)
	if err != nil {
		return fmt.Errorf("saving account: %v", err)
	}
	fmt.Fprintln(w, "Done! You can now schedule meetings.")
	return nil
}
