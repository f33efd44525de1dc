package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/chiragkumaaar/calendar-agent/internal/config"
)

func main() {
	var (
		configPath string
		verbose    bool
	)
	flag.StringVar(&configPath, "config", config.DefaultConfigPath(), "path to the config file")
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.Usage = usage
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt)
		<-ch
		cancel()
	}()

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Unable to load config:", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch cmd := args[0]; cmd {
	case ConfigureCommand.Name:
		err = ConfigureCommand.Run(ctx, cfg, verbose, args[1:])
	case ScheduleCommand.Name:
		err = ScheduleCommand.Run(ctx, cfg, verbose, args[1:])
	case FreeBusyCommand.Name:
		err = FreeBusyCommand.Run(ctx, cfg, verbose, args[1:])
	case ParseCommand.Name:
		err = ParseCommand.Run(ctx, cfg, verbose, args[1:])
	case HistoryCommand.Name:
		err = HistoryCommand.Run(ctx, cfg, verbose, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage of %s:\n", os.Args[0])
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range []struct{ Name, Description string }{
		{ConfigureCommand.Name, ConfigureCommand.Description},
		{ScheduleCommand.Name, ScheduleCommand.Description},
		{FreeBusyCommand.Name, FreeBusyCommand.Description},
		{ParseCommand.Name, ParseCommand.Description},
		{HistoryCommand.Name, HistoryCommand.Description},
	} {
		fmt.Fprintf(w, "  %-10s %s\n", c.Name, c.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flag.PrintDefaults()
}
