package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/handiism/album-ratings/internal/config"
	"github.com/handiism/album-ratings/internal/tui"
)

func main() {
	var (
		configFlag  = flag.String("config", "config.ini", "Path to config file (.ini, .yaml or .json)")
		libraryFlag = flag.String("library", "", "Local MP3 library path; implies local source")
		outputFlag  = flag.String("output", "", "Directory for the CSV report (overrides config)")
		sqliteFlag  = flag.String("sqlite", "", "Also store results in this SQLite database")
		logFlag     = flag.String("log", "", "Write diagnostic logs to this file")
	)

	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	settings.ApplyEnv()

	if *libraryFlag != "" {
		settings.Source = config.SourceLocal
		settings.Library.Path = *libraryFlag
	}
	if *outputFlag != "" {
		settings.OutputDir = *outputFlag
	}
	if *sqliteFlag != "" {
		settings.SQLitePath = *sqliteFlag
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if err := tui.Run(settings, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
