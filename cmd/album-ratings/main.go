package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/handiism/album-ratings/internal/batch"
	"github.com/handiism/album-ratings/internal/config"
	"github.com/handiism/album-ratings/internal/model"
	"github.com/handiism/album-ratings/internal/report"
	"github.com/handiism/album-ratings/internal/source"
)

func main() {
	// Command line flags
	var (
		modeFlag    = flag.String("mode", "", "Run mode: preview (p) or update (u); prompts when empty")
		configFlag  = flag.String("config", "config.ini", "Path to config file (.ini, .yaml or .json)")
		sourceFlag  = flag.String("source", "", "Catalog source: plex or local (overrides config)")
		libraryFlag = flag.String("library", "", "Local MP3 library path; implies -source local")
		outputFlag  = flag.String("output", "", "Directory for the CSV report (overrides config)")
		sqliteFlag  = flag.String("sqlite", "", "Also store results in this SQLite database")
		delayFlag   = flag.Duration("delay", -1, "Minimum interval between albums (overrides config)")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// Load config
	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	settings.ApplyEnv()

	// Apply flags
	if *sourceFlag != "" {
		settings.Source = *sourceFlag
	}
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
	if *delayFlag >= 0 {
		settings.RequestDelay = delayFlag.Seconds()
	}

	level := slog.LevelWarn
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	catalog, err := source.Open(settings, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get mode
	var mode model.Mode
	if *modeFlag != "" {
		mode, err = model.ParseMode(*modeFlag)
	} else {
		mode, err = promptMode(os.Stdin, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	fmt.Printf("\nRunning in %s mode\n", strings.ToUpper(string(mode)))

	printer := &eventPrinter{verbose: *verboseFlag}
	runner := batch.NewRunner(catalog, settings.Delay(), printer.print)

	startedAt := time.Now()
	outcome, err := runner.Run(ctx, mode)
	printer.endLine()
	if outcome == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if ctx.Err() != nil {
			os.Exit(130)
		}
		os.Exit(1)
	}

	if err != nil {
		fmt.Println("\nRun cancelled, saving partial results.")
	} else {
		fmt.Println("\nDone!")
	}

	exported, saveErr := report.Export(settings.OutputDir, settings.SQLitePath, mode, startedAt, outcome.Records)

	fmt.Println()
	report.WriteSummary(os.Stdout, mode, outcome.Stats)
	if exported.CSVPath != "" {
		fmt.Printf("Results saved to %s\n", exported.CSVPath)
	}
	if exported.RunID != "" {
		fmt.Printf("Run %s stored in %s\n", exported.RunID, settings.SQLitePath)
	}
	if saveErr != nil {
		fmt.Fprintf(os.Stderr, "Error saving results: %v\n", saveErr)
	}

	switch {
	case err != nil:
		os.Exit(130)
	case saveErr != nil:
		os.Exit(1)
	}
}
