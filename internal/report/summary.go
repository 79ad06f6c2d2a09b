package report

import (
	"fmt"
	"io"

	"github.com/handiism/album-ratings/internal/model"
)

// SummaryLine is one labelled count of a run summary.
type SummaryLine struct {
	Label string
	Count int
}

// Summary returns the end-of-run figures for mode, computed from stats.
//
// Preview runs report calculated and skipped albums; update runs report
// successful, skipped and failed updates.
func Summary(mode model.Mode, stats model.Stats) []SummaryLine {
	lines := []SummaryLine{{"Total albums processed", stats.Total()}}
	if mode == model.ModeUpdate {
		return append(lines,
			SummaryLine{"Successfully updated", stats.Count(model.StatusSuccess)},
			SummaryLine{"Skipped", stats.Count(model.StatusSkipped)},
			SummaryLine{"Failed", stats.Count(model.StatusFailed)},
		)
	}
	return append(lines,
		SummaryLine{"Ratings calculated", stats.Count(model.StatusPreview)},
		SummaryLine{"Skipped", stats.Count(model.StatusSkipped)},
	)
}

// WriteSummary prints Summary(mode, stats) under a "Summary:" heading.
func WriteSummary(w io.Writer, mode model.Mode, stats model.Stats) error {
	if _, err := fmt.Fprintln(w, "Summary:"); err != nil {
		return err
	}
	for _, line := range Summary(mode, stats) {
		if _, err := fmt.Fprintf(w, "%s: %d\n", line.Label, line.Count); err != nil {
			return err
		}
	}
	return nil
}
