package model

import (
	"fmt"
	"strings"
)

// Status is the final outcome of processing one album.
type Status string

const (
	// StatusSkipped means no rating was computed or the album was already rated.
	StatusSkipped Status = "Skipped"

	// StatusPreview means a rating was computed but not written back.
	StatusPreview Status = "Preview"

	// StatusSuccess means the computed rating was written back.
	StatusSuccess Status = "Success"

	// StatusFailed means the write-back was not confirmed by the catalog.
	StatusFailed Status = "Failed"
)

// Statuses lists every status in report order.
var Statuses = []Status{StatusPreview, StatusSuccess, StatusFailed, StatusSkipped}

// Record is one row of the run report.
//
// Numeric fields are nil when the album was skipped. Reason is empty unless
// the album was skipped.
type Record struct {
	Artist string
	Album  string

	// Rating is the computed album rating.
	Rating *int

	Status Status

	// Adjustment is |Rating - AvgRating|, rounded half-up to 2 decimals.
	Adjustment *float64

	// AvgRating is the mean of the filtered track ratings, rounded half-up to 2 decimals.
	AvgRating *float64

	// Lowest and Highest are the extreme filtered track ratings.
	Lowest  *int
	Highest *int

	Reason string
}

// Mode selects whether computed ratings are written back.
type Mode string

const (
	// ModePreview computes and reports ratings without writing them.
	ModePreview Mode = "preview"

	// ModeUpdate computes ratings and writes them back to the catalog.
	ModeUpdate Mode = "update"
)

// ParseMode accepts "preview", "p", "update" or "u", ignoring case and
// surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "preview", "p":
		return ModePreview, nil
	case "update", "u":
		return ModeUpdate, nil
	}
	return "", fmt.Errorf("invalid mode %q: want preview (p) or update (u)", s)
}
