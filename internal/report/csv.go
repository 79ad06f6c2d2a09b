package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/handiism/album-ratings/internal/model"
)

// Columns is the fixed column order of the CSV report. ReasonColumn is
// appended when at least one record carries a reason.
var Columns = []string{
	"Artist",
	"Album",
	"Rating",
	"Status",
	"Rating Adjustment",
	"Avg Rating",
	"Lowest Track",
	"Highest Track",
}

// ReasonColumn holds skip reasons.
const ReasonColumn = "Reason"

// WriteCSV writes records as CSV with a header row. Empty values are
// written as empty cells.
//
// Example output:
//
//	Artist,Album,Rating,Status,Rating Adjustment,Avg Rating,Lowest Track,Highest Track,Reason
//	Radiohead,Kid A,9,Preview,0.6,8.4,7,10,
//	The Beatles,Abbey Road,,Skipped,,,,,Album already rated
func WriteCSV(w io.Writer, records []model.Record) error {
	withReason := false
	for _, rec := range records {
		if rec.Reason != "" {
			withReason = true
			break
		}
	}

	header := append([]string(nil), Columns...)
	if withReason {
		header = append(header, ReasonColumn)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Artist,
			rec.Album,
			formatInt(rec.Rating),
			string(rec.Status),
			formatFloat(rec.Adjustment),
			formatFloat(rec.AvgRating),
			formatInt(rec.Lowest),
			formatInt(rec.Highest),
		}
		if withReason {
			row = append(row, rec.Reason)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// FileName returns the report file name for a run started at t, e.g.
// "plex_album_ratings_preview_20240131_235959.csv".
func FileName(mode model.Mode, t time.Time) string {
	return fmt.Sprintf("plex_album_ratings_%s_%s.csv", mode, t.Format("20060102_150405"))
}

// Save writes records to FileName(mode, t) inside dir, creating dir if
// needed, and returns the file path.
func Save(dir string, mode model.Mode, t time.Time, records []model.Record) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(mode, t))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
