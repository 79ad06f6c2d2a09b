package report

import (
	"fmt"
	"time"

	"github.com/handiism/album-ratings/internal/model"
)

// Exported describes where a run's records were written.
type Exported struct {
	CSVPath string

	// RunID is set when the records were also stored in SQLite.
	RunID string
}

// Export saves records as a CSV report in dir and, when sqlitePath is not
// empty, appends them to that SQLite database as well.
//
// The CSV is written first; a SQLite failure still returns its path.
func Export(dir, sqlitePath string, mode model.Mode, startedAt time.Time, records []model.Record) (Exported, error) {
	var out Exported

	path, err := Save(dir, mode, startedAt, records)
	if err != nil {
		return out, fmt.Errorf("save csv: %w", err)
	}
	out.CSVPath = path

	if sqlitePath == "" {
		return out, nil
	}

	store, err := OpenSQLite(sqlitePath)
	if err != nil {
		return out, fmt.Errorf("open sqlite: %w", err)
	}
	defer store.Close()

	runID, err := store.SaveRun(mode, startedAt, records)
	if err != nil {
		return out, fmt.Errorf("save sqlite: %w", err)
	}
	out.RunID = runID
	return out, nil
}
