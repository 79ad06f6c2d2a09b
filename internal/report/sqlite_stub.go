//go:build !cgo

package report

import (
	"errors"
	"time"

	"github.com/handiism/album-ratings/internal/model"
)

// SQLiteStore is unavailable without cgo.
type SQLiteStore struct{}

// OpenSQLite always fails in non-cgo builds.
func OpenSQLite(path string) (*SQLiteStore, error) {
	return nil, errors.New("SQLite export is not available in non-CGO builds; rebuild with CGO_ENABLED=1")
}

func (s *SQLiteStore) Close() error { return nil }

func (s *SQLiteStore) SaveRun(mode model.Mode, startedAt time.Time, records []model.Record) (string, error) {
	return "", nil
}

func (s *SQLiteStore) CountRecords(runID string) (int, error) { return 0, nil }
