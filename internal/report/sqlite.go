//go:build cgo

package report

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/handiism/album-ratings/internal/model"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS runs(
	id TEXT PRIMARY KEY,
	mode TEXT NOT NULL,
	started_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS records(
	run_id TEXT NOT NULL REFERENCES runs(id),
	position INTEGER NOT NULL,
	artist TEXT,
	album TEXT,
	rating INTEGER,
	status TEXT NOT NULL,
	rating_adjustment REAL,
	avg_rating REAL,
	lowest_track INTEGER,
	highest_track INTEGER,
	reason TEXT,
	PRIMARY KEY (run_id, position)
);`

// SQLiteStore keeps run reports in a SQLite database, one row per record,
// grouped by a generated run id.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun stores records under a new run id and returns that id.
func (s *SQLiteStore) SaveRun(mode model.Mode, startedAt time.Time, records []model.Record) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}
	if _, err := tx.Exec("INSERT INTO runs (id, mode, started_at) VALUES (?, ?, ?)", runID, string(mode), startedAt.UTC().Format(time.RFC3339)); err != nil {
		tx.Rollback()
		return "", err
	}

	stmt, err := tx.Prepare(`INSERT INTO records
		(run_id, position, artist, album, rating, status, rating_adjustment, avg_rating, lowest_track, highest_track, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return "", err
	}
	defer stmt.Close()

	for i, rec := range records {
		var reason sql.NullString
		if rec.Reason != "" {
			reason = sql.NullString{String: rec.Reason, Valid: true}
		}
		_, err := stmt.Exec(runID, i, rec.Artist, rec.Album, rec.Rating, string(rec.Status),
			rec.Adjustment, rec.AvgRating, rec.Lowest, rec.Highest, reason)
		if err != nil {
			tx.Rollback()
			return "", err
		}
	}

	return runID, tx.Commit()
}

// CountRecords returns the number of records stored for a run.
func (s *SQLiteStore) CountRecords(runID string) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM records WHERE run_id = ?", runID).Scan(&count)
	return count, err
}
