// Package report renders run results: the CSV export, the end-of-run
// summary, and an optional SQLite copy.
//
// # CSV Export
//
//	path, err := report.Save(settings.OutputDir, outcome.Mode, startedAt, outcome.Records)
//	// ./plex_album_ratings_preview_20240131_235959.csv
//
// Columns keep a fixed order; empty values become empty cells so the file
// loads cleanly into spreadsheets and dataframes.
//
// # Summary
//
//	report.WriteSummary(os.Stdout, outcome.Mode, outcome.Stats)
//
// # SQLite
//
// SQLiteStore appends each run to a database under a UUID run id. It needs
// a cgo build; without cgo OpenSQLite returns an error.
package report
