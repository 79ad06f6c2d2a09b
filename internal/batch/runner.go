package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/handiism/album-ratings/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess

	// LevelProgress carries the running counters after each album.
	LevelProgress
)

// ProgressEvent represents a run progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Progress is a snapshot of a run's counters.
type Progress struct {
	Current int
	Total   int
	Stats   model.Stats
}

// String renders the counters as a single status line.
func (p Progress) String() string {
	return fmt.Sprintf("Processed: %d/%d | Updated: %d | Skipped: %d | Failed: %d",
		p.Current, p.Total, p.Stats.Updated(), p.Stats.Count(model.StatusSkipped), p.Stats.Count(model.StatusFailed))
}

// Outcome is the result of a complete (or cancelled) run.
type Outcome struct {
	Mode model.Mode

	// Records holds one record per processed album, in catalog order.
	Records []model.Record

	Stats model.Stats
}

// Runner processes every album of a catalog, one at a time.
type Runner struct {
	catalog    Catalog
	delay      time.Duration
	onProgress func(ProgressEvent)

	mu      sync.RWMutex
	current int
	total   int
	stats   model.Stats
}

// NewRunner creates a Runner. Consecutive albums start at least delay apart
// to keep the request rate against the catalog polite.
func NewRunner(catalog Catalog, delay time.Duration, onProgress func(ProgressEvent)) *Runner {
	return &Runner{
		catalog:    catalog,
		delay:      delay,
		onProgress: onProgress,
	}
}

// Run lists all albums and processes them sequentially in catalog order.
//
// Only a failure to list albums aborts the run. If ctx is cancelled the run
// stops between albums and returns the records gathered so far along with
// ctx.Err().
func (r *Runner) Run(ctx context.Context, mode model.Mode) (*Outcome, error) {
	r.progress(ProgressEvent{Message: "Fetching albums...", Level: LevelInfo})

	albums, err := r.catalog.ListAlbums(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch albums: %w", err)
	}
	r.progress(ProgressEvent{Message: fmt.Sprintf("Found %d albums", len(albums)), Level: LevelInfo})

	r.mu.Lock()
	r.current, r.total, r.stats = 0, len(albums), model.Stats{}
	r.mu.Unlock()

	outcome := &Outcome{Mode: mode, Records: make([]model.Record, 0, len(albums))}
	processor := NewProcessor(r.catalog, mode, r.onProgress)
	limiter := newThrottle(r.delay)

	for i, album := range albums {
		if err := limiter.wait(ctx); err != nil {
			outcome.Stats = r.Progress().Stats
			return outcome, err
		}

		rec := processor.Process(ctx, album)
		outcome.Records = append(outcome.Records, rec)

		r.mu.Lock()
		r.stats.Add(rec.Status)
		r.current = i + 1
		r.mu.Unlock()

		r.progress(ProgressEvent{Message: r.Progress().String(), Level: LevelProgress})
	}

	outcome.Stats = r.Progress().Stats
	return outcome, nil
}

// Progress returns a snapshot of the current run's counters. Safe to call
// from another goroutine while Run is in progress.
func (r *Runner) Progress() Progress {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Progress{Current: r.current, Total: r.total, Stats: r.stats.Clone()}
}

func (r *Runner) progress(event ProgressEvent) {
	if r.onProgress != nil {
		r.onProgress(event)
	}
}

// throttle enforces a minimum interval between consecutive calls to wait.
type throttle struct {
	interval time.Duration
	last     time.Time
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: interval}
}

// wait blocks until interval has passed since the previous call. The first
// call only checks ctx.
func (t *throttle) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !t.last.IsZero() {
		if d := t.interval - time.Since(t.last); d > 0 {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	t.last = time.Now()
	return nil
}
