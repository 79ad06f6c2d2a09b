// Package batch provides the orchestration logic for rating every album
// of a catalog.
//
// # Runner
//
// The Runner coordinates a run:
//
//  1. List all albums from the catalog
//  2. Process albums one at a time, in catalog order
//  3. Count each record's status
//  4. Report progress after every album
//
// # Basic Usage
//
//	runner := batch.NewRunner(catalog, settings.Delay(), func(event batch.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	outcome, err := runner.Run(ctx, model.ModePreview)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Processor
//
// The Processor handles one album: skip if already rated, fetch tracks,
// compute the rating, attach filtered-track statistics and, in update
// mode, write the rating back. It never returns an error; every outcome is
// a model.Record.
//
// # Rate Limiting
//
// Albums are never processed concurrently. Consecutive albums start at
// least the configured delay apart to bound the request rate against the
// catalog service.
//
// # Progress Tracking
//
// Progress is reported via a callback receiving ProgressEvent values. After
// each album a LevelProgress event carries the running counters:
//
//	Processed: 12/340 | Updated: 9 | Skipped: 3 | Failed: 0
//
// Runner.Progress can be polled from another goroutine instead.
package batch
