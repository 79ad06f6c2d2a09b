// Package model defines the core data structures used throughout
// album-ratings.
//
// # Album and Track
//
// Album and Track are catalog snapshots. Ratings are on a 0-10 scale and
// are pointers so that "unrated" is distinct from a rating of 0:
//
//	track := &model.Track{Title: "Song", Rating: model.IntPtr(8), Duration: 215}
//
// # Result
//
// Result is the rating engine's outcome for one album. It is either a
// rating or a skip reason:
//
//	if rating, ok := result.Rating(); ok {
//	    fmt.Println("rated", rating)
//	} else {
//	    reason, _ := result.Reason()
//	    fmt.Println("skipped:", reason)
//	}
//
// # Record and Stats
//
// Record is one report row; Stats counts records per Status over a run.
package model
