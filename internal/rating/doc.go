// Package rating derives an album rating from its track ratings.
//
// # Filtering
//
// Filter drops tracks too short to say anything about an album: anything
// under 30 seconds, and anything under a minute rated below 3 (interludes,
// skits, hidden tracks).
//
// # Calculation
//
// Calculate runs, in order:
//
//  1. Skip when no track is rated
//  2. Skip when any track is unrated (nil or 0)
//  3. Skip when fewer than 3 tracks survive Filter
//  4. Average the filtered ratings
//  5. Add an adjustment built from tier shares, a best-track bonus, a
//     bad-track penalty and a no-bad-tracks bonus, capped to [-1, 1]
//  6. Floor the result at the lowest filtered rating and round half-up
//
//	result := rating.Calculate(tracks)
//	if r, ok := result.Rating(); ok {
//	    fmt.Println("album rating:", r)
//	}
//
// # Reporting
//
// Summarize returns average, lowest and highest ratings of the filtered
// tracks, the figures shown next to a computed rating.
package rating
