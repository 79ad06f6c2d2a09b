package rating

import "github.com/handiism/album-ratings/internal/model"

const (
	// minDuration is the length below which a track never counts.
	minDuration = 30

	// shortDuration is the length below which a poorly rated track is ignored.
	shortDuration = 60

	// shortMinRating is the rating a short track needs to count.
	shortMinRating = 3
)

// Filter returns the tracks that count towards an album rating.
//
// A track is dropped when it is shorter than 30 seconds, or shorter than
// 60 seconds with a rating below 3 (an unrated track counts as 0 here).
// Order is preserved and the input slice is not modified.
//
// The same predicate feeds both Calculate and Summarize so the reported
// statistics always describe the tracks the rating was computed from.
func Filter(tracks []*model.Track) []*model.Track {
	filtered := make([]*model.Track, 0, len(tracks))
	for _, t := range tracks {
		if keep(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func keep(t *model.Track) bool {
	if t.Duration < minDuration {
		return false
	}
	return !(t.Duration < shortDuration && t.RatingValue() < shortMinRating)
}
