package rating

import "github.com/handiism/album-ratings/internal/model"

// Summary describes the filtered tracks of an album for reporting.
type Summary struct {
	Count   int
	Average float64
	Lowest  int
	Highest int
}

// Summarize computes rating statistics over Filter(tracks), ignoring
// unrated tracks. It returns false when no filtered track carries a rating.
func Summarize(tracks []*model.Track) (Summary, bool) {
	ratings := ratingsOf(Filter(tracks))
	if len(ratings) == 0 {
		return Summary{}, false
	}
	return Summary{
		Count:   len(ratings),
		Average: mean(ratings),
		Lowest:  minOf(ratings),
		Highest: maxOf(ratings),
	}, true
}
