package rating

import (
	"fmt"
	"math"

	"github.com/handiism/album-ratings/internal/model"
)

// minTracks is the number of tracks that must survive Filter.
const minTracks = 3

// Tier weights and track bonuses/penalties.
const (
	excellentWeight    = 1.2
	veryGoodWeight     = 0.5
	belowAverageWeight = 0.8
	poorWeight         = 1.8

	bestTrackExcellentBonus = 0.7
	bestTrackVeryGoodBonus  = 0.3
	poorTrackPenalty        = 1.5
	weakTrackPenalty        = 0.8
	noBadTracksBonus        = 0.4

	maxAdjustment = 1.0
)

// Calculate derives an album rating from its tracks.
//
// The album is skipped when no track is rated, when any track is unrated
// (nil or 0), or when fewer than 3 tracks survive Filter. Otherwise the
// rating is the average of the filtered ratings plus an adjustment in
// [-1, 1] rewarding excellent tracks and punishing weak ones, floored at the
// worst filtered rating and rounded half-up.
//
// Ratings of exactly 6 belong to no tier: they move the average but earn
// neither tier bonus nor tier penalty.
//
// Calculate never fails; every problem is reported as a skip reason.
//
// Example:
//
//	result := rating.Calculate([]*model.Track{
//	    {Rating: model.IntPtr(9), Duration: 200},
//	    {Rating: model.IntPtr(8), Duration: 180},
//	    {Rating: model.IntPtr(9), Duration: 210},
//	})
//	r, _ := result.Rating() // 10
func Calculate(tracks []*model.Track) model.Result {
	all := ratingsOf(tracks)
	if len(all) == 0 {
		return model.Skipped("No rated tracks")
	}
	rawMin, rawAvg := minOf(all), mean(all)

	unrated := 0
	for _, t := range tracks {
		if t.IsUnrated() {
			unrated++
		}
	}
	if unrated > 0 {
		return model.Skipped(fmt.Sprintf("Has %d unrated tracks (min: %d, avg: %.1f)", unrated, rawMin, rawAvg))
	}

	filtered := Filter(tracks)
	if len(filtered) < minTracks {
		info := ""
		if removed := len(tracks) - len(filtered); removed > 0 {
			info = fmt.Sprintf(" (%d tracks filtered)", removed)
		}
		return model.Skipped(fmt.Sprintf("Too few tracks %d tracks%s: (min: %d, avg: %.1f)", len(filtered), info, rawMin, rawAvg))
	}

	ratings := ratingsOf(filtered)
	lo, hi, avg := minOf(ratings), maxOf(ratings), mean(ratings)

	t := tiersOf(ratings)
	adjustment := t.excellent*excellentWeight + t.veryGood*veryGoodWeight +
		bestTrackBonus(hi) + noBadBonus(lo) -
		t.belowAverage*belowAverageWeight - t.poor*poorWeight -
		badTrackPenalty(lo)
	adjustment = math.Max(-maxAdjustment, math.Min(maxAdjustment, adjustment))

	final := math.Max(float64(lo), avg+adjustment)
	return model.Rated(int(RoundHalfUp(final, 0)))
}

// tiers holds the share of filtered tracks in each rating band.
type tiers struct {
	excellent    float64 // >= 9
	veryGood     float64 // 7-8
	belowAverage float64 // 4-5
	poor         float64 // < 4
}

func tiersOf(ratings []int) tiers {
	var excellent, veryGood, belowAverage, poor int
	for _, r := range ratings {
		switch {
		case r >= 9:
			excellent++
		case r >= 7:
			veryGood++
		case r == 6:
		case r >= 4:
			belowAverage++
		default:
			poor++
		}
	}

	n := float64(len(ratings))
	return tiers{
		excellent:    float64(excellent) / n,
		veryGood:     float64(veryGood) / n,
		belowAverage: float64(belowAverage) / n,
		poor:         float64(poor) / n,
	}
}

func bestTrackBonus(hi int) float64 {
	switch {
	case hi >= 9:
		return bestTrackExcellentBonus
	case hi >= 7:
		return bestTrackVeryGoodBonus
	}
	return 0
}

func badTrackPenalty(lo int) float64 {
	switch {
	case lo < 4:
		return poorTrackPenalty
	case lo < 6:
		return weakTrackPenalty
	}
	return 0
}

func noBadBonus(lo int) float64 {
	if lo >= 6 {
		return noBadTracksBonus
	}
	return 0
}

// RoundHalfUp rounds v to the given number of decimals, sending ties up:
// floor(v*10^d + 0.5) / 10^d. Negative ties therefore round towards zero.
//
//	RoundHalfUp(2.5, 0)      // 3
//	RoundHalfUp(-2.5, 0)     // -2
//	RoundHalfUp(6.449999, 2) // 6.45
func RoundHalfUp(v float64, decimals int) float64 {
	m := math.Pow(10, float64(decimals))
	return math.Floor(v*m+0.5) / m
}

// Clamp bounds a rating to the catalog's 0-10 scale.
func Clamp(r int) int {
	return max(0, min(10, r))
}

func ratingsOf(tracks []*model.Track) []int {
	ratings := make([]int, 0, len(tracks))
	for _, t := range tracks {
		if t.Rating != nil {
			ratings = append(ratings, *t.Rating)
		}
	}
	return ratings
}

func minOf(v []int) int {
	m := v[0]
	for _, x := range v[1:] {
		m = min(m, x)
	}
	return m
}

func maxOf(v []int) int {
	m := v[0]
	for _, x := range v[1:] {
		m = max(m, x)
	}
	return m
}

func mean(v []int) float64 {
	sum := 0
	for _, x := range v {
		sum += x
	}
	return float64(sum) / float64(len(v))
}
