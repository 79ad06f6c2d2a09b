package model

// Result is the outcome of rating one album: either a rating or the reason
// the album was skipped, never both.
//
// The zero value is a skip with an empty reason; construct results with
// Rated or Skipped.
type Result struct {
	rating int
	reason string
	rated  bool
}

// Rated returns a Result carrying a computed rating.
func Rated(rating int) Result {
	return Result{rating: rating, rated: true}
}

// Skipped returns a Result carrying a skip reason.
func Skipped(reason string) Result {
	return Result{reason: reason}
}

// Rating returns the computed rating and true, or 0 and false for a skip.
func (r Result) Rating() (int, bool) {
	return r.rating, r.rated
}

// Reason returns the skip reason and true, or "" and false for a rating.
func (r Result) Reason() (string, bool) {
	if r.rated {
		return "", false
	}
	return r.reason, true
}

// IsRated reports whether the result carries a rating.
func (r Result) IsRated() bool {
	return r.rated
}
