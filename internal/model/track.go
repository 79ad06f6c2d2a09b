package model

// Track is a single track of an album.
//
// Ratings use a 0-10 scale. A nil Rating means the track was never rated;
// a rating of 0 is treated the same way by the rating engine.
type Track struct {
	// Title is the track title.
	Title string

	// Rating is the user rating, nil when unrated.
	Rating *int

	// Duration is the track length in whole seconds, 0 if unknown.
	Duration int
}

// RatingValue returns the rating, or 0 when the track is unrated.
func (t *Track) RatingValue() int {
	if t.Rating == nil {
		return 0
	}
	return *t.Rating
}

// IsUnrated reports whether the track has no rating or a rating of 0.
func (t *Track) IsUnrated() bool {
	return t.Rating == nil || *t.Rating == 0
}

// IntPtr returns a pointer to v.
//
// Handy for building tracks and albums with literal ratings:
//
//	track := &Track{Title: "Intro", Rating: IntPtr(7), Duration: 95}
func IntPtr(v int) *int {
	return &v
}
