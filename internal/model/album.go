package model

import "fmt"

// Album is a snapshot of one album as listed by the catalog.
//
// Albums are fetched once per run and never modified afterwards. The Key is
// opaque to everything except the catalog that produced it: a Plex
// ratingKey, or a directory path relative to a local library root.
//
// Example:
//
//	rating := 8
//	album := &Album{Key: "1234", Title: "Abbey Road", Artist: "The Beatles", UserRating: &rating}
//	album.HasRating() // true, the album will be skipped
type Album struct {
	// Key identifies the album within its catalog.
	Key string

	// Title is the album title.
	Title string

	// Artist is the album artist name.
	Artist string

	// UserRating is the rating already stored for the album.
	// Nil means the album has not been rated yet.
	UserRating *int
}

// HasRating returns true if the album already carries a user rating.
func (a *Album) HasRating() bool {
	return a.UserRating != nil
}

// String returns "Artist - Title".
func (a *Album) String() string {
	return fmt.Sprintf("%s - %s", a.Artist, a.Title)
}
