package dto

import (
	"encoding/json"

	"github.com/handiism/album-ratings/internal/model"
	"github.com/handiism/album-ratings/internal/rating"
)

// RatingKey is Plex's item identifier. Plex sends it as a string, but some
// servers and proxies emit a bare number; both are accepted.
type RatingKey string

// UnmarshalJSON accepts "123" or 123.
func (k *RatingKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*k = RatingKey(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*k = RatingKey(n.String())
	return nil
}

// Response is the envelope of every Plex JSON reply.
type Response struct {
	MediaContainer *MediaContainer `json:"MediaContainer"`
}

// MediaContainer holds the listed items.
type MediaContainer struct {
	Size     int        `json:"size"`
	Metadata []Metadata `json:"Metadata"`
}

// Items returns the container's metadata, or nil when the reply has none.
func (r *Response) Items() []Metadata {
	if r.MediaContainer == nil {
		return nil
	}
	return r.MediaContainer.Metadata
}

// Metadata is one album or track entry.
type Metadata struct {
	RatingKey   RatingKey `json:"ratingKey"`
	Title       string    `json:"title"`
	ParentTitle string    `json:"parentTitle"`
	UserRating  *float64  `json:"userRating"`

	// Duration is in milliseconds.
	Duration int64 `json:"duration"`
}

// ToAlbum converts an album entry to a model.Album. For albums the parent
// is the artist.
func (m *Metadata) ToAlbum() *model.Album {
	return &model.Album{
		Key:        string(m.RatingKey),
		Title:      m.Title,
		Artist:     m.ParentTitle,
		UserRating: toRating(m.UserRating),
	}
}

// ToTrack converts a track entry to a model.Track.
func (m *Metadata) ToTrack() *model.Track {
	return &model.Track{
		Title:    m.Title,
		Rating:   toRating(m.UserRating),
		Duration: int(m.Duration / 1000),
	}
}

// toRating rounds Plex's fractional ratings to the 0-10 integer scale.
func toRating(v *float64) *int {
	if v == nil {
		return nil
	}
	r := int(rating.RoundHalfUp(*v, 0))
	return &r
}

