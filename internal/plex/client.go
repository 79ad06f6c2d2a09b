package plex

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/handiism/album-ratings/internal/config"
	apphttp "github.com/handiism/album-ratings/internal/http"
	"github.com/handiism/album-ratings/internal/model"
	"github.com/handiism/album-ratings/internal/plex/dto"
)

// albumType is Plex's metadata type for albums.
const albumType = 9

// Client reads albums and tracks from a Plex music library and writes
// album ratings back.
//
// Example usage:
//
//	client := plex.NewClient(settings.Plex, settings.PlexTimeout(), logger)
//
//	albums, err := client.ListAlbums(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, album := range albums {
//	    tracks, _ := client.ListTracks(ctx, album.Key)
//	    fmt.Printf("%s: %d tracks\n", album, len(tracks))
//	}
type Client struct {
	baseURL   string
	libraryID string
	http      *apphttp.Client
	logger    *slog.Logger
}

// NewClient creates a Client for the server described by settings.
//
// The token and container size are sent as X-Plex-Token and
// X-Plex-Container-Size headers on every request. A nil logger discards
// log output.
func NewClient(settings config.PlexSettings, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	header := http.Header{}
	header.Set("X-Plex-Token", settings.Token)
	header.Set("Accept", "application/json")
	if settings.ContainerSize > 0 {
		header.Set("X-Plex-Container-Size", strconv.Itoa(settings.ContainerSize))
	}

	return &Client{
		baseURL:   strings.TrimRight(settings.URL, "/"),
		libraryID: settings.MusicLibraryID,
		http:      apphttp.NewClient(timeout, header),
		logger:    logger,
	}
}

// ListAlbums returns every album of the music library.
//
// A reply without a metadata list yields no albums and no error.
func (c *Client) ListAlbums(ctx context.Context) ([]*model.Album, error) {
	u := fmt.Sprintf("%s/library/sections/%s/albums", c.baseURL, url.PathEscape(c.libraryID))

	items, err := c.list(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}

	albums := make([]*model.Album, 0, len(items))
	for i := range items {
		albums = append(albums, items[i].ToAlbum())
	}
	c.logger.Debug("listed albums", "library", c.libraryID, "count", len(albums))
	return albums, nil
}

// ListTracks returns the tracks of one album. Durations are converted from
// milliseconds to whole seconds.
func (c *Client) ListTracks(ctx context.Context, albumKey string) ([]*model.Track, error) {
	u := fmt.Sprintf("%s/library/metadata/%s/children", c.baseURL, url.PathEscape(albumKey))

	items, err := c.list(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("list tracks of %s: %w", albumKey, err)
	}

	tracks := make([]*model.Track, 0, len(items))
	for i := range items {
		tracks = append(tracks, items[i].ToTrack())
	}
	c.logger.Debug("listed tracks", "album", albumKey, "count", len(tracks))
	return tracks, nil
}

// SetAlbumRating stores rating as the album's user rating. The caller is
// responsible for keeping rating within 0-10.
func (c *Client) SetAlbumRating(ctx context.Context, albumKey string, rating int) error {
	q := url.Values{}
	q.Set("type", strconv.Itoa(albumType))
	q.Set("id", albumKey)
	q.Set("userRating.value", strconv.Itoa(rating))
	u := fmt.Sprintf("%s/library/sections/%s/all?%s", c.baseURL, url.PathEscape(c.libraryID), q.Encode())

	if err := c.http.Put(ctx, u, nil); err != nil {
		c.logger.Warn("rating update failed", "album", albumKey, "rating", rating, "err", err)
		return fmt.Errorf("set rating of %s: %w", albumKey, err)
	}
	c.logger.Debug("rating updated", "album", albumKey, "rating", rating)
	return nil
}

func (c *Client) list(ctx context.Context, u string) ([]dto.Metadata, error) {
	var resp dto.Response
	if err := c.http.GetJSON(ctx, u, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items(), nil
}
