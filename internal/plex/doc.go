// Package plex provides a catalog backed by a Plex Media Server music
// library.
//
// The package talks to three endpoints:
//
//  1. GET  /library/sections/{library}/albums         lists albums
//  2. GET  /library/metadata/{album}/children         lists an album's tracks
//  3. PUT  /library/sections/{library}/all?type=9&... sets an album rating
//
// # Basic Usage
//
//	client := plex.NewClient(settings.Plex, settings.PlexTimeout(), logger)
//	albums, err := client.ListAlbums(ctx)
//
// # Plex Data Format
//
// Replies are requested as JSON. Every list lives under
// MediaContainer.Metadata; a reply without that list is treated as empty.
// Ratings are 0-10 (possibly fractional, rounded half-up here) and
// durations are milliseconds.
package plex
