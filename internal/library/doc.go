// Package library provides a catalog backed by a local directory of
// tagged MP3 files, for collections that never went through a media
// server.
//
// # Layout
//
//	/music/
//	    Radiohead/
//	        Kid A/
//	            01 Everything In Its Right Place.mp3
//	            02 Kid A.mp3
//
// Each directory containing MP3 files is one album. Albums are keyed by
// their path relative to the root ("Radiohead/Kid A").
//
// # ID3 Frames
//
//   - POPM: track rating, 1-255 scaled to 1-10 (0 or missing means unrated)
//   - TLEN: track length in milliseconds
//   - TXXX "ALBUM RATING": the album rating, read to skip rated albums and
//     written to every track by SetAlbumRating
package library
