package library

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/handiism/album-ratings/internal/model"
	"github.com/handiism/album-ratings/internal/rating"
)

// AlbumRatingDescription is the TXXX description holding an album rating.
const AlbumRatingDescription = "ALBUM RATING"

const (
	frameLength      = "TLEN"
	frameAlbumArtist = "TPE2"
	framePopularity  = "POPM"
	frameUserText    = "TXXX"

	popmMax = 255
)

// Library is a catalog backed by a directory tree of MP3 files.
//
// Every directory holding at least one .mp3 file is an album; its key is
// the directory path relative to the root, with forward slashes. Track
// ratings come from POPM frames, durations from TLEN frames, and an album
// rating is a TXXX frame described "ALBUM RATING" on any of its tracks.
//
// Example:
//
//	lib := library.New("/music")
//	albums, err := lib.ListAlbums(ctx)
//	// albums[0].Key == "Radiohead/Kid A"
type Library struct {
	root string
}

// New creates a Library rooted at root.
func New(root string) *Library {
	return &Library{root: root}
}

// ListAlbums walks the root and returns one album per directory holding MP3
// files, in lexical path order.
//
// Title and artist come from the first track's TALB and TPE2 (or TPE1)
// frames, falling back to the directory and parent directory names.
func (l *Library) ListAlbums(ctx context.Context) ([]*model.Album, error) {
	var albums []*model.Album

	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		files, err := mp3Files(path)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return nil
		}

		album, err := l.readAlbum(path, files)
		if err != nil {
			return err
		}
		albums = append(albums, album)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", l.root, err)
	}

	return albums, nil
}

// ListTracks reads the tracks of the album stored under key, ordered by
// file name.
func (l *Library) ListTracks(ctx context.Context, key string) ([]*model.Track, error) {
	files, err := mp3Files(l.dir(key))
	if err != nil {
		return nil, err
	}

	tracks := make([]*model.Track, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		track, err := readTrack(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

// SetAlbumRating writes rating into the "ALBUM RATING" TXXX frame of every
// track of the album. Other TXXX frames are preserved.
func (l *Library) SetAlbumRating(ctx context.Context, key string, rating int) error {
	files, err := mp3Files(l.dir(key))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("album %s has no tracks", key)
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeAlbumRating(file, rating); err != nil {
			return fmt.Errorf("write %s: %w", file, err)
		}
	}
	return nil
}

func (l *Library) dir(key string) string {
	return filepath.Join(l.root, filepath.FromSlash(key))
}

func (l *Library) readAlbum(dir string, files []string) (*model.Album, error) {
	key, err := filepath.Rel(l.root, dir)
	if err != nil {
		return nil, err
	}

	album := &model.Album{
		Key:    filepath.ToSlash(key),
		Title:  filepath.Base(dir),
		Artist: filepath.Base(filepath.Dir(dir)),
	}

	for i, file := range files {
		tag, err := id3v2.Open(file, id3v2.Options{Parse: true})
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}

		if i == 0 {
			if v := tag.Album(); v != "" {
				album.Title = v
			}
			if v := tag.GetTextFrame(frameAlbumArtist).Text; v != "" {
				album.Artist = v
			} else if v := tag.Artist(); v != "" {
				album.Artist = v
			}
		}
		if album.UserRating == nil {
			album.UserRating = albumRating(tag)
		}
		tag.Close()
	}

	return album, nil
}

func readTrack(path string) (*model.Track, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer tag.Close()

	track := &model.Track{Title: tag.Title()}
	if track.Title == "" {
		track.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	// TLEN is milliseconds; unknown or malformed lengths stay 0.
	if ms, err := strconv.Atoi(strings.TrimSpace(tag.GetTextFrame(frameLength).Text)); err == nil {
		track.Duration = ms / 1000
	}

	for _, f := range tag.GetFrames(framePopularity) {
		popm, ok := f.(id3v2.PopularimeterFrame)
		if !ok || popm.Rating == 0 {
			continue
		}
		r := int(rating.RoundHalfUp(float64(popm.Rating)*10/popmMax, 0))
		track.Rating = &r
		break
	}

	return track, nil
}

// albumRating returns the value of the "ALBUM RATING" TXXX frame, if any.
func albumRating(tag *id3v2.Tag) *int {
	for _, f := range tag.GetFrames(frameUserText) {
		udtf, ok := f.(id3v2.UserDefinedTextFrame)
		if !ok || !strings.EqualFold(udtf.Description, AlbumRatingDescription) {
			continue
		}
		if r, err := strconv.Atoi(strings.TrimSpace(udtf.Value)); err == nil {
			return &r
		}
	}
	return nil
}

func writeAlbumRating(path string, r int) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	// Re-add every other TXXX frame after clearing them all.
	var keep []id3v2.UserDefinedTextFrame
	for _, f := range tag.GetFrames(frameUserText) {
		if udtf, ok := f.(id3v2.UserDefinedTextFrame); ok && !strings.EqualFold(udtf.Description, AlbumRatingDescription) {
			keep = append(keep, udtf)
		}
	}
	tag.DeleteFrames(frameUserText)
	for _, udtf := range keep {
		tag.AddUserDefinedTextFrame(udtf)
	}

	tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    id3v2.EncodingUTF8,
		Description: AlbumRatingDescription,
		Value:       strconv.Itoa(r),
	})

	return tag.Save()
}

// mp3Files returns the .mp3 files directly inside dir, sorted by name.
func mp3Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".mp3") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
