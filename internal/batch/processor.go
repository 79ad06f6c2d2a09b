package batch

import (
	"context"
	"fmt"
	"math"

	"github.com/handiism/album-ratings/internal/model"
	"github.com/handiism/album-ratings/internal/rating"
)

// Catalog is the media catalog albums are read from and ratings written to.
//
// Implemented by plex.Client and library.Library.
type Catalog interface {
	ListAlbums(ctx context.Context) ([]*model.Album, error)
	ListTracks(ctx context.Context, albumKey string) ([]*model.Track, error)

	// SetAlbumRating returns nil only when the catalog confirmed the update.
	SetAlbumRating(ctx context.Context, albumKey string, rating int) error
}

// Processor turns one album into one report record.
type Processor struct {
	catalog    Catalog
	mode       model.Mode
	onProgress func(ProgressEvent)
}

// NewProcessor creates a Processor. In ModeUpdate computed ratings are
// written back through catalog.
func NewProcessor(catalog Catalog, mode model.Mode, onProgress func(ProgressEvent)) *Processor {
	return &Processor{
		catalog:    catalog,
		mode:       mode,
		onProgress: onProgress,
	}
}

// Process rates a single album and returns its record.
//
// Already rated albums are skipped before any track is fetched. A track
// listing error is reported as a warning and handled as an album without
// tracks. In update mode the rating is clamped to 0-10 and written once;
// a failed write yields StatusFailed.
func (p *Processor) Process(ctx context.Context, album *model.Album) model.Record {
	rec := model.Record{
		Artist: album.Artist,
		Album:  album.Title,
		Status: model.StatusSkipped,
	}

	if album.HasRating() {
		rec.Reason = "Album already rated"
		return rec
	}

	tracks, err := p.catalog.ListTracks(ctx, album.Key)
	if err != nil {
		p.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching tracks for %s: %v", album, err), Level: LevelWarning})
		tracks = nil
	}

	result := rating.Calculate(tracks)
	r, ok := result.Rating()
	if !ok {
		rec.Reason, _ = result.Reason()
		p.progress(ProgressEvent{Message: fmt.Sprintf("Skipped %s: %s", album, rec.Reason), Level: LevelVerbose})
		return rec
	}

	rec.Rating = &r
	rec.Status = model.StatusPreview
	if s, ok := rating.Summarize(tracks); ok {
		adjustment := rating.RoundHalfUp(math.Abs(float64(r)-s.Average), 2)
		avg := rating.RoundHalfUp(s.Average, 2)
		rec.Adjustment = &adjustment
		rec.AvgRating = &avg
		rec.Lowest = &s.Lowest
		rec.Highest = &s.Highest
	}

	if p.mode != model.ModeUpdate {
		p.progress(ProgressEvent{Message: fmt.Sprintf("Rated %s: %d", album, r), Level: LevelVerbose})
		return rec
	}

	if err := p.catalog.SetAlbumRating(ctx, album.Key, rating.Clamp(r)); err != nil {
		rec.Status = model.StatusFailed
		p.progress(ProgressEvent{Message: fmt.Sprintf("Error updating %s: %v", album, err), Level: LevelError})
		return rec
	}

	rec.Status = model.StatusSuccess
	p.progress(ProgressEvent{Message: fmt.Sprintf("Updated %s: %d", album, r), Level: LevelSuccess})
	return rec
}

func (p *Processor) progress(event ProgressEvent) {
	if p.onProgress != nil {
		p.onProgress(event)
	}
}
