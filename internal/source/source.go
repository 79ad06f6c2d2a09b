// Package source builds the album catalog selected by the settings.
package source

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/handiism/album-ratings/internal/batch"
	"github.com/handiism/album-ratings/internal/config"
	"github.com/handiism/album-ratings/internal/library"
	"github.com/handiism/album-ratings/internal/plex"
)

// Open validates settings and returns the catalog they describe: a Plex
// client or a local MP3 library.
func Open(settings *config.Settings, logger *slog.Logger) (batch.Catalog, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	switch settings.Source {
	case config.SourceLocal:
		info, err := os.Stat(settings.Library.Path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("library path %s is not a directory", settings.Library.Path)
		}
		return library.New(settings.Library.Path), nil
	default:
		return plex.NewClient(settings.Plex, settings.PlexTimeout(), logger), nil
	}
}
