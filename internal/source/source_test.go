package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/album-ratings/internal/config"
	"github.com/handiism/album-ratings/internal/library"
	"github.com/handiism/album-ratings/internal/plex"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	plexSettings := config.DefaultSettings()
	plexSettings.Plex.Token = "token"
	plexSettings.Plex.MusicLibraryID = "3"

	localSettings := config.DefaultSettings()
	localSettings.Source = config.SourceLocal
	localSettings.Library.Path = dir

	tests := []struct {
		name     string
		settings func() *config.Settings
		check    func(t *testing.T, v any)
		wantErr  bool
	}{
		{
			name:     "plex",
			settings: func() *config.Settings { return plexSettings },
			check: func(t *testing.T, v any) {
				if _, ok := v.(*plex.Client); !ok {
					t.Errorf("got %T, want *plex.Client", v)
				}
			},
		},
		{
			name:     "local",
			settings: func() *config.Settings { return localSettings },
			check: func(t *testing.T, v any) {
				if _, ok := v.(*library.Library); !ok {
					t.Errorf("got %T, want *library.Library", v)
				}
			},
		},
		{
			name:     "plex without token",
			settings: config.DefaultSettings,
			wantErr:  true,
		},
		{
			name: "local path is a file",
			settings: func() *config.Settings {
				s := *localSettings
				s.Library.Path = file
				return &s
			},
			wantErr: true,
		},
		{
			name: "local path missing",
			settings: func() *config.Settings {
				s := *localSettings
				s.Library.Path = filepath.Join(dir, "missing")
				return &s
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := Open(tt.settings(), nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, catalog)
			}
		})
	}
}
