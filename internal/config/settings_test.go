package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Source != SourcePlex || s.Plex.ContainerSize != 2000 || s.Delay() != 100*time.Millisecond {
		t.Errorf("Load() = %+v, want defaults", s)
	}
}

func TestLoad_INI(t *testing.T) {
	path := writeFile(t, "config.ini", `
[plex]
url = http://plex.local:32400
token = abc123
music_library_id = 3
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Plex.URL != "http://plex.local:32400" || s.Plex.Token != "abc123" || s.Plex.MusicLibraryID != "3" {
		t.Errorf("Plex = %+v", s.Plex)
	}
	if s.Plex.ContainerSize != 2000 {
		t.Errorf("ContainerSize = %d, want default 2000", s.Plex.ContainerSize)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
source: local
library:
  path: /music
request_delay: 0.5
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Source != SourceLocal || s.Library.Path != "/music" {
		t.Errorf("Load() = %+v", s)
	}
	if s.Delay() != 500*time.Millisecond {
		t.Errorf("Delay() = %v, want 500ms", s.Delay())
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"plex": {"token": "t", "music_library_id": "7"}, "output_dir": "/tmp/out"}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Plex.URL != "http://localhost:32400" {
		t.Errorf("URL = %q, want default", s.Plex.URL)
	}
	if s.Plex.Token != "t" || s.Plex.MusicLibraryID != "7" || s.OutputDir != "/tmp/out" {
		t.Errorf("Load() = %+v", s)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, "config.json", `{"plex": `)
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for malformed JSON")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PLEX_URL", "http://env:32400")
	t.Setenv("PLEX_TOKEN", "envtoken")
	t.Setenv("PLEX_MUSIC_LIBRARY_ID", "")

	s := DefaultSettings()
	s.Plex.MusicLibraryID = "4"
	s.ApplyEnv()

	if s.Plex.URL != "http://env:32400" || s.Plex.Token != "envtoken" {
		t.Errorf("ApplyEnv() Plex = %+v", s.Plex)
	}
	if s.Plex.MusicLibraryID != "4" {
		t.Errorf("empty env var should not override, got %q", s.Plex.MusicLibraryID)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Settings)
		wantErr bool
	}{
		{"plex complete", func(s *Settings) { s.Plex.Token = "t"; s.Plex.MusicLibraryID = "1" }, false},
		{"plex missing token", func(s *Settings) { s.Plex.MusicLibraryID = "1" }, true},
		{"local complete", func(s *Settings) { s.Source = SourceLocal; s.Library.Path = "/music" }, false},
		{"local missing path", func(s *Settings) { s.Source = SourceLocal }, true},
		{"unknown source", func(s *Settings) { s.Source = "spotify" }, true},
		{"negative delay", func(s *Settings) {
			s.Source = SourceLocal
			s.Library.Path = "/music"
			s.RequestDelay = -1
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
