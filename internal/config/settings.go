package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-ini/ini"
	"gopkg.in/yaml.v3"
)

// Catalog sources.
const (
	SourcePlex  = "plex"
	SourceLocal = "local"
)

// PlexSettings holds the connection details of a Plex server.
type PlexSettings struct {
	URL            string `json:"url" yaml:"url" ini:"url"`
	Token          string `json:"token" yaml:"token" ini:"token"`
	MusicLibraryID string `json:"music_library_id" yaml:"music_library_id" ini:"music_library_id"`
	ContainerSize  int    `json:"container_size" yaml:"container_size" ini:"container_size"`

	// Timeout is the per-request timeout in seconds.
	Timeout float64 `json:"timeout" yaml:"timeout" ini:"timeout"`
}

// LibrarySettings points at a local directory of tagged MP3 files.
type LibrarySettings struct {
	Path string `json:"path" yaml:"path" ini:"path"`
}

// Settings holds all configuration options.
type Settings struct {
	// Source selects the catalog: plex or local.
	Source string `json:"source" yaml:"source" ini:"source"`

	Plex    PlexSettings    `json:"plex" yaml:"plex" ini:"plex"`
	Library LibrarySettings `json:"library" yaml:"library" ini:"library"`

	// RequestDelay is the minimum interval between two albums, in seconds.
	RequestDelay float64 `json:"request_delay" yaml:"request_delay" ini:"request_delay"`

	// OutputDir is where the CSV report is written.
	OutputDir string `json:"output_dir" yaml:"output_dir" ini:"output_dir"`

	// SQLitePath optionally receives a copy of the report. Empty disables it.
	SQLitePath string `json:"sqlite_path" yaml:"sqlite_path" ini:"sqlite_path"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Source: SourcePlex,
		Plex: PlexSettings{
			URL:           "http://localhost:32400",
			ContainerSize: 2000,
			Timeout:       60,
		},
		RequestDelay: 0.1,
		OutputDir:    ".",
	}
}

// Load reads settings from a file, choosing the format by extension:
// .ini, .yaml/.yml, or JSON for anything else.
//
// A missing file yields the defaults. Values absent from the file keep
// their defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini":
		err = loadINI(data, settings)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, settings)
	default:
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// loadINI reads the layout of the classic config.ini:
//
//	[plex]
//	url = http://localhost:32400
//	token = xxxx
//	music_library_id = 3
//
// Top-level keys and a [library] section are also understood.
func loadINI(data []byte, s *Settings) error {
	f, err := ini.Load(data)
	if err != nil {
		return err
	}
	if err := f.Section(ini.DefaultSection).MapTo(s); err != nil {
		return err
	}
	if err := f.Section("plex").MapTo(&s.Plex); err != nil {
		return err
	}
	return f.Section("library").MapTo(&s.Library)
}

// ApplyEnv overrides Plex connection settings from PLEX_URL, PLEX_TOKEN and
// PLEX_MUSIC_LIBRARY_ID when they are set.
func (s *Settings) ApplyEnv() {
	if v := os.Getenv("PLEX_URL"); v != "" {
		s.Plex.URL = v
	}
	if v := os.Getenv("PLEX_TOKEN"); v != "" {
		s.Plex.Token = v
	}
	if v := os.Getenv("PLEX_MUSIC_LIBRARY_ID"); v != "" {
		s.Plex.MusicLibraryID = v
	}
}

// Validate checks that the selected source is fully configured.
func (s *Settings) Validate() error {
	var errs []error
	switch s.Source {
	case SourcePlex:
		if s.Plex.URL == "" {
			errs = append(errs, errors.New("plex.url is required"))
		}
		if s.Plex.Token == "" {
			errs = append(errs, errors.New("plex.token is required"))
		}
		if s.Plex.MusicLibraryID == "" {
			errs = append(errs, errors.New("plex.music_library_id is required"))
		}
	case SourceLocal:
		if s.Library.Path == "" {
			errs = append(errs, errors.New("library.path is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown source %q", s.Source))
	}
	if s.RequestDelay < 0 {
		errs = append(errs, errors.New("request_delay must not be negative"))
	}
	return errors.Join(errs...)
}

// Delay returns RequestDelay as a duration.
func (s *Settings) Delay() time.Duration {
	return time.Duration(s.RequestDelay * float64(time.Second))
}

// PlexTimeout returns the Plex request timeout as a duration.
func (s *Settings) PlexTimeout() time.Duration {
	return time.Duration(s.Plex.Timeout * float64(time.Second))
}
