// Package config provides configuration management for album-ratings.
//
// This package handles:
//   - Default configuration values
//   - Loading settings from JSON, YAML or INI files
//   - Environment overrides for the Plex connection
//   - Validation of the selected catalog source
//
// # Loading from File
//
//	settings, err := config.Load("config.ini")
//	if err != nil {
//	    // malformed file; a missing file yields defaults
//	}
//	settings.ApplyEnv()
//	if err := settings.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// The INI layout matches the classic config.ini:
//
//	[plex]
//	url = http://localhost:32400
//	token = xxxxxxxx
//	music_library_id = 3
//
// Settings are passed explicitly to the components that need them; nothing
// in this package is global.
package config
