// Package http provides the HTTP client used to talk to catalog services.
//
// The Client in this package handles:
//   - Default headers (authentication tokens, Accept) on every request
//   - Timeout handling
//   - JSON decoding
//   - Non-200 responses reported as *StatusError
//
// # Basic Usage
//
//	client := http.NewClient(30*time.Second, header)
//
//	// Decode a JSON document
//	var v map[string]any
//	err := client.GetJSON(ctx, "http://plex.local:32400/library/sections", nil, &v)
//
//	// Fire a PUT and only care whether it returned 200
//	err = client.Put(ctx, updateURL, nil)
//
// # Errors
//
// Use errors.As to inspect the status of a failed request:
//
//	var se *http.StatusError
//	if errors.As(err, &se) && se.Code == 401 {
//	    // bad token
//	}
package http
