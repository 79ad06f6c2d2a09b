package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// StatusError is returned when a server answers with a non-200 status.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.URL, e.Code, e.Status)
}

// Client wraps HTTP operations with catalog-specific configuration.
//
// Client provides:
//   - Default headers sent with every request (tokens, Accept)
//   - Timeout handling
//   - JSON decoding of response bodies
//   - StatusError for anything but 200 OK
//
// Example usage:
//
//	client := NewClient(30*time.Second, http.Header{"Accept": {"application/json"}})
//
//	var body struct{ Name string }
//	err := client.GetJSON(ctx, "http://plex.local:32400/identity", nil, &body)
type Client struct {
	httpClient *http.Client
	userAgent  string
	header     http.Header
}

// NewClient creates a new HTTP client.
//
// A zero timeout falls back to 60 seconds. The given header is copied and
// sent with every request.
func NewClient(timeout time.Duration, header http.Header) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "album-ratings",
		header:    header.Clone(),
	}
}

// Do performs a request and returns the response body.
//
// Per-request headers are applied on top of the client's default headers.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK (a *StatusError)
//   - Reading the body fails
func (c *Client) Do(ctx context.Context, method, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range c.header {
		req.Header[k] = v
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Method: method, URL: req.URL.Redacted(), Code: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

// Get performs a GET request and returns the response body.
func (c *Client) Get(ctx context.Context, url string, header http.Header) ([]byte, error) {
	return c.Do(ctx, http.MethodGet, url, header)
}

// GetJSON performs a GET request and decodes the JSON body into v.
//
// Example:
//
//	var container dto.Response
//	err := client.GetJSON(ctx, albumsURL, nil, &container)
func (c *Client) GetJSON(ctx context.Context, url string, header http.Header, v any) error {
	body, err := c.Get(ctx, url, header)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// Put performs a PUT request without a body and discards the response.
func (c *Client) Put(ctx context.Context, url string, header http.Header) error {
	_, err := c.Do(ctx, http.MethodPut, url, header)
	return err
}
