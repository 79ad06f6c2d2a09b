package plex

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/handiism/album-ratings/internal/config"
	apphttp "github.com/handiism/album-ratings/internal/http"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.PlexSettings{
		URL:            srv.URL + "/",
		Token:          "tok",
		MusicLibraryID: "3",
		ContainerSize:  2000,
	}, time.Second, nil)
}

func TestClient_ListAlbums(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/library/sections/3/albums" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("X-Plex-Token") != "tok" {
			t.Errorf("missing token header")
		}
		if r.Header.Get("X-Plex-Container-Size") != "2000" {
			t.Errorf("X-Plex-Container-Size = %q", r.Header.Get("X-Plex-Container-Size"))
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept = %q", r.Header.Get("Accept"))
		}
		w.Write([]byte(`{"MediaContainer": {"size": 2, "Metadata": [
			{"ratingKey": "101", "title": "Abbey Road", "parentTitle": "The Beatles"},
			{"ratingKey": 102, "title": "Kid A", "parentTitle": "Radiohead", "userRating": 8.0}
		]}}`))
	})

	albums, err := client.ListAlbums(context.Background())
	if err != nil {
		t.Fatalf("ListAlbums() error: %v", err)
	}
	if len(albums) != 2 {
		t.Fatalf("got %d albums, want 2", len(albums))
	}

	first, second := albums[0], albums[1]
	if first.Key != "101" || first.Title != "Abbey Road" || first.Artist != "The Beatles" || first.HasRating() {
		t.Errorf("first album = %+v", first)
	}
	if second.Key != "102" || !second.HasRating() || *second.UserRating != 8 {
		t.Errorf("second album = %+v", second)
	}
}

func TestClient_ListTracks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/library/metadata/101/children" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"MediaContainer": {"Metadata": [
			{"title": "Come Together", "userRating": 9, "duration": 259946},
			{"title": "Something", "duration": 182999},
			{"title": "Her Majesty", "userRating": 6.5}
		]}}`))
	})

	tracks, err := client.ListTracks(context.Background(), "101")
	if err != nil {
		t.Fatalf("ListTracks() error: %v", err)
	}
	if len(tracks) != 3 {
		t.Fatalf("got %d tracks, want 3", len(tracks))
	}

	if tracks[0].RatingValue() != 9 || tracks[0].Duration != 259 {
		t.Errorf("track 0 = %+v", tracks[0])
	}
	if tracks[1].Rating != nil || tracks[1].Duration != 182 {
		t.Errorf("track 1 = %+v", tracks[1])
	}
	if tracks[2].RatingValue() != 7 || tracks[2].Duration != 0 {
		t.Errorf("track 2 = %+v", tracks[2])
	}
}

func TestClient_EmptyContainer(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no container", `{}`},
		{"no metadata", `{"MediaContainer": {"size": 0}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			tracks, err := client.ListTracks(context.Background(), "1")
			if err != nil {
				t.Fatalf("ListTracks() error: %v", err)
			}
			if len(tracks) != 0 {
				t.Errorf("got %d tracks, want 0", len(tracks))
			}
		})
	}
}

func TestClient_SetAlbumRating(t *testing.T) {
	var gotMethod, gotPath string
	var gotQuery map[string]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"type":             r.URL.Query().Get("type"),
			"id":               r.URL.Query().Get("id"),
			"userRating.value": r.URL.Query().Get("userRating.value"),
		}
	})

	if err := client.SetAlbumRating(context.Background(), "101", 8); err != nil {
		t.Fatalf("SetAlbumRating() error: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/library/sections/3/all" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	want := map[string]string{"type": "9", "id": "101", "userRating.value": "8"}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}
}

func TestClient_SetAlbumRatingFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.SetAlbumRating(context.Background(), "101", 8)
	var se *apphttp.StatusError
	if !errors.As(err, &se) || se.Code != http.StatusInternalServerError {
		t.Errorf("SetAlbumRating() error = %v, want HTTP 500", err)
	}
}
