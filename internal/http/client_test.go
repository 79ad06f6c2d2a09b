package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Token"); got != "secret" {
			t.Errorf("X-Token = %q, want secret", got)
		}
		if got := r.Header.Get("X-Extra"); got != "1" {
			t.Errorf("X-Extra = %q, want 1", got)
		}
		w.Write([]byte(`{"name":"plex"}`))
	}))
	defer srv.Close()

	client := NewClient(time.Second, http.Header{"X-Token": {"secret"}})

	var v struct {
		Name string `json:"name"`
	}
	if err := client.GetJSON(context.Background(), srv.URL, http.Header{"X-Extra": {"1"}}, &v); err != nil {
		t.Fatalf("GetJSON() error: %v", err)
	}
	if v.Name != "plex" {
		t.Errorf("Name = %q, want plex", v.Name)
	}
}

func TestClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(0, nil)
	err := client.Put(context.Background(), srv.URL, nil)

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("Put() error = %v, want *StatusError", err)
	}
	if se.Code != http.StatusUnauthorized || se.Method != http.MethodPut {
		t.Errorf("StatusError = %+v", se)
	}
}

func TestClient_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	var v map[string]any
	if err := NewClient(0, nil).GetJSON(context.Background(), srv.URL, nil, &v); err == nil {
		t.Error("GetJSON() expected decode error")
	}
}
