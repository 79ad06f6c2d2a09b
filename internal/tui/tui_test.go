package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/album-ratings/internal/batch"
	"github.com/handiism/album-ratings/internal/config"
	"github.com/handiism/album-ratings/internal/model"
	"github.com/handiism/album-ratings/internal/report"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_SelectMode(t *testing.T) {
	tests := []struct {
		key  string
		want model.Mode
	}{
		{"p", model.ModePreview},
		{"u", model.ModeUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := update(t, NewModel(config.DefaultSettings(), nil), key(tt.key))
			if m.state != StateFetching {
				t.Errorf("state = %v, want StateFetching", m.state)
			}
			if m.mode != tt.want {
				t.Errorf("mode = %s, want %s", m.mode, tt.want)
			}
		})
	}
}

func TestModel_LogFiltering(t *testing.T) {
	m := NewModel(config.DefaultSettings(), nil)

	m = update(t, m, ProgressMsg{Event: batch.ProgressEvent{Message: "detail", Level: batch.LevelVerbose}})
	m = update(t, m, ProgressMsg{Event: batch.ProgressEvent{Message: "Processed: 1/2", Level: batch.LevelProgress}})
	m = update(t, m, ProgressMsg{Event: batch.ProgressEvent{Message: "Found 2 albums", Level: batch.LevelInfo}})
	if len(m.logs) != 1 || m.logs[0].Message != "Found 2 albums" {
		t.Errorf("logs = %+v", m.logs)
	}

	m = update(t, m, key("v"))
	m = update(t, m, ProgressMsg{Event: batch.ProgressEvent{Message: "detail", Level: batch.LevelVerbose}})
	if len(m.logs) != 2 {
		t.Errorf("verbose event not logged: %+v", m.logs)
	}

	for i := 0; i < 2*maxLogs; i++ {
		m = update(t, m, ProgressMsg{Event: batch.ProgressEvent{Message: fmt.Sprint(i), Level: batch.LevelWarning}})
	}
	if len(m.logs) != maxLogs {
		t.Errorf("kept %d logs, want %d", len(m.logs), maxLogs)
	}
}

func TestModel_RunDone(t *testing.T) {
	var stats model.Stats
	stats.Add(model.StatusPreview)
	stats.Add(model.StatusSkipped)
	outcome := &batch.Outcome{Mode: model.ModePreview, Stats: stats}

	tests := []struct {
		name    string
		err     error
		state   State
		wantErr error
	}{
		{"complete", nil, StateComplete, nil},
		{"cancelled", fmt.Errorf("fetch albums: %w", context.Canceled), StateError, errCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := update(t, NewModel(config.DefaultSettings(), nil), key("p"))
			m = update(t, m, RunDoneMsg{
				Outcome:  outcome,
				Exported: report.Exported{CSVPath: "out.csv"},
				Err:      tt.err,
			})

			if m.state != tt.state {
				t.Fatalf("state = %v, want %v", m.state, tt.state)
			}
			if !errors.Is(m.err, tt.wantErr) {
				t.Errorf("err = %v, want %v", m.err, tt.wantErr)
			}
			view := m.View()
			if !strings.Contains(view, "out.csv") {
				t.Errorf("view does not mention the saved report:\n%s", view)
			}
			if tt.state == StateComplete && !strings.Contains(view, "Ratings calculated: 1") {
				t.Errorf("view does not show the summary:\n%s", view)
			}
		})
	}
}

func TestModel_InitError(t *testing.T) {
	m := update(t, NewModel(config.DefaultSettings(), nil), key("u"))
	m = update(t, m, InitDoneMsg{Err: errors.New("plex.token is required")})

	if m.state != StateError {
		t.Fatalf("state = %v, want StateError", m.state)
	}
	if got := m.helpText(); got != "r: new run • q: quit" {
		t.Errorf("helpText() = %q", got)
	}

	m = update(t, m, key("r"))
	if m.state != StateModeSelect || m.err != nil {
		t.Errorf("reset left state=%v err=%v", m.state, m.err)
	}
}
