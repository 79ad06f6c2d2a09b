package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/handiism/album-ratings/internal/batch"
	"github.com/handiism/album-ratings/internal/model"
)

func TestPromptMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.Mode
		retries int
		wantErr bool
	}{
		{name: "short preview", input: "p\n", want: model.ModePreview},
		{name: "update word", input: "  UPDATE \n", want: model.ModeUpdate},
		{name: "retry until valid", input: "x\n\nu\n", want: model.ModeUpdate, retries: 2},
		{name: "eof", input: "nope\n", wantErr: true, retries: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptMode(strings.NewReader(tt.input), &out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("promptMode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("promptMode() = %q, want %q", got, tt.want)
			}
			if n := strings.Count(out.String(), "Invalid mode"); n != tt.retries {
				t.Errorf("printed %d invalid-mode notices, want %d", n, tt.retries)
			}
		})
	}
}

func TestEventPrinter(t *testing.T) {
	var out bytes.Buffer
	p := &eventPrinter{out: &out}

	p.print(batch.ProgressEvent{Message: "Found 2 albums", Level: batch.LevelInfo})
	p.print(batch.ProgressEvent{Message: "hidden", Level: batch.LevelVerbose})
	p.print(batch.ProgressEvent{Message: "Processed: 1/2", Level: batch.LevelProgress})
	p.print(batch.ProgressEvent{Message: "Processed: 2/2", Level: batch.LevelProgress})
	p.print(batch.ProgressEvent{Message: "Error updating X", Level: batch.LevelError})
	p.endLine()

	want := "ℹ️  Found 2 albums\n\rProcessed: 1/2\rProcessed: 2/2\n❌ Error updating X\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
