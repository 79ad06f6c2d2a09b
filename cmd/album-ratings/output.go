package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/handiism/album-ratings/internal/batch"
	"github.com/handiism/album-ratings/internal/model"
)

// promptMode asks for a run mode until a valid answer is given.
func promptMode(in io.Reader, out io.Writer) (model.Mode, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Select mode ([p]review/[u]pdate): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", errors.New("no mode selected")
		}
		if mode, err := model.ParseMode(scanner.Text()); err == nil {
			return mode, nil
		}
		fmt.Fprintln(out, "Invalid mode. Please enter 'preview' (p) or 'update' (u)")
	}
}

// eventPrinter renders runner events on stdout. Counter updates rewrite a
// single status line.
type eventPrinter struct {
	out     io.Writer
	verbose bool

	// onStatusLine is set while the cursor sits at the end of a status line.
	onStatusLine bool
}

func (p *eventPrinter) writer() io.Writer {
	if p.out == nil {
		return os.Stdout
	}
	return p.out
}

func (p *eventPrinter) print(event batch.ProgressEvent) {
	if event.Level == batch.LevelVerbose && !p.verbose {
		return
	}

	w := p.writer()
	if event.Level == batch.LevelProgress {
		fmt.Fprint(w, "\r"+event.Message)
		p.onStatusLine = true
		return
	}

	p.endLine()

	prefix := ""
	switch event.Level {
	case batch.LevelError:
		prefix = "❌ "
	case batch.LevelWarning:
		prefix = "⚠️  "
	case batch.LevelSuccess:
		prefix = "✅ "
	case batch.LevelInfo:
		prefix = "ℹ️  "
	default:
		prefix = "   "
	}

	fmt.Fprintln(w, prefix+event.Message)
}

// endLine terminates a pending status line.
func (p *eventPrinter) endLine() {
	if p.onStatusLine {
		fmt.Fprintln(p.writer())
		p.onStatusLine = false
	}
}
