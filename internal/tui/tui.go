// Package tui provides a Bubble Tea terminal user interface for album-ratings.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/album-ratings/internal/batch"
	"github.com/handiism/album-ratings/internal/config"
	"github.com/handiism/album-ratings/internal/model"
	"github.com/handiism/album-ratings/internal/report"
	"github.com/handiism/album-ratings/internal/source"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E5A00D")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// errCancelled is shown when the user aborts a run.
var errCancelled = errors.New("cancelled by user")

// maxLogs is the number of log lines kept on screen.
const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateModeSelect State = iota
	StateFetching
	StateProcessing
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   batch.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings
	logger   *slog.Logger
	logs     []LogEntry
	err      error

	mode    model.Mode
	verbose bool

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	// events carries runner callbacks into the update loop. It lives as
	// long as the model so a single waitForEvent command is ever pending.
	events chan batch.ProgressEvent

	runner    *batch.Runner
	startedAt time.Time
	current   batch.Progress

	// Completed run
	stats    model.Stats
	exported report.Exported
	saveErr  error

	width  int
	height int
}

// NewModel creates a new TUI model for settings.
func NewModel(settings *config.Settings, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5A00D"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateModeSelect,
		spinner:  sp,
		progress: prog,
		settings: settings,
		logger:   logger,
		logs:     make([]LogEntry, 0),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan batch.ProgressEvent, 64),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForEvent())
}

// Message types
type (
	// ProgressMsg is sent for every runner event.
	ProgressMsg struct {
		Event batch.ProgressEvent
	}

	// InitDoneMsg is sent when the catalog has been opened.
	InitDoneMsg struct {
		Runner *batch.Runner
		Err    error
	}

	// RunDoneMsg is sent when the run has finished and reports are saved.
	RunDoneMsg struct {
		Outcome  *batch.Outcome
		Exported report.Exported
		SaveErr  error
		Err      error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateModeSelect {
				return m, tea.Quit
			}
			if m.state == StateFetching || m.state == StateProcessing {
				m.cancel()
			}

		case "p", "u":
			if m.state == StateModeSelect {
				m.mode, _ = model.ParseMode(msg.String())
				m.state = StateFetching
				m.startedAt = time.Now()
				return m, tea.Batch(m.openCatalog(), m.spinner.Tick)
			}

		case "v":
			if m.state == StateModeSelect {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateModeSelect
				m.logs = nil
				m.err = nil
				m.runner = nil
				m.current = batch.Progress{}
				m.stats = model.Stats{}
				m.exported = report.Exported{}
				m.saveErr = nil
				m.cancel()
				m.ctx, m.cancel = context.WithCancel(context.Background())
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, m.waitForEvent())
		if m.keep(msg.Event) {
			m.logs = append(m.logs, LogEntry{
				Message: msg.Event.Message,
				Level:   msg.Event.Level,
			})
			if len(m.logs) > maxLogs {
				m.logs = m.logs[len(m.logs)-maxLogs:]
			}
		}

	case InitDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.runner = msg.Runner
			cmds = append(cmds, m.startRun(), m.tickProgress())
		}

	case RunDoneMsg:
		if msg.Outcome != nil {
			m.stats = msg.Outcome.Stats
		}
		m.exported = msg.Exported
		m.saveErr = msg.SaveErr
		switch {
		case errors.Is(msg.Err, context.Canceled):
			m.state = StateError
			m.err = errCancelled
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}
		if m.runner != nil {
			m.current = m.runner.Progress()
		}

	case TickMsg:
		// Poll the runner
		if m.runner != nil && (m.state == StateFetching || m.state == StateProcessing) {
			m.current = m.runner.Progress()
			if m.current.Total > 0 {
				m.state = StateProcessing
			}
			cmds = append(cmds, m.progress.SetPercent(m.percent()), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// keep reports whether event belongs in the log pane. Counter updates are
// shown by the progress bar instead.
func (m Model) keep(event batch.ProgressEvent) bool {
	switch event.Level {
	case batch.LevelProgress:
		return false
	case batch.LevelVerbose:
		return m.verbose
	}
	return true
}

func (m Model) percent() float64 {
	if m.current.Total == 0 {
		return 0
	}
	return float64(m.current.Current) / float64(m.current.Total)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// waitForEvent returns a command that delivers the next runner event.
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return ProgressMsg{Event: <-m.events}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("★ Album Ratings"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Rate albums from their track ratings"))
	b.WriteString("\n\n")

	switch m.state {
	case StateModeSelect:
		b.WriteString(m.viewModeSelect())
	case StateFetching:
		b.WriteString(m.viewFetching())
	case StateProcessing:
		b.WriteString(m.viewProcessing())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewModeSelect() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Select mode:"))
	b.WriteString("\n\n")
	b.WriteString("  p  Preview: calculate ratings and write a report\n")
	b.WriteString("  u  Update: also write ratings to the catalog\n")
	b.WriteString("\n")

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}
	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Source: %s", m.sourceLabel())))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Reports: %s", m.settings.OutputDir)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) sourceLabel() string {
	if m.settings.Source == config.SourceLocal {
		return m.settings.Library.Path
	}
	return fmt.Sprintf("%s (library %s)", m.settings.Plex.URL, m.settings.Plex.MusicLibraryID)
}

func (m Model) viewFetching() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Fetching albums..."))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewProcessing() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Running in %s mode", strings.ToUpper(string(m.mode)))))
	b.WriteString("\n\n")

	b.WriteString(m.progress.ViewAs(m.percent()))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(m.current.String()))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	var lines []string
	lines = append(lines, "✨ Done!", "")
	for _, line := range report.Summary(m.mode, m.stats) {
		lines = append(lines, fmt.Sprintf("%s: %d", line.Label, line.Count))
	}
	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n\n")
	b.WriteString(m.viewSaved())

	return b.String()
}

func (m Model) viewSaved() string {
	var b strings.Builder

	if m.exported.CSVPath != "" {
		b.WriteString(successStyle.Render("Results saved to " + m.exported.CSVPath))
		b.WriteString("\n")
	}
	if m.exported.RunID != "" {
		b.WriteString(successStyle.Render(fmt.Sprintf("Run %s stored in %s", m.exported.RunID, m.settings.SQLitePath)))
		b.WriteString("\n")
	}
	if m.saveErr != nil {
		b.WriteString(errorStyle.Render("Saving results failed: " + m.saveErr.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n\n")
	}
	if m.current.Current > 0 {
		b.WriteString(infoStyle.Render(m.current.String()))
		b.WriteString("\n")
	}
	b.WriteString(m.viewSaved())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case batch.LevelError:
			style = errorStyle
			prefix = "✗"
		case batch.LevelWarning:
			style = warningStyle
			prefix = "!"
		case batch.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case batch.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateModeSelect:
		return "p: preview • u: update • v: verbose • esc: quit"
	case StateFetching, StateProcessing:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// openCatalog opens the configured catalog and creates the runner.
func (m Model) openCatalog() tea.Cmd {
	ctx, events := m.ctx, m.events
	return func() tea.Msg {
		catalog, err := source.Open(m.settings, m.logger)
		if err != nil {
			return InitDoneMsg{Err: err}
		}

		runner := batch.NewRunner(catalog, m.settings.Delay(), func(event batch.ProgressEvent) {
			select {
			case events <- event:
			case <-ctx.Done():
			}
		})
		return InitDoneMsg{Runner: runner}
	}
}

// startRun runs every album in the background, then saves the reports.
// A cancelled run still saves the records gathered so far.
func (m Model) startRun() tea.Cmd {
	ctx, runner, mode, startedAt := m.ctx, m.runner, m.mode, m.startedAt
	return func() tea.Msg {
		outcome, err := runner.Run(ctx, mode)
		if outcome == nil {
			return RunDoneMsg{Err: err}
		}

		exported, saveErr := report.Export(m.settings.OutputDir, m.settings.SQLitePath, mode, startedAt, outcome.Records)
		if saveErr != nil {
			m.logger.Error("save results", "error", saveErr)
		}
		return RunDoneMsg{
			Outcome:  outcome,
			Exported: exported,
			SaveErr:  saveErr,
			Err:      err,
		}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings, logger *slog.Logger) error {
	p := tea.NewProgram(NewModel(settings, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
