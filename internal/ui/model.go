package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/dailylog/internal/editor"
	"github.com/faizmokh/dailylog/internal/logbook"
	"github.com/faizmokh/dailylog/internal/render"
)

// Options carries the collaborators the browser needs.
type Options struct {
	Reader *logbook.Reader
	Writer *logbook.Writer
	Editor *editor.Editor
	Styles render.Styles
	Now    func() time.Time

	// AfterAppend runs after an entry is added from the browser. The CLI
	// uses it to apply the auto-sync policy; it reports whether a sync ran
	// and how it went.
	AfterAppend func(ctx context.Context) (attempted bool, err error)
}

// Model owns Bubble Tea state for the day browser.
type Model struct {
	ctx  context.Context
	opts Options

	currentDate time.Time
	day         logbook.Day
	found       bool

	viewport viewport.Model
	ready    bool

	loading    bool
	statusLine string
	errorLine  string
}

type dayLoadedMsg struct {
	date  time.Time
	day   logbook.Day
	found bool
	err   error
}

type appendResultMsg struct {
	entry   logbook.Entry
	ok      bool
	err     error
	synced  bool
	syncErr error
}

type editResultMsg struct {
	changed bool
	err     error
}

const chromeHeight = 6

// NewModel seeds the browser on today's date.
func NewModel(ctx context.Context, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	initialDate := startOfDay(opts.Now())

	return Model{
		ctx:         ctx,
		opts:        opts,
		currentDate: initialDate,
		day:         logbook.Day{Date: initialDate},
		viewport:    viewport.New(80, 20),
		loading:     true,
		statusLine:  "Loading today's log...",
	}
}

// Init loads the initial day.
func (m Model) Init() tea.Cmd {
	return m.loadDayCmd(m.currentDate)
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.ready = true
		m.refreshViewport()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case dayLoadedMsg:
		return m.handleDayLoaded(msg)
	case appendResultMsg:
		return m.handleAppendResult(msg)
	case editResultMsg:
		return m.handleEditResult(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h", "p":
		return m.gotoDate(m.currentDate.AddDate(0, 0, -1))
	case "right", "l", "n":
		return m.gotoDate(m.currentDate.AddDate(0, 0, 1))
	case "t":
		return m.gotoDate(startOfDay(m.opts.Now()))
	case "r":
		return m.reload()
	case "a":
		return m.startAdd()
	case "e":
		return m.startEdit()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleDayLoaded(msg dayLoadedMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results for dates we no longer display.
	if !sameDay(m.currentDate, msg.date) {
		return m, nil
	}
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to load %s: %v", msg.date.Format("2006-01-02"), msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.errorLine = ""
	m.day = msg.day
	m.found = msg.found
	switch {
	case !msg.found:
		m.statusLine = fmt.Sprintf("No log for %s.", msg.date.Format("2006-01-02"))
	case len(msg.day.Titles) == 1:
		m.statusLine = "Loaded 1 entry."
	default:
		m.statusLine = fmt.Sprintf("Loaded %d entries.", len(msg.day.Titles))
	}
	m.refreshViewport()
	m.viewport.GotoTop()
	return m, nil
}

func (m Model) handleAppendResult(msg appendResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Add failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.errorLine = ""
	if !msg.ok {
		m.statusLine = "No content written."
		return m, nil
	}
	switch {
	case msg.syncErr != nil:
		m.statusLine = fmt.Sprintf("Saved %q locally; auto-sync failed: %v", msg.entry.Title, msg.syncErr)
	case msg.synced:
		m.statusLine = fmt.Sprintf("Saved %q and synced with remote.", msg.entry.Title)
	default:
		m.statusLine = fmt.Sprintf("Saved %q.", msg.entry.Title)
	}
	m.loading = true
	return m, m.loadDayCmd(m.currentDate)
}

func (m Model) handleEditResult(msg editResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Edit failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.errorLine = ""
	if !msg.changed {
		m.statusLine = "No changes."
		return m, nil
	}
	m.statusLine = "Log updated."
	m.loading = true
	return m, m.loadDayCmd(m.currentDate)
}

func (m Model) gotoDate(date time.Time) (tea.Model, tea.Cmd) {
	if sameDay(m.currentDate, date) {
		return m.reload()
	}

	m.currentDate = date
	m.day = logbook.Day{Date: date}
	m.found = false
	m.loading = true
	m.statusLine = fmt.Sprintf("Loading %s...", date.Format("2006-01-02"))
	m.errorLine = ""
	m.refreshViewport()
	return m, m.loadDayCmd(date)
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.statusLine = fmt.Sprintf("Refreshing %s...", m.currentDate.Format("2006-01-02"))
	m.errorLine = ""
	return m, m.loadDayCmd(m.currentDate)
}

func (m Model) startAdd() (tea.Model, tea.Cmd) {
	if m.opts.Editor == nil || m.opts.Writer == nil {
		return m, nil
	}
	session, err := m.opts.Editor.Start(m.ctx, "")
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}

	ctx := m.ctx
	date := m.currentDate
	writer := m.opts.Writer
	now := m.opts.Now
	afterAppend := m.opts.AfterAppend
	m.statusLine = "Waiting for editor..."
	return m, tea.ExecProcess(session.Cmd, func(runErr error) tea.Msg {
		raw, err := session.Finish(runErr)
		if err != nil {
			return appendResultMsg{err: err}
		}
		entry, ok, err := writer.Append(ctx, date, raw, now())
		result := appendResultMsg{entry: entry, ok: ok, err: err}
		if err == nil && ok && afterAppend != nil {
			attempted, syncErr := afterAppend(ctx)
			result.synced = attempted && syncErr == nil
			result.syncErr = syncErr
		}
		return result
	})
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	if m.opts.Editor == nil || m.opts.Writer == nil || m.loading {
		return m, nil
	}
	original := m.day.Content
	session, err := m.opts.Editor.Start(m.ctx, original)
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}

	ctx := m.ctx
	date := m.currentDate
	writer := m.opts.Writer
	m.statusLine = "Waiting for editor..."
	return m, tea.ExecProcess(session.Cmd, func(runErr error) tea.Msg {
		content, err := session.Finish(runErr)
		if err != nil {
			return editResultMsg{err: err}
		}
		changed, err := writer.Replace(ctx, date, original, content)
		return editResultMsg{changed: changed, err: err}
	})
}

func (m Model) loadDayCmd(date time.Time) tea.Cmd {
	reader := m.opts.Reader
	ctx := m.ctx
	return func() tea.Msg {
		day, err := reader.Day(ctx, date)
		if err != nil {
			if errors.Is(err, logbook.ErrDayNotFound) {
				return dayLoadedMsg{date: date, day: logbook.Day{Date: date}}
			}
			return dayLoadedMsg{date: date, err: err}
		}
		return dayLoadedMsg{date: date, day: day, found: true}
	}
}

func (m *Model) refreshViewport() {
	switch {
	case m.loading:
		m.viewport.SetContent("Loading...")
	case !m.found || m.day.IsBlank():
		m.viewport.SetContent(m.opts.Styles.Muted.Render("(no log for this day; press a to add an entry)"))
	default:
		m.viewport.SetContent(render.Markdown(m.day.Content, m.opts.Styles))
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	header := m.currentDate.Format("Monday, 02 January 2006")
	b.WriteString(m.opts.Styles.Banner.Render(header))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", lipgloss.Width(header)))
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteByte('\n')

	if m.errorLine != "" {
		b.WriteString("\n! ")
		b.WriteString(m.errorLine)
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString(m.opts.Styles.Muted.Render("<-/h/p prev  ->/l/n next  t today  r reload  a add  e edit  up/down scroll  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
