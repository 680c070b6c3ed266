package cli

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mumpitzstuff/goodTimes/internal/cli/formatter"
	"github.com/mumpitzstuff/goodTimes/internal/contract"
	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

// widgetRefreshInterval is how often the widget re-runs the pipeline. The
// reconstruction is a cheap batch over a fresh event snapshot, so polling
// once a minute keeps the clock-like fields current without journal strain.
const widgetRefreshInterval = time.Minute

const widgetBarWidth = 24

// ── messages ─────────────────────────────────────────────────────────────────

// widgetTickMsg fires on the refresh ticker.
type widgetTickMsg time.Time

// widgetDataMsg carries one refreshed pipeline result.
type widgetDataMsg struct {
	check *contract.CheckResponse
	today *contract.EntryView
	err   error
}

// ── key bindings ─────────────────────────────────────────────────────────────

type widgetKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

func newWidgetKeyMap() widgetKeyMap {
	return widgetKeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ── model ────────────────────────────────────────────────────────────────────

// widgetModel is the bubbletea model behind "goodtimes widget". It keeps the
// last successful result on screen when a refresh fails and shows the error
// alongside, so a transient journal hiccup doesn't blank the display.
type widgetModel struct {
	app  *App
	keys widgetKeyMap

	check       *contract.CheckResponse
	today       *contract.EntryView
	err         error
	loading     bool
	refreshedAt time.Time

	width    int
	quitting bool
}

func newWidgetModel(app *App) widgetModel {
	return widgetModel{
		app:     app,
		keys:    newWidgetKeyMap(),
		loading: true,
	}
}

func (m widgetModel) Init() tea.Cmd {
	return tea.Batch(m.load(), m.tick())
}

// load runs check and report once and delivers the outcome as one message.
func (m widgetModel) load() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()

		check, err := app.QuietCheck.RunCheck(ctx, contract.NewCheckRequest())
		if err != nil {
			return widgetDataMsg{err: err}
		}

		report, err := app.Report.BuildReport(ctx, contract.NewReportRequest())
		if err != nil {
			return widgetDataMsg{check: check, err: err}
		}

		msg := widgetDataMsg{check: check}
		if len(report.Entries) > 0 {
			last := report.Entries[len(report.Entries)-1]
			if domain.SameDay(last.Date, check.GeneratedAt) {
				msg.today = &last
			}
		}
		return msg
	}
}

// barWidth fits the progress bar to the terminal, leaving room for the box
// frame. Before the first WindowSizeMsg the default width applies.
func (m widgetModel) barWidth() int {
	if m.width > widgetBarWidth+8 {
		w := m.width - 8
		if w > 48 {
			w = 48
		}
		return w
	}
	return widgetBarWidth
}

func (m widgetModel) tick() tea.Cmd {
	return tea.Tick(widgetRefreshInterval, func(t time.Time) tea.Msg {
		return widgetTickMsg(t)
	})
}

func (m widgetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.load()
		}
		return m, nil

	case widgetTickMsg:
		m.loading = true
		return m, tea.Batch(m.load(), m.tick())

	case widgetDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.check != nil {
			m.check = msg.check
			m.today = msg.today
			m.refreshedAt = msg.check.GeneratedAt
		}
		return m, nil
	}

	return m, nil
}

func (m widgetModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	if m.check == nil {
		if m.err != nil {
			b.WriteString(formatter.StyleRed.Render("Event log unreadable") + "\n")
			b.WriteString(formatter.Dim(m.err.Error()) + "\n")
		} else {
			b.WriteString(formatter.Dim("Reading the event log...") + "\n")
		}
		return formatter.RenderBox("goodtimes", b.String())
	}

	if m.check.LeaveBy.IsZero() {
		b.WriteString(formatter.Dim("No session data for today.") + "\n\n")
		b.WriteString(m.statusLine())
		return formatter.RenderBox("goodtimes", b.String())
	}

	cfg := m.app.Cfg.Tracking

	b.WriteString(formatter.StateIndicator(m.check.State) + "\n\n")
	b.WriteString(formatter.RenderDayProgress(m.check.BookingHours, cfg.WorkingHours, cfg.MaxHours, m.barWidth()) + "\n\n")

	b.WriteString(fieldLine("Booked", formatter.StyleFg.Render(formatter.FormatHours(m.check.BookingHours)+" h")))
	b.WriteString(fieldLine("Uptime", formatter.StyleFg.Render(formatter.FormatClock(m.check.Uptime))))
	if m.check.Remaining > 0 {
		b.WriteString(fieldLine("Remaining", formatter.StyleFg.Render(formatter.FormatMinutes(wholeMinutes(m.check.Remaining)))))
		b.WriteString(fieldLine("Leave by", formatter.StyleFg.Render(m.check.LeaveBy.Format("15:04"))))
	} else {
		b.WriteString(fieldLine("Exceeded", formatter.StyleRed.Render(formatter.FormatMinutes(-wholeMinutes(m.check.Remaining)))))
	}

	if m.today != nil {
		b.WriteString(fieldLine("Today", formatter.StyleFg.Render(m.today.IntervalSummary)))
		b.WriteString(fieldLine("Flex", formatter.FlexCell(m.today.FlexHours)))
	}

	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render("refresh failed: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())

	return formatter.RenderBox("goodtimes", b.String())
}

// fieldLine renders one "label value" line, value comes pre-styled.
func fieldLine(label, value string) string {
	return fmt.Sprintf("%s %s\n", formatter.Dim(fmt.Sprintf("%-10s", label)), value)
}

func wholeMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}

// statusLine renders the refresh timestamp and key help.
func (m widgetModel) statusLine() string {
	stamp := "..."
	if !m.refreshedAt.IsZero() {
		stamp = m.refreshedAt.Format("15:04")
	}
	if m.loading {
		stamp = "..."
	}
	parts := []string{
		fmt.Sprintf("refreshed %s", stamp),
		fmt.Sprintf("%s %s", m.keys.Refresh.Help().Key, m.keys.Refresh.Help().Desc),
		fmt.Sprintf("%s %s", m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc),
	}
	return formatter.Dim(strings.Join(parts, " · "))
}
