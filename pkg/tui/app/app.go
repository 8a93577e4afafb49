// Package teaui hosts the Bubble Tea program for the moodcal TUI.
package teaui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/datekey"
	"tableflip.dev/moodcal/pkg/store"
	calview "tableflip.dev/moodcal/pkg/tui/components/calendar"
	"tableflip.dev/moodcal/pkg/tui/components/effects"
	"tableflip.dev/moodcal/pkg/tui/components/picker"
	"tableflip.dev/moodcal/pkg/tui/components/toast"
	"tableflip.dev/moodcal/pkg/tui/theme"
)

// Model contains UI state
type Model struct {
	cal    *app.Calendar
	bridge *Bridge
	ctx    context.Context

	// day is the cursor, a day of the shown month.
	day int

	keys   keyMap
	help   help.Model
	picker picker.Model
	toasts toast.Model
	fx     effects.Model
	theme  theme.Theme
	grid   calview.Options

	width  int
	height int
	status string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New builds the model for cal. The bridge must be the notifier, effects
// and renderer cal was created with.
func New(ctx context.Context, cal *app.Calendar, bridge *Bridge) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	th := theme.Default()
	m := &Model{
		cal:    cal,
		bridge: bridge,
		ctx:    ctx,
		keys:   defaultKeyMap(),
		help:   help.New(),
		picker: picker.New(th),
		toasts: toast.New(th),
		fx:     effects.New(th),
		theme:  th,
		grid:   calview.FromTheme(th),
	}
	m.day = m.todayInView()
	return m
}

// Run launches the interactive TUI program over st.
func Run(ctx context.Context, st *store.Store, o app.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	b := NewBridge()
	o.Store = st
	o.Notifier = b
	o.Effects = b
	o.Renderer = b
	cal, err := app.New(o)
	if err != nil {
		return err
	}
	m := New(ctx, cal, b)
	defer m.stopWatch()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, st *store.Store) tea.Cmd {
	if st == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := st.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Init starts watching the slot for writes from other processes.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.cal.Store())
}

// Update handles messages and keybindings
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case watchStartedMsg:
		if msg.err != nil {
			if !errors.Is(msg.err, store.ErrWatchUnsupported) {
				m.status = "watch: " + msg.err.Error()
			}
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		if !m.cal.Session().IsOpen() {
			m.cal.Reload()
			m.status = "Reloaded " + time.Now().Format("15:04:05")
		}
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
	case toast.FadeMsg, toast.ExpireMsg:
		var cmd tea.Cmd
		m.toasts, cmd = m.toasts.Update(msg)
		cmds = append(cmds, cmd)
	case effects.TickMsg:
		var cmd tea.Cmd
		m.fx, cmd = m.fx.Update(msg)
		cmds = append(cmds, cmd)
	case tea.KeyPressMsg:
		if cmd := m.handleKeyPress(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.flush()...)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.cal.Session().IsOpen() {
		m.handlePickerKey(msg)
		return nil
	}
	return m.handleCalendarKey(msg)
}

func (m *Model) handleCalendarKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-calendar.Columns)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(calendar.Columns)
	case key.Matches(msg, m.keys.Prev):
		m.cal.Prev()
		m.clampCursor()
	case key.Matches(msg, m.keys.Next):
		m.cal.Next()
		m.clampCursor()
	case key.Matches(msg, m.keys.Today):
		m.cal.Today()
		m.day = m.todayInView()
	case key.Matches(msg, m.keys.Open):
		if err := m.cal.Open(m.cursorKey()); err != nil {
			m.status = err.Error()
		}
	}
	return nil
}

func (m *Model) handlePickerKey(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.cal.Cancel()
	case key.Matches(msg, m.keys.Pick):
		if o, ok := m.picker.ByKey(msg.String()); ok {
			_ = m.cal.Select(o)
		}
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Up):
		m.picker.Move(-1)
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Down):
		m.picker.Move(1)
	case key.Matches(msg, m.keys.Choose):
		_ = m.cal.Select(m.picker.Focused())
	case key.Matches(msg, m.keys.Save):
		// Failures are reported through the bridge as toasts.
		_ = m.cal.Save()
	case key.Matches(msg, m.keys.Delete):
		_ = m.cal.Delete()
	}
}

// flush turns what the core reported into commands and syncs the picker.
func (m *Model) flush() []tea.Cmd {
	if m.bridge == nil {
		return nil
	}
	d := m.bridge.drain()
	var cmds []tea.Cmd
	for _, n := range d.notices {
		cmds = append(cmds, m.toasts.Push(n.message, n.severity))
	}
	if d.float {
		cmds = append(cmds, m.fx.Float())
	}
	if d.celebrate {
		cmds = append(cmds, m.fx.Celebrate())
	}
	st := m.cal.Session().State()
	m.picker.Sync(m.cal.LongDate(st.Target), st)
	return cmds
}

func (m *Model) moveCursor(delta int) {
	v := m.cal.View()
	t := time.Date(v.Year, v.Month, m.day+delta, 0, 0, 0, 0, time.Local)
	if next := calendar.ViewOf(t); next != v {
		m.cal.SetView(next)
	}
	m.day = t.Day()
}

func (m *Model) clampCursor() {
	v := m.cal.View()
	if n := calendar.DaysIn(v.Year, v.Month); m.day > n {
		m.day = n
	}
	if m.day < 1 {
		m.day = 1
	}
}

func (m *Model) todayInView() int {
	v := m.cal.View()
	now := m.cal.Now()
	if calendar.ViewOf(now) == v {
		return now.Day()
	}
	return 1
}

func (m *Model) cursorKey() datekey.Key {
	v := m.cal.View()
	return datekey.Encode(v.Year, v.Month, m.day)
}

// View renders the calendar, or the picker while a day is being edited.
func (m *Model) View() string {
	var body string
	if m.cal.Session().IsOpen() {
		body = lipgloss.JoinVertical(lipgloss.Center,
			m.fx.FloatView(),
			m.picker.View(),
		)
	} else {
		body = m.renderCalendar()
	}

	parts := []string{body}
	if banner := m.fx.CelebrateView(); banner != "" {
		parts = append(parts, banner)
	}
	if t := m.toasts.View(m.width); t != "" {
		parts = append(parts, t)
	}
	if m.status != "" {
		parts = append(parts, m.theme.Footer.Status.Render(m.status))
	}
	parts = append(parts, m.renderHelp())
	content := lipgloss.JoinVertical(lipgloss.Center, parts...)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m *Model) renderCalendar() string {
	g := m.cal.Grid()
	cursor := -1
	if i, ok := g.Find(m.cursorKey()); ok {
		cursor = i
	}
	grid := calview.Render(m.cal.Title(), m.cal.Header(), g, cursor, m.grid)

	lines := []string{grid}
	if stats := m.cal.Stats(); len(stats) > 0 {
		counts := make([]string, len(stats))
		for i, c := range stats {
			counts[i] = fmt.Sprintf("%s %d", c.Option.Emoji, c.Days)
		}
		lines = append(lines, "", m.theme.Calendar.Counter.Render(strings.Join(counts, "  ")))
	}
	return m.theme.Calendar.Frame.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderHelp() string {
	var km help.KeyMap = calendarKeys{m.keys}
	if m.cal.Session().IsOpen() {
		km = pickerKeys{m.keys}
	}
	return m.theme.Footer.Help.Render(m.help.View(km))
}
