// Package picker renders the mood selection modal.
package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/session"
	"tableflip.dev/moodcal/pkg/tui/theme"
)

// Model mirrors the edit session and tracks which option has focus.
type Model struct {
	Title   string
	State   session.State
	Options []mood.Option

	focus int
	theme theme.ModalTheme
}

// New creates a picker over the default catalog.
func New(th theme.Theme) Model {
	return Model{Options: mood.Default(), theme: th.Modal}
}

// Sync copies the session state into the picker, moving focus to the
// prefilled mood when there is one.
func (m *Model) Sync(title string, st session.State) {
	m.Title = title
	m.State = st
	if st.Pending == nil {
		return
	}
	for i, o := range m.Options {
		if o.Kind == st.Pending.Mood {
			m.focus = i
			return
		}
	}
}

// Focus reports the focused option index.
func (m Model) Focus() int { return m.focus }

// Focused returns the focused option.
func (m Model) Focused() mood.Option {
	if len(m.Options) == 0 {
		return mood.Option{}
	}
	return m.Options[m.focus]
}

// Move shifts focus by delta, wrapping around.
func (m *Model) Move(delta int) {
	n := len(m.Options)
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

// ByKey resolves a shortcut key such as "3" to its option.
func (m *Model) ByKey(k string) (mood.Option, bool) {
	for i, o := range m.Options {
		if o.Key == k {
			m.focus = i
			return o, true
		}
	}
	return mood.Option{}, false
}

// View renders the modal. It is empty while the session is closed.
func (m Model) View() string {
	if !m.State.Open {
		return ""
	}

	rows := make([]string, 0, 2)
	row := make([]string, 0, len(m.Options)/2)
	for i, o := range m.Options {
		style := m.theme.Option
		switch {
		case m.State.Pending != nil && m.State.Pending.Mood == o.Kind:
			style = m.theme.Selected
		case i == m.focus:
			style = m.theme.Focused
		}
		row = append(row, style.Render(o.Key+" "+o.Emoji))
		if len(row) == 4 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	label := "pick a mood"
	if m.State.Pending != nil {
		label = string(m.State.Pending.Mood)
	}

	buttons := []string{m.theme.Button.Render("save ⏎")}
	if m.State.CanDelete {
		buttons = append(buttons, m.theme.Danger.Render("delete d"))
	}
	buttons = append(buttons, m.theme.Hint.Render("esc cancel"))

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Title.Render(m.Title),
		"",
		strings.Join(rows, "\n"),
		m.theme.Hint.Render(label),
		"",
		strings.Join(buttons, " "),
	)
	return m.theme.Frame.Render(body)
}
