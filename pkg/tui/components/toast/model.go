// Package toast shows short-lived notifications that fade before expiring.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/moodcal/pkg/session"
	"tableflip.dev/moodcal/pkg/tui/theme"
)

const (
	// Lifetime is how long a toast stays fully visible.
	Lifetime = 3 * time.Second
	// Fade is how long a toast stays faded before it is dropped.
	Fade = 500 * time.Millisecond
	// Max toasts kept on screen.
	Max = 3
)

type item struct {
	id       int
	message  string
	severity session.Severity
	faded    bool
}

// FadeMsg dims the toast with ID.
type FadeMsg struct{ ID int }

// ExpireMsg removes the toast with ID.
type ExpireMsg struct{ ID int }

// Model holds the visible toasts, oldest first.
type Model struct {
	items  []item
	nextID int
	theme  theme.ToastTheme
}

// New creates an empty toast stack.
func New(th theme.Theme) Model {
	return Model{theme: th.Toast}
}

// Push adds a toast and returns the timer that fades it.
func (m *Model) Push(message string, severity session.Severity) tea.Cmd {
	m.nextID++
	id := m.nextID
	m.items = append(m.items, item{id: id, message: message, severity: severity})
	if len(m.items) > Max {
		m.items = m.items[len(m.items)-Max:]
	}
	return tea.Tick(Lifetime, func(time.Time) tea.Msg { return FadeMsg{ID: id} })
}

// Update handles fade and expiry timers.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FadeMsg:
		for i := range m.items {
			if m.items[i].id == msg.ID {
				m.items[i].faded = true
				id := msg.ID
				return m, tea.Tick(Fade, func(time.Time) tea.Msg { return ExpireMsg{ID: id} })
			}
		}
	case ExpireMsg:
		for i := range m.items {
			if m.items[i].id == msg.ID {
				m.items = append(m.items[:i:i], m.items[i+1:]...)
				break
			}
		}
	}
	return m, nil
}

// Len reports the number of visible toasts.
func (m Model) Len() int { return len(m.items) }

// Messages lists the visible messages, oldest first.
func (m Model) Messages() []string {
	out := make([]string, len(m.items))
	for i, it := range m.items {
		out[i] = it.message
	}
	return out
}

// View renders one toast per line, truncated to width when width > 0.
func (m Model) View(width int) string {
	var out string
	for i, it := range m.items {
		text := it.message
		if width > 0 {
			text = truncate.StringWithTail(text, uint(width), "…")
		}
		style := m.theme.Info
		switch {
		case it.faded:
			style = m.theme.Faded
		case it.severity == session.Success:
			style = m.theme.Success
		case it.severity == session.Error:
			style = m.theme.Error
		}
		if i > 0 {
			out += "\n"
		}
		out += style.Render(text)
	}
	return out
}
