// Package effects animates the decorative floating emojis and the
// celebration banner. Effects never gate calendar state.
package effects

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/tui/theme"
)

const (
	// Frame is the animation step.
	Frame = 120 * time.Millisecond
	// FloatFrames is how many steps the floating emojis last.
	FloatFrames = 16
	// CelebrateFrames is how many steps the celebration lasts.
	CelebrateFrames = 20

	floatWidth = 24
)

type kind int

const (
	floating kind = iota
	celebrating
)

// TickMsg advances one animation.
type TickMsg struct {
	kind kind
	gen  int
}

// Model tracks the two independent animations.
type Model struct {
	floatLeft     int
	floatGen      int
	celebrateLeft int
	celebrateGen  int
	emojis        []string
	colors        []lipgloss.Style
}

// New creates an idle effects model.
func New(th theme.Theme) Model {
	opts := mood.Default()
	emojis := make([]string, len(opts))
	for i, o := range opts {
		emojis[i] = o.Emoji
	}
	styles := make([]lipgloss.Style, len(th.Celebrate))
	for i, c := range th.Celebrate {
		styles[i] = lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return Model{emojis: emojis, colors: styles}
}

// Float starts the floating emoji animation, restarting it if running.
func (m *Model) Float() tea.Cmd {
	m.floatGen++
	m.floatLeft = FloatFrames
	return tick(floating, m.floatGen)
}

// Celebrate starts the celebration banner, restarting it if running.
func (m *Model) Celebrate() tea.Cmd {
	m.celebrateGen++
	m.celebrateLeft = CelebrateFrames
	return tick(celebrating, m.celebrateGen)
}

func tick(k kind, gen int) tea.Cmd {
	return tea.Tick(Frame, func(time.Time) tea.Msg { return TickMsg{kind: k, gen: gen} })
}

// Active reports whether any animation is running.
func (m Model) Active() bool { return m.floatLeft > 0 || m.celebrateLeft > 0 }

// Update advances the animation named by a TickMsg. Ticks from a restarted
// animation are dropped.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	t, ok := msg.(TickMsg)
	if !ok {
		return m, nil
	}
	switch t.kind {
	case floating:
		if t.gen != m.floatGen || m.floatLeft == 0 {
			return m, nil
		}
		m.floatLeft--
		if m.floatLeft > 0 {
			return m, tick(floating, t.gen)
		}
	case celebrating:
		if t.gen != m.celebrateGen || m.celebrateLeft == 0 {
			return m, nil
		}
		m.celebrateLeft--
		if m.celebrateLeft > 0 {
			return m, tick(celebrating, t.gen)
		}
	}
	return m, nil
}

// FloatView renders a row of emojis drifting right.
func (m Model) FloatView() string {
	if m.floatLeft == 0 || len(m.emojis) == 0 {
		return ""
	}
	step := FloatFrames - m.floatLeft
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", step%floatWidth))
	for i := 0; i < 3; i++ {
		b.WriteString(m.emojis[(step+i*3)%len(m.emojis)])
		b.WriteString("  ")
	}
	return b.String()
}

// CelebrateView renders the banner with colors cycling through the gradient.
func (m Model) CelebrateView() string {
	if m.celebrateLeft == 0 {
		return ""
	}
	const text = "✨ mood saved ✨"
	if len(m.colors) == 0 {
		return text
	}
	step := CelebrateFrames - m.celebrateLeft
	var b strings.Builder
	for i, r := range []rune(text) {
		b.WriteString(m.colors[(i+step)%len(m.colors)].Render(string(r)))
	}
	return b.String()
}
