// Package theme centralizes Lip Gloss styles for the mood calendar UI.
package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Calendar CalendarTheme
	Modal    ModalTheme
	Toast    ToastTheme
	Footer   FooterTheme

	// Celebrate is the gradient the celebration banner cycles through.
	Celebrate []color.Color
}

// CalendarTheme styles the month grid.
type CalendarTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Header  lipgloss.Style
	Day     lipgloss.Style
	Other   lipgloss.Style
	Mood    lipgloss.Style
	Today   lipgloss.Style
	Cursor  lipgloss.Style
	Counter lipgloss.Style
}

// ModalTheme styles the mood picker.
type ModalTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Option   lipgloss.Style
	Selected lipgloss.Style
	Focused  lipgloss.Style
	Button   lipgloss.Style
	Danger   lipgloss.Style
	Hint     lipgloss.Style
}

// ToastTheme styles notifications per severity.
type ToastTheme struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Faded   lipgloss.Style
}

// FooterTheme groups styles used by the bottom help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

const (
	pink      = "#ff6b9d"
	lightPink = "#ffc2d4"
	lavender  = "#c490e4"
	peach     = "#ffb38a"
)

// Default returns the built-in pink theme.
func Default() Theme {
	accent := lipgloss.Color(pink)
	soft := lipgloss.Color(lightPink)

	button := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("#ffffff")).
		Background(accent)

	return Theme{
		Calendar: CalendarTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title:   lipgloss.NewStyle().Foreground(accent).Bold(true),
			Header:  lipgloss.NewStyle().Foreground(lipgloss.Color(lavender)).Bold(true),
			Day:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Other:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true),
			Mood:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
			Today:   lipgloss.NewStyle().Underline(true).Foreground(accent),
			Cursor:  lipgloss.NewStyle().Background(soft).Foreground(lipgloss.Color("0")),
			Counter: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title:    lipgloss.NewStyle().Foreground(accent).Bold(true),
			Option:   lipgloss.NewStyle().Padding(0, 1),
			Selected: lipgloss.NewStyle().Padding(0, 1).Background(soft).Foreground(lipgloss.Color("0")),
			Focused:  lipgloss.NewStyle().Padding(0, 1).Underline(true),
			Button:   button,
			Danger:   button.Background(lipgloss.Color("#e5484d")),
			Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Toast: ToastTheme{
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#2fbf71")).Bold(true),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e5484d")).Bold(true),
			Info:    lipgloss.NewStyle().Foreground(accent),
			Faded:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Celebrate: Gradient(12, pink, peach, lavender),
	}
}

// Gradient blends n colors through the given hex stops in Lab space.
func Gradient(n int, stops ...string) []color.Color {
	if n <= 0 || len(stops) == 0 {
		return nil
	}
	cs := make([]colorful.Color, 0, len(stops))
	for _, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			continue
		}
		cs = append(cs, c)
	}
	if len(cs) == 0 {
		return nil
	}
	out := make([]color.Color, n)
	if len(cs) == 1 || n == 1 {
		for i := range out {
			out[i] = cs[0]
		}
		return out
	}
	segments := len(cs) - 1
	for i := 0; i < n; i++ {
		pos := float64(i) / float64(n-1) * float64(segments)
		seg := int(pos)
		if seg >= segments {
			seg = segments - 1
		}
		out[i] = cs[seg].BlendLab(cs[seg+1], pos-float64(seg)).Clamped()
	}
	return out
}
