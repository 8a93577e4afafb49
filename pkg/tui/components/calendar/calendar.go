// Package calendar renders a mood month grid with Lip Gloss.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/tui/theme"
)

// Options controls calendar styling.
type Options struct {
	TitleStyle  lipgloss.Style
	HeaderStyle lipgloss.Style
	DayStyle    lipgloss.Style
	OtherStyle  lipgloss.Style
	MoodStyle   lipgloss.Style
	TodayStyle  lipgloss.Style
	CursorStyle lipgloss.Style
	ShowHeader  bool
}

// CellWidth is the rendered width of a day: two digits and a glyph slot.
const CellWidth = 4

// Render produces the title, weekday header and six week rows of g. Cursor
// is a cell index, or -1 for none.
func Render(title string, header []string, g calendar.Grid, cursor int, opts Options) string {
	if len(g.Cells) == 0 {
		return ""
	}
	width := calendar.Columns*CellWidth + calendar.Columns - 1

	lines := make([]string, 0, calendar.Rows+2)
	if title != "" {
		lines = append(lines, opts.TitleStyle.Width(width).Align(lipgloss.Center).Render(title))
	}
	if opts.ShowHeader {
		labels := make([]string, len(header))
		for i, h := range header {
			labels[i] = fmt.Sprintf("%-*s", CellWidth, h)
		}
		lines = append(lines, opts.HeaderStyle.Render(strings.Join(labels, " ")))
	}

	for r, row := range g.Rows() {
		cells := make([]string, len(row))
		for c, cell := range row {
			cells[c] = renderCell(cell, r*calendar.Columns+c == cursor, opts)
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderCell(c calendar.Cell, selected bool, opts Options) string {
	glyph := "  "
	if c.HasMood && c.Glyph != "" {
		glyph = c.Glyph
	}
	text := fmt.Sprintf("%2d%s", c.Day, glyph)

	style := opts.DayStyle
	switch {
	case !c.InMonth:
		style = opts.OtherStyle
	case c.HasMood:
		style = opts.MoodStyle
	}
	if c.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if selected && c.InMonth {
		style = opts.CursorStyle.Inherit(style)
	}
	return style.Render(text)
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return FromTheme(theme.Default())
}

// FromTheme maps th onto calendar options.
func FromTheme(th theme.Theme) Options {
	return Options{
		TitleStyle:  th.Calendar.Title,
		HeaderStyle: th.Calendar.Header,
		DayStyle:    th.Calendar.Day,
		OtherStyle:  th.Calendar.Other,
		MoodStyle:   th.Calendar.Mood,
		TodayStyle:  th.Calendar.Today,
		CursorStyle: th.Calendar.Cursor,
		ShowHeader:  true,
	}
}
