// Package printers renders calendars and notifications to the terminal.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/calendar"
)

// PrettyPrint writes colored calendar output.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Stats prints one row per mood with its day count.
func (pp *PrettyPrint) Stats(counts []app.Count) {
	if len(counts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " no moods this month\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range counts {
		days := "days"
		if c.Days == 1 {
			days = "day"
		}
		tbl.AddRow(c.Option.Emoji, c.Option.Meaning, fmt.Sprintf("%d %s", c.Days, days))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// cellWidth is two digits plus a two column emoji or two spaces.
const cellWidth = 4

const width = calendar.Columns*cellWidth + calendar.Columns - 1

func center(s string, w int) string {
	n := len([]rune(s))
	if n >= w {
		return s
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}
