package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/calendar"
)

// Month prints the six week rows of g under a centered title and weekday
// header. Adjacent-month days are faint, today is underlined and days with a
// mood are bold and followed by their glyph.
func (pp *PrettyPrint) Month(title string, header []string, g calendar.Grid) {
	out := pp.out()

	tf := color.New(color.FgHiMagenta, color.Bold)
	_, _ = tf.Fprintln(out, center(title, width))

	hf := color.New(color.Faint)
	labels := make([]string, len(header))
	for i, h := range header {
		labels[i] = fmt.Sprintf("%-*s", cellWidth, h)
	}
	_, _ = hf.Fprintln(out, strings.Join(labels, " "))

	other := color.New(color.Faint, color.FgWhite)
	plain := color.New(color.FgWhite)
	marked := color.New(color.Bold, color.FgHiWhite)

	for _, row := range g.Rows() {
		for i, c := range row {
			if i > 0 {
				_, _ = fmt.Fprint(out, " ")
			}
			printer := plain
			switch {
			case !c.InMonth:
				printer = other
			case c.HasMood:
				printer = marked
			}
			if c.IsToday {
				printer = color.New(color.Underline, color.Bold, color.FgHiMagenta)
			}
			_, _ = printer.Fprintf(out, "%2d", c.Day)
			if c.HasMood {
				_, _ = fmt.Fprint(out, c.Glyph)
			} else {
				_, _ = fmt.Fprint(out, "  ")
			}
		}
		_, _ = fmt.Fprintln(out, "")
	}
	pp.NewLine()
}
