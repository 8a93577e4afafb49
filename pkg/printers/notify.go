package printers

import (
	"io"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/session"
)

// Notifier prints session notifications, colored by severity.
type Notifier struct {
	Out io.Writer
}

func (n Notifier) Notify(message string, severity session.Severity) {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	var c *color.Color
	switch severity {
	case session.Success:
		c = color.New(color.FgGreen, color.Bold)
	case session.Error:
		c = color.New(color.FgRed, color.Bold)
	default:
		c = color.New(color.FgHiMagenta)
	}
	_, _ = c.Fprintln(out, message)
}
