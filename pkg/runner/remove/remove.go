// Package remove clears the mood of a day from the command line.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/datekey"
	"tableflip.dev/moodcal/pkg/printers"
)

// Remove opens the edit session for On and deletes its mood.
type Remove struct {
	Calendar *app.Calendar
	On       time.Time
	Out      io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not clear mood, no calendar")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if err := n.Calendar.OpenDate(n.On); err != nil {
		return err
	}
	defer n.Calendar.Cancel()

	if !n.Calendar.Session().State().CanDelete {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintf(out, "No mood saved for %s\n", datekey.FromTime(n.On))
		return nil
	}
	if err := n.Calendar.Delete(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	pp.Month(n.Calendar.Title(), n.Calendar.Header(), n.Calendar.Grid())
	_, _ = fmt.Fprintln(out, "")
	return nil
}
