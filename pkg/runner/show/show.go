// Package show prints a month of moods.
package show

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/printers"
)

// Show prints the grid of View followed by the mood counts of that month.
type Show struct {
	Calendar *app.Calendar
	View     calendar.View
	JSON     bool
	Out      io.Writer
}

type month struct {
	Title  string                 `json:"title"`
	Month  string                 `json:"month"`
	Days   map[string]mood.Record `json:"days"`
	Counts map[string]int         `json:"counts"`
}

func (n *Show) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not show, no calendar")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	n.Calendar.SetView(n.View)
	g := n.Calendar.Grid()
	counts := n.Calendar.Stats()

	if n.JSON {
		m := month{
			Title:  n.Calendar.Title(),
			Month:  n.Calendar.View().String(),
			Days:   make(map[string]mood.Record),
			Counts: make(map[string]int, len(counts)),
		}
		for _, c := range g.Cells {
			if !c.InMonth || !c.HasMood {
				continue
			}
			if r, ok := n.Calendar.Store().Get(c.Key); ok {
				m.Days[string(c.Key)] = r
			}
		}
		for _, c := range counts {
			m.Counts[string(c.Option.Kind)] = c.Days
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}

	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	pp.Month(n.Calendar.Title(), n.Calendar.Header(), g)
	pp.NewLine()
	pp.Stats(counts)
	return nil
}
