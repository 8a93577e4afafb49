// Package calendar builds the fixed 6x7 month grid annotated with saved
// moods.
package calendar

import (
	"time"

	"tableflip.dev/moodcal/pkg/datekey"
	"tableflip.dev/moodcal/pkg/mood"
)

const (
	// Columns is the number of days per grid row.
	Columns = 7
	// Rows is the number of week rows; the grid always has six.
	Rows = 6
	// Size is the number of cells in every grid.
	Size = Rows * Columns
)

// Lookup resolves the mood saved for a date.
type Lookup interface {
	Lookup(key datekey.Key) (mood.Record, bool)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(key datekey.Key) (mood.Record, bool)

func (f LookupFunc) Lookup(key datekey.Key) (mood.Record, bool) { return f(key) }

// Cell is one grid position. Key is only set for cells of the built month;
// cells of adjacent months are inert.
type Cell struct {
	Day     int
	Date    time.Time
	InMonth bool
	IsToday bool
	HasMood bool
	Glyph   string
	Mood    mood.Kind
	Key     datekey.Key
}

// Grid is the 42 cells of one month view.
type Grid struct {
	Year      int
	Month     time.Month
	WeekStart time.Weekday
	Cells     []Cell
}

type options struct {
	weekStart time.Weekday
}

// Option customizes Build.
type Option func(*options)

// WithWeekStart sets the weekday shown in the first column.
func WithWeekStart(d time.Weekday) Option {
	return func(o *options) {
		o.weekStart = d
	}
}

// Build lays out month of year: trailing days of the previous month, every
// day of the month, then leading days of the next month up to Size cells.
// moods is only read.
func Build(year int, month time.Month, moods Lookup, now time.Time, opts ...Option) Grid {
	o := options{weekStart: time.Sunday}
	for _, opt := range opts {
		opt(&o)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	// Normalize so month 13 etc. behave like time.Date does.
	year, month = first.Year(), first.Month()

	offset := (int(first.Weekday()) - int(o.weekStart) + Columns) % Columns
	days := DaysIn(year, month)
	prev := first.AddDate(0, -1, 0)
	prevDays := DaysIn(prev.Year(), prev.Month())

	ty, tm, td := now.Date()

	g := Grid{Year: year, Month: month, WeekStart: o.weekStart, Cells: make([]Cell, 0, Size)}

	for i := offset - 1; i >= 0; i-- {
		day := prevDays - i
		g.Cells = append(g.Cells, Cell{
			Day:  day,
			Date: time.Date(prev.Year(), prev.Month(), day, 0, 0, 0, 0, time.Local),
		})
	}

	for day := 1; day <= days; day++ {
		c := Cell{
			Day:     day,
			Date:    time.Date(year, month, day, 0, 0, 0, 0, time.Local),
			InMonth: true,
			IsToday: year == ty && month == tm && day == td,
			Key:     datekey.Encode(year, month, day),
		}
		if moods != nil {
			if r, ok := moods.Lookup(c.Key); ok {
				c.HasMood = true
				c.Glyph = r.Emoji
				c.Mood = r.Mood
			}
		}
		g.Cells = append(g.Cells, c)
	}

	next := first.AddDate(0, 1, 0)
	for day := 1; len(g.Cells) < Size; day++ {
		g.Cells = append(g.Cells, Cell{
			Day:  day,
			Date: time.Date(next.Year(), next.Month(), day, 0, 0, 0, 0, time.Local),
		})
	}

	return g
}

// Rows splits the grid into week rows.
func (g Grid) Rows() [][]Cell {
	rows := make([][]Cell, 0, Rows)
	for i := 0; i+Columns <= len(g.Cells); i += Columns {
		rows = append(rows, g.Cells[i:i+Columns])
	}
	return rows
}

// Find returns the index of the in-month cell for key.
func (g Grid) Find(key datekey.Key) (int, bool) {
	for i, c := range g.Cells {
		if c.InMonth && c.Key == key {
			return i, true
		}
	}
	return -1, false
}

// InMonth counts the cells belonging to the built month.
func (g Grid) InMonth() int {
	n := 0
	for _, c := range g.Cells {
		if c.InMonth {
			n++
		}
	}
	return n
}

// Tally counts saved moods in the built month.
func (g Grid) Tally() map[mood.Kind]int {
	out := make(map[mood.Kind]int)
	for _, c := range g.Cells {
		if c.InMonth && c.HasMood {
			out[c.Mood]++
		}
	}
	return out
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
