package calendar

import (
	"time"

	"tableflip.dev/moodcal/pkg/datekey"
)

// View identifies the month currently shown.
type View struct {
	Year  int
	Month time.Month
}

// ViewOf returns the view containing t.
func ViewOf(t time.Time) View {
	return View{Year: t.Year(), Month: t.Month()}
}

// Next moves one month forward, rolling December into January.
func (v View) Next() View {
	return v.shift(1)
}

// Prev moves one month back, rolling January into December.
func (v View) Prev() View {
	return v.shift(-1)
}

func (v View) shift(months int) View {
	t := time.Date(v.Year, v.Month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	return View{Year: t.Year(), Month: t.Month()}
}

// First is local midnight of the first day of the view.
func (v View) First() time.Time {
	return time.Date(v.Year, v.Month, 1, 0, 0, 0, 0, time.Local)
}

// String is the YYYY-MM form accepted by ParseMonth.
func (v View) String() string {
	return v.First().Format("2006-01")
}

// Contains reports whether key names a day of the view.
func (v View) Contains(key datekey.Key) bool {
	t, err := key.Time()
	if err != nil {
		return false
	}
	return t.Year() == v.Year && t.Month() == v.Month
}

// ParseMonth reads "2006-01" or "January 2006".
func ParseMonth(s string) (View, bool) {
	for _, layout := range []string{"2006-01", "2006-1", "January 2006", "Jan 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return ViewOf(t), true
		}
	}
	return View{}, false
}
