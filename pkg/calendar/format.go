package calendar

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

const (
	layoutMonthYear = "January 2006"
	layoutLongDate  = "Monday, January 2, 2006"
)

// Locale normalizes a locale name such as "en-US" to the monday form.
func Locale(name string) monday.Locale {
	name = strings.ReplaceAll(strings.TrimSpace(name), "-", "_")
	for _, l := range monday.ListLocales() {
		if strings.EqualFold(string(l), name) {
			return l
		}
	}
	return monday.LocaleEnUS
}

// Title renders the month heading, e.g. "October 2026".
func Title(v View, locale string) string {
	return monday.Format(v.First(), layoutMonthYear, Locale(locale))
}

// LongDate renders the modal heading, e.g. "Monday, October 19, 2026".
func LongDate(t time.Time, locale string) string {
	loc := Locale(locale)
	layout, ok := monday.FullFormatsByLocale[loc]
	if !ok {
		layout = layoutLongDate
	}
	return monday.Format(t, layout, loc)
}

// WeekdayHeader returns two letter weekday labels starting at start.
func WeekdayHeader(start time.Weekday, locale string) []string {
	loc := Locale(locale)
	// 2023-01-01 was a Sunday.
	base := time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)
	labels := make([]string, Columns)
	for i := 0; i < Columns; i++ {
		day := base.AddDate(0, 0, (int(start)+i)%Columns)
		name := []rune(monday.Format(day, "Mon", loc))
		if len(name) > 2 {
			name = name[:2]
		}
		labels[i] = string(name)
	}
	return labels
}
