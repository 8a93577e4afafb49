// Package datekey encodes calendar dates as the canonical YYYY-MM-DD keys that
// join calendar cells to stored mood records.
package datekey

import (
	"fmt"
	"strings"
	"time"
)

const layoutISO = "2006-01-02"

// Key is a canonical YYYY-MM-DD date key.
type Key string

// Encode formats year, month and day as a Key. No calendar validation is done;
// out of range values still produce a well formed, meaningless key.
func Encode(year int, month time.Month, day int) Key {
	return Key(fmt.Sprintf("%04d-%02d-%02d", year, int(month), day))
}

// FromTime returns the key for the local calendar date of t.
func FromTime(t time.Time) Key {
	y, m, d := t.Date()
	return Encode(y, m, d)
}

// Parse reads a YYYY-MM-DD string into a local midnight time.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(layoutISO, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("datekey: parse %q: %w", s, err)
	}
	return t, nil
}

// Time returns the local midnight the key names.
func (k Key) Time() (time.Time, error) {
	return Parse(string(k))
}

func (k Key) String() string {
	return string(k)
}
