package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects the day a command acts on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-02-29" or --on="2/29". Defaults to today.`)
}

// GetOn resolves --on relative to now. A short month/day form that would
// land in the future is taken from last year, moods are recorded looking back.
// 2/29 resolves to the most recent leap day.
func (o *OnOptions) GetOn(now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if o.OnString == "" {
		return today, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err == nil {
		return t, nil
	}
	md, err := time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --on %q, want YYYY-MM-DD or M/D", o.OnString)
	}
	// time.Date normalizes Feb 29 of a common year to Mar 1, so walk back
	// until the day exists and is not in the future.
	for year := now.Year(); ; year-- {
		t = time.Date(year, md.Month(), md.Day(), 0, 0, 0, 0, time.Local)
		if t.Month() == md.Month() && !t.After(today) {
			return t, nil
		}
	}
}
