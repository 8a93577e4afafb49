package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/calendar"
)

// MonthOptions selects the month a command shows.
type MonthOptions struct {
	Month string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Specify a month, example: --month="2024-02" or --month="Feb 2024". Defaults to this month.`)
}

// GetView resolves --month, defaulting to the month of now.
func (o *MonthOptions) GetView(now time.Time) (calendar.View, error) {
	if o.Month == "" {
		return calendar.ViewOf(now), nil
	}
	v, ok := calendar.ParseMonth(o.Month)
	if !ok {
		return calendar.View{}, fmt.Errorf("invalid --month %q, want YYYY-MM", o.Month)
	}
	return v, nil
}
