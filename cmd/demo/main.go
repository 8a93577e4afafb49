// Command demo fills a month of the configured store with sample moods.
package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/commands/options"
	"tableflip.dev/moodcal/pkg/datekey"
	"tableflip.dev/moodcal/pkg/logging"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/printers"
	"tableflip.dev/moodcal/pkg/store"
)

func main() {
	mo := &options.MonthOptions{}
	var (
		density float64
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Seed sample moods into the configured store.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := mo.GetView(time.Now())
			if err != nil {
				return err
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel(), false)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			st, err := store.Open(cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			rng := rand.New(rand.NewSource(seed))
			opts := mood.Default()
			days := calendar.DaysIn(view.Year, view.Month)
			for d := 1; d <= days; d++ {
				if rng.Float64() > density {
					continue
				}
				o := opts[rng.Intn(len(opts))]
				at := time.Date(view.Year, view.Month, d, 20, 0, 0, 0, time.Local)
				if err := st.Put(datekey.Encode(view.Year, view.Month, d), mood.NewRecord(o.Kind, o.Emoji, at)); err != nil {
					return err
				}
			}

			printMonth(cmd.OutOrStdout(), cfg, st, view, time.Now())
			return nil
		},
	}
	options.AddMonthArgs(cmd, mo)
	cmd.Flags().Float64Var(&density, "density", 0.7, "Share of days that get a mood.")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "Random seed.")

	if err := cmd.Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}

// printMonth renders view the way `moodcal show` does for the same config.
func printMonth(w io.Writer, cfg store.Config, st *store.Store, view calendar.View, now time.Time) {
	g := calendar.Build(view.Year, view.Month, st, now, calendar.WithWeekStart(cfg.WeekStart()))
	pp := printers.PrettyPrint{Out: w}
	pp.Month(calendar.Title(view, cfg.Locale()), calendar.WeekdayHeader(cfg.WeekStart(), cfg.Locale()), g)
	_, _ = fmt.Fprintf(w, "\n%d days recorded\n", st.Len())
}
