package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/commands/options"
	"tableflip.dev/moodcal/pkg/printers"
	"tableflip.dev/moodcal/pkg/runner/remove"
)

func addClear(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "delete the mood of a day",
		Example: `
moodcal clear
moodcal clear --on 2024-02-29
`,
		ValidArgs: []string{},
		Args:      cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetOn(time.Now())
			if err != nil {
				return err
			}

			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.Close()

			cal, err := e.calendar(printers.Notifier{Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}

			r := remove.Remove{Calendar: cal, On: on, Out: cmd.OutOrStdout()}
			return r.Do(cmd.Context())
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
