package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/commands/options"
	"tableflip.dev/moodcal/pkg/printers"
	"tableflip.dev/moodcal/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "print a month of moods",
		Example: `
moodcal show
moodcal show --month 2024-02
moodcal show --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			cal, err := e.calendar(printers.Notifier{})
			if err != nil {
				return output.HandleError(err)
			}
			view, err := mo.GetView(time.Now())
			if err != nil {
				return output.HandleError(err)
			}

			s := show.Show{
				Calendar: cal,
				View:     view,
				JSON:     output.JSON,
				Out:      cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
