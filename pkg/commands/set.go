package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/commands/options"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/printers"
	"tableflip.dev/moodcal/pkg/runner/set"
)

func addSet(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "set <mood>",
		Short: "record the mood of a day",
		Long: `Record the mood of a day, replacing any mood already saved for it.
The mood is a name, an emoji, or the number shown by 'moodcal key'.`,
		Example: `
moodcal set happy
moodcal set 4 --on 2024-02-29
moodcal set -i --on 3/1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if io.Interactive {
				return cobra.NoArgs(cmd, args)
			}
			if len(args) != 1 {
				return errors.New("requires a mood, see 'moodcal key'")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return mood.Kinds(), cobra.ShellCompDirectiveNoFileComp
		},
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

			s := set.Set{
				Calendar:    cal,
				On:          on,
				Interactive: io.Interactive,
				Out:         cmd.OutOrStdout(),
			}
			if len(args) > 0 {
				s.Mood = args[0]
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddOnArgs(cmd, oo)
	options.InteractiveArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
