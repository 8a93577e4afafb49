package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the mood calendar",
		Example: `
moodcal ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.Close()

			i := ui.UI{Store: e.store, Options: e.options(nil)}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
