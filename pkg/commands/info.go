package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where moods are stored.",
		Example: `
moodcal info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.Close()

			s := info.Info{
				Config: e.cfg,
				Store:  e.store,
				Out:    cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
