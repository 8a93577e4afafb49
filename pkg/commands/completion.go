package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generates shell completion scripts",
		Long: `To load completion run

. <(moodcal completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(moodcal completion)
`,
		ValidArgs: []string{"bash", "zsh", "fish"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) > 0 {
				shell = args[0]
			}
			out := cmd.OutOrStdout()
			switch shell {
			case "bash":
				return topLevel.GenBashCompletion(out)
			case "zsh":
				return topLevel.GenZshCompletion(out)
			case "fish":
				return topLevel.GenFishCompletion(out, true)
			default:
				return fmt.Errorf("unsupported shell %q", shell)
			}
		},
	}

	topLevel.AddCommand(cmd)
}
