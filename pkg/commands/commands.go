// Package commands wires the moodcal command line.
package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
	logs   = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "moodcal",
		Short: options.Wrap80("Record how each day felt, one mood per day, on a calendar in your terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddLogArgs(cmd, logs)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addSet(topLevel)
	addClear(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
