package options

import (
	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	Level string
	Dev   bool
}

// AddLogArgs registers persistent logging flags, shared by every subcommand.
func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().StringVar(&o.Level, "log-level", "",
		"Log level written to stderr: debug, info, warn or error.")
	cmd.PersistentFlags().BoolVar(&o.Dev, "log-dev", false,
		"Human readable development logs.")
}
