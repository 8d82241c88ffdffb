package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cartadesk [file-or-folder] [backend options]",
		Short: "Desktop launcher for the CARTA backend",
		// The backend owns most of the option surface and the grammar
		// (greedy passthrough pairing, "--" separator) is not
		// pflag-expressible, so the raw argument vector goes straight to
		// the launcher's own parser.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args)
		},
	}
}
