package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/junct/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("junct %s (commit %s, built %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}
