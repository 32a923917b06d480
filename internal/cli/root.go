// Package cli builds the junct command tree.
package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/junct/internal/version"
	"github.com/arthur-debert/junct/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "junct",
		Short: "Relocate a directory and leave a junction behind",
		Long: `junct moves the contents of a directory to a new location and replaces
the original path with a junction pointing at that location, so existing
references to the original path keep working.

The move and link happen on a background worker; a failed step leaves
the filesystem exactly as that step left it, and the failure tells you
which step it was.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is $XDG_CONFIG_HOME/junct/config.toml)")
	rootCmd.PersistentFlags().String("color", "auto", "Colorize output: auto, always, or never")

	// Add all commands
	rootCmd.AddCommand(newRelocateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
