package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/junct/pkg/config"
	"github.com/arthur-debert/junct/pkg/ui"
)

// loadConfig reads the effective configuration honoring the --config
// flag
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// resolveFormat picks the output format from the --color flag, the
// configuration, and terminal detection
func resolveFormat(cmd *cobra.Command, cfg *config.Config) ui.Format {
	choice, _ := cmd.Flags().GetString("color")
	if choice == "auto" && cfg != nil {
		choice = cfg.Output.Color
	}

	format, err := ui.ParseFormat(choice)
	if err != nil {
		format = ui.FormatAuto
	}
	return ui.Resolve(format, os.Stdout)
}
