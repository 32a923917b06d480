package cli

import (
	"github.com/spf13/cobra"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/junct/pkg/config"
	"github.com/arthur-debert/junct/pkg/paths"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage junct configuration",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with the default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				path = paths.New().ConfigFilePath()
			}

			out := newRenderer(cmd.OutOrStdout(), resolveFormat(cmd, nil))
			if err := config.WriteDefault(path); err != nil {
				out.Error("Error: %s", err.Error())
				return err
			}

			out.Success("Wrote default configuration to %s", out.Path(path))
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Show prints the configuration after merging defaults, the config file,
and JUNCT_* environment variables, in TOML form.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			data, err := gotoml.Marshal(cfg)
			if err != nil {
				return err
			}

			cmd.Print(string(data))
			return nil
		},
	}
}
