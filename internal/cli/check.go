package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/junct/pkg/filesystem"
	"github.com/arthur-debert/junct/pkg/relocation"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <source> <target>",
		Short: "Validate a relocation without performing it",
		Long: `Check runs the same precondition checks relocate runs before touching
anything: the source must be an existing directory, the target must be
absent or an empty directory, and the two must not be the same path.
Nothing is modified.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], args[1])
		},
	}
	return cmd
}

func runCheck(cmd *cobra.Command, source, target string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := newRenderer(cmd.OutOrStdout(), resolveFormat(cmd, cfg))

	coord := relocation.NewCoordinator(nil, relocation.CoordinatorOptions{
		FS: filesystem.NewOS(),
	})

	if err := coord.Validate(source, target); err != nil {
		out.Error("Error: %s", err.Error())
		return err
	}

	out.Success("Relocation from %s to %s would proceed", out.Path(source), out.Path(target))
	return nil
}
