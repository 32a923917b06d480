package cli

import (
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/junct/pkg/filesystem"
	"github.com/arthur-debert/junct/pkg/junction"
	"github.com/arthur-debert/junct/pkg/logging"
	"github.com/arthur-debert/junct/pkg/relocation"
	"github.com/arthur-debert/junct/pkg/ui"
)

func newRelocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relocate <source> <target>",
		Short: "Move a directory's contents and leave a junction behind",
		Long: `Relocate moves everything inside <source> into <target>, then replaces
<source> with a junction pointing at <target>. Programs that keep using
the original path are transparently redirected to the new location.

The target is created if it does not exist; if it exists it must be an
empty directory. On failure the operation stops at the failing step and
nothing is rolled back, so the message tells you which step failed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelocate(cmd, args[0], args[1])
		},
	}
	return cmd
}

func runRelocate(cmd *cobra.Command, source, target string) error {
	logger := logging.GetLogger("cli.relocate")

	cfg, err := loadConfig(cmd)
	if err != nil {
		out := newRenderer(cmd.OutOrStdout(), resolveFormat(cmd, nil))
		out.Error("Error: %s", err.Error())
		return err
	}
	format := resolveFormat(cmd, cfg)
	out := newRenderer(cmd.OutOrStdout(), format)

	source, err = filepath.Abs(source)
	if err != nil {
		return err
	}
	target, err = filepath.Abs(target)
	if err != nil {
		return err
	}

	fsys := filesystem.NewOS()
	worker := relocation.NewWorker(relocation.WorkerOptions{
		FS:           fsys,
		Linker:       junction.NewLinker(fsys, cfg.LinkMode()),
		QueueSize:    cfg.Worker.QueueSize,
		ResultBuffer: cfg.Worker.ResultBuffer,
	})
	worker.Start()

	coord := relocation.NewCoordinator(worker, relocation.CoordinatorOptions{
		FS:           fsys,
		PollInterval: cfg.Worker.PollInterval,
	})
	defer coord.Shutdown()

	if err := coord.ValidateAndSubmit(source, target); err != nil {
		out.Error("Error: %s", err.Error())
		return err
	}

	logger.Info().Str("source", source).Str("target", target).Msg("Relocation submitted")

	var spinner *pterm.SpinnerPrinter
	if format == ui.FormatTerminal {
		spinner, _ = pterm.DefaultSpinner.Start("Relocating " + source)
	}

	outcome, err := coord.WaitOutcome(cmd.Context())
	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		return err
	}

	if outcome.Failed() {
		out.Error("Error during %s: %s", outcome.Step, outcome.Err.Error())
		out.Hint("The relocation stopped at that step; earlier steps are not undone.")
		out.Hint("Inspect %s and %s, then run the command again.",
			out.Path(outcome.Source), out.Path(outcome.Target))
		return outcome.Err
	}

	out.Success("Moved contents of %s to %s", out.Path(outcome.Source), out.Path(outcome.Target))
	out.Plain("A junction at %s now points to %s.", out.Path(outcome.Source), out.Path(outcome.Target))
	return nil
}
