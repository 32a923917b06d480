package cli

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/junct/pkg/ui"
)

//go:embed docs/junctions.md
var junctionsDoc string

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Explain how junct relocates directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			content := junctionsDoc
			if resolveFormat(cmd, cfg) == ui.FormatTerminal {
				content = renderMarkdown(content)
			}
			cmd.Print(content)
			return nil
		},
	}
}

// renderMarkdown converts markdown to terminal output, falling back to
// the raw text on error
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
