package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/junct/pkg/ui"
	"github.com/arthur-debert/junct/pkg/ui/styles"
)

// renderer writes styled or plain output depending on the resolved
// format.
type renderer struct {
	out    io.Writer
	format ui.Format
}

func newRenderer(out io.Writer, format ui.Format) *renderer {
	return &renderer{out: out, format: format}
}

func (r *renderer) styled(style, text string) string {
	if r.format != ui.FormatTerminal {
		return text
	}
	return styles.GetStyle(style).Render(text)
}

func (r *renderer) Success(format string, args ...interface{}) {
	fmt.Fprintln(r.out, r.styled("Success", fmt.Sprintf(format, args...)))
}

func (r *renderer) Error(format string, args ...interface{}) {
	fmt.Fprintln(r.out, r.styled("Error", fmt.Sprintf(format, args...)))
}

func (r *renderer) Hint(format string, args ...interface{}) {
	fmt.Fprintln(r.out, r.styled("Hint", fmt.Sprintf(format, args...)))
}

func (r *renderer) Path(path string) string {
	return r.styled("FilePath", path)
}

func (r *renderer) Plain(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}
