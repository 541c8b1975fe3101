// Package console prints restart narration to a terminal.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/relaunch/internal/domain"
)

// Reporter implements domain.Reporter on an io.Writer.
// Styles are resolved against the writer, so output to a pipe or file
// is plain text.
type Reporter struct {
	w         io.Writer
	separator lipgloss.Style
	notice    lipgloss.Style
}

// Ensure Reporter implements domain.Reporter interface.
var _ domain.Reporter = (*Reporter)(nil)

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:         w,
		separator: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "240"}),
		notice:    r.NewStyle().Bold(true),
	}
}

// Separator prints a horizontal rule.
func (r *Reporter) Separator() {
	_, _ = fmt.Fprintln(r.w, r.separator.Render(domain.Separator))
}

// Notice prints a status line.
func (r *Reporter) Notice(msg string) {
	_, _ = fmt.Fprintln(r.w, r.notice.Render(msg))
}

// Echo prints captured output unstyled so it reaches the user byte for byte.
func (r *Reporter) Echo(text string) {
	_, _ = fmt.Fprintln(r.w, text)
}
