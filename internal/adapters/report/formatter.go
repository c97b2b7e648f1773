// Package report renders lint diagnostics interleaved with the Dockerfile
// they refer to.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/dummit/internal/core/domain"
	"go.trai.ch/dummit/internal/ui/output"
	"go.trai.ch/dummit/internal/ui/style"
)

// Formatter writes the diagnostic report.
type Formatter struct {
	color bool
}

// NewFormatter creates a Formatter. The color decision is made by the caller
// once per invocation.
func NewFormatter(color bool) *Formatter {
	return &Formatter{color: color}
}

// Format writes every source line preceded by the diagnostics that point at it.
// Diagnostics for the same line keep the order they were received in.
// Diagnostics pointing outside the source follow the last line, and a summary
// closes the report when there is anything to summarize.
func (f *Formatter) Format(w io.Writer, source []string, diags []domain.Diagnostic) error {
	out := output.NewWithProfile(w, func() termenv.Profile { return output.ProfileFor(f.color) })

	byLine := make(map[int][]domain.Diagnostic, len(diags))
	var orphans []domain.Diagnostic
	for _, d := range diags {
		if d.Line < 1 || d.Line > len(source) {
			orphans = append(orphans, d)
			continue
		}
		byLine[d.Line] = append(byLine[d.Line], d)
	}

	var sb strings.Builder
	for i, line := range source {
		for _, d := range byLine[i+1] {
			sb.WriteString(f.diagnosticLine(out, d))
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	for _, d := range orphans {
		sb.WriteString(f.diagnosticLine(out, d))
		sb.WriteByte('\n')
	}

	if len(diags) > 0 {
		s := domain.Summarize(diags)
		fmt.Fprintf(&sb, "%d error(s), %d warning(s)\n", s.Errors, s.Warnings)
	}

	_, err := out.WriteString(sb.String())
	return err
}

// diagnosticLine renders `<marker> <code>: <message>` with a colored marker.
func (f *Formatter) diagnosticLine(out *termenv.Output, d domain.Diagnostic) string {
	marker, color := style.ErrorMarker, termenv.ANSIRed
	if d.Level.IsWarning() {
		marker, color = style.WarningMarker, termenv.ANSIYellow
	}

	return out.String(marker).Foreground(color).String() + " " + d.Code + ": " + d.Message
}
