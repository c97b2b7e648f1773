// Package detector inspects the environment to decide how output is rendered.
package detector

import (
	"io"
	"os"

	"go.trai.ch/dummit/internal/core/domain"
	"golang.org/x/term"
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to a terminal.
// Writers without a file descriptor are never terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColorEnabled resolves setting against w once.
// In auto mode color needs a terminal and is turned off by NO_COLOR.
func ColorEnabled(setting domain.ColorSetting, w io.Writer) bool {
	if setting == domain.ColorAuto && os.Getenv("NO_COLOR") != "" {
		return false
	}
	return setting.Enabled(IsTerminal(w))
}
