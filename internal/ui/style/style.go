// Package style provides shared UI styling primitives: the color palette,
// log icons and diagnostic markers.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
)

// Diagnostic markers. They stay readable without color.
const (
	ErrorMarker   = "[x]"
	WarningMarker = "[!]"
)
