package domain

import "strings"

// Level is the severity of a lint diagnostic.
type Level string

const (
	// LevelError marks a diagnostic that must be fixed.
	LevelError Level = "error"
	// LevelWarning marks a diagnostic that should be looked at.
	LevelWarning Level = "warning"
)

// IsWarning reports whether the level is a warning. Every other level,
// including the linter's info and style levels, is treated like an error.
func (l Level) IsWarning() bool {
	return strings.EqualFold(string(l), string(LevelWarning))
}

// Diagnostic is one finding reported by the linter for a generated Dockerfile.
type Diagnostic struct {
	Line    int
	Column  int
	Level   Level
	Code    string
	Message string
}

// DiagnosticSummary counts diagnostics by severity bucket.
type DiagnosticSummary struct {
	Errors   int
	Warnings int
}

// Summarize counts diagnostics, putting every non-warning level in the error bucket.
func Summarize(diags []Diagnostic) DiagnosticSummary {
	var s DiagnosticSummary
	for _, d := range diags {
		if d.Level.IsWarning() {
			s.Warnings++
		} else {
			s.Errors++
		}
	}
	return s
}
