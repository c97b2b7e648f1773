// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
	"time"

	"go.trai.ch/dummit/internal/core/domain"
)

// LintOptions configures a single linter invocation.
type LintOptions struct {
	// Image is the container image providing the linter.
	Image string
	// Runtime is the container runtime CLI, used by backends that shell out.
	Runtime string
	// Timeout bounds the invocation. Zero means no additional bound.
	Timeout time.Duration
}

// Linter defines the interface for running the external Dockerfile linter.
//
//go:generate mockgen -source=linter.go -destination=mocks/mock_linter.go -package=mocks
type Linter interface {
	// Lint feeds the Dockerfile to the linter and returns its diagnostics.
	//
	// Anything the linter writes to its standard error is relayed to stderr
	// unmodified. Diagnostics parsed from standard output are returned even
	// when the process exits non-zero.
	Lint(ctx context.Context, dockerfile *domain.Dockerfile, opts LintOptions, stderr io.Writer) ([]domain.Diagnostic, error)
}

// LinterProvider selects the Linter for a backend.
type LinterProvider interface {
	// Linter returns the Linter implementing backend.
	Linter(backend domain.LintBackend) (Linter, error)
}
