package domain

import (
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultStrandsPath is the default location of the strand database.
	DefaultStrandsPath = "strands.yml"

	// SettingsFileName is the name of the optional settings file in the working directory.
	SettingsFileName = ".dummit.yaml"

	// SettingsEnvPrefix prefixes environment variables that override settings.
	SettingsEnvPrefix = "DUMMIT"

	// DefaultLintImage is the container image that provides the linter.
	DefaultLintImage = "hadolint/hadolint"

	// DefaultContainerRuntime is the CLI used by the cli lint backend.
	DefaultContainerRuntime = "docker"

	// DefaultLintTimeout bounds a single linter invocation.
	DefaultLintTimeout = 2 * time.Minute

	// FilePerm is the default permission for generated files (rw-r--r--).
	FilePerm = 0o644

	// DirPerm is the default permission for created directories (rwxr-x---).
	DirPerm = 0o750
)

// LintBackend selects how the linter container is run.
type LintBackend string

const (
	// LintBackendCLI runs the container through a container runtime CLI.
	LintBackendCLI LintBackend = "cli"
	// LintBackendEngine talks to the Docker Engine API directly.
	LintBackendEngine LintBackend = "engine"
)

// ParseLintBackend validates a --lint-backend value. An empty value means cli.
func ParseLintBackend(s string) (LintBackend, error) {
	switch LintBackend(s) {
	case LintBackendCLI, "":
		return LintBackendCLI, nil
	case LintBackendEngine:
		return LintBackendEngine, nil
	default:
		return "", zerr.With(ErrInvalidLintBackend, "backend", s)
	}
}
