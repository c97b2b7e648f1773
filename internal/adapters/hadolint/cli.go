package hadolint

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"time"

	"go.trai.ch/dummit/internal/core/domain"
	"go.trai.ch/dummit/internal/core/ports"
	"go.trai.ch/zerr"
)

// lintCommand is the command run inside the linter image. "-" reads stdin.
var lintCommand = []string{"hadolint", "--format", "json", "-"}

// waitDelay bounds how long output pipes may stay open after the runtime is killed.
const waitDelay = 5 * time.Second

// CLILinter runs the linter through a container runtime CLI such as docker or podman.
type CLILinter struct{}

// NewCLILinter creates a new CLILinter.
func NewCLILinter() *CLILinter {
	return &CLILinter{}
}

// Lint runs `<runtime> run --rm -i <image> hadolint --format json -` with the
// Dockerfile on stdin. hadolint exits non-zero when it has findings, so a
// non-zero exit is only an error when stdout carries no parsable report.
func (l *CLILinter) Lint(
	ctx context.Context,
	dockerfile *domain.Dockerfile,
	opts ports.LintOptions,
	stderr io.Writer,
) ([]domain.Diagnostic, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	if stderr == nil {
		stderr = io.Discard
	}

	args := append([]string{"run", "--rm", "-i", opts.Image}, lintCommand...)
	//nolint:gosec // runtime and image come from the user's own configuration
	cmd := exec.CommandContext(ctx, opts.Runtime, args...)
	cmd.Stdin = bytes.NewReader(dockerfile.Bytes())
	cmd.WaitDelay = waitDelay

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	runErr := cmd.Run()
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, zerr.With(zerr.Wrap(runErr, domain.ErrLinterInvocation.Error()), "runtime", opts.Runtime)
		}
		if ctx.Err() != nil {
			return nil, zerr.With(zerr.Wrap(ctx.Err(), domain.ErrLinterInvocation.Error()), "timeout", opts.Timeout.String())
		}
	}

	diags, err := ParseOutput(stdout.Bytes())
	switch {
	case runErr != nil && (err != nil || len(bytes.TrimSpace(stdout.Bytes())) == 0):
		return nil, zerr.With(
			zerr.Wrap(runErr, domain.ErrLinterInvocation.Error()),
			"exit_code", cmd.ProcessState.ExitCode(),
		)
	case err != nil:
		return nil, err
	}

	return diags, nil
}
