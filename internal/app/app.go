// Package app implements the application layer for dummit.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/dummit/internal/adapters/detector"
	"go.trai.ch/dummit/internal/adapters/report"
	"go.trai.ch/dummit/internal/core/domain"
	"go.trai.ch/dummit/internal/core/ports"
	"go.trai.ch/dummit/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.DockerfileStore
	linters      ports.LinterProvider
	tracer       ports.Tracer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.DockerfileStore,
	linters ports.LinterProvider,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		linters:      linters,
		tracer:       tracer,
		logger:       log,
	}
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	// ConfPath is the conf document listing the requested strands.
	ConfPath string
	// OutputPath is where the Dockerfile is written. Required unless DryRun is set.
	OutputPath string
	// DryRun prints the Dockerfile instead of writing and linting it.
	DryRun bool
	// StrandsPath is the strand database.
	StrandsPath string
	// TorchTemplate overrides the pytorch+cuda base image template when set.
	TorchTemplate string
	// Color controls colorization of the lint report.
	Color domain.ColorSetting
	// NoLint skips the linter and the report.
	NoLint bool
	// LintBackend selects how the linter container runs.
	LintBackend domain.LintBackend
	// Lint configures the linter invocation.
	Lint ports.LintOptions
	// Stdout receives the dry-run Dockerfile or the lint report. Defaults to os.Stdout.
	Stdout io.Writer
	// Stderr receives the linter's own error output. Defaults to os.Stderr.
	Stderr io.Writer
}

// Generate resolves the conf into a Dockerfile, then either prints it (dry run)
// or writes it, lints it and prints the annotated report.
//
// Lint failures are logged as warnings and never fail the generation.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	if !opts.DryRun && opts.OutputPath == "" {
		return domain.ErrMissingOutputPath
	}

	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	ctx, span := a.tracer.Start(ctx, "generate")
	defer span.End()
	span.SetAttribute("conf", opts.ConfPath)
	span.SetAttribute("dry_run", opts.DryRun)

	dockerfile, err := a.resolve(ctx, opts)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if opts.DryRun {
		if _, err := stdout.Write(dockerfile.Bytes()); err != nil {
			return zerr.Wrap(err, "failed to print dockerfile")
		}
		return nil
	}

	if err := a.phase(ctx, "write", func(context.Context) error {
		return a.write(opts.OutputPath, dockerfile)
	}); err != nil {
		span.RecordError(err)
		return err
	}

	if opts.NoLint {
		return nil
	}

	diags := a.lint(ctx, dockerfile, opts, stderr)

	if err := a.phase(ctx, "report", func(context.Context) error {
		return a.report(opts, diags, stdout)
	}); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (a *App) resolve(ctx context.Context, opts GenerateOptions) (*domain.Dockerfile, error) {
	var (
		db   domain.StrandDatabase
		conf domain.Conf
	)
	if err := a.phase(ctx, "load", func(context.Context) error {
		var err error
		db, err = a.configLoader.LoadStrands(opts.StrandsPath)
		if err != nil {
			return zerr.Wrap(err, "failed to load strand database")
		}
		conf, err = a.configLoader.LoadConf(opts.ConfPath)
		if err != nil {
			return zerr.Wrap(err, "failed to load conf")
		}
		return nil
	}); err != nil {
		return nil, err
	}

	var dockerfile *domain.Dockerfile
	err := a.phase(ctx, "resolve", func(context.Context) error {
		torch, err := resolver.TorchCase(opts.TorchTemplate)
		if err != nil {
			return err
		}
		dockerfile, err = resolver.NewResolver(torch).Resolve(conf, db)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve conf"), "path", opts.ConfPath)
		}
		return nil
	})
	return dockerfile, err
}

func (a *App) write(path string, dockerfile *domain.Dockerfile) error {
	changed, err := a.store.Write(path, dockerfile)
	if err != nil {
		return err
	}
	if changed {
		a.logger.Info("wrote " + path)
	} else {
		a.logger.Info(path + " is up to date")
	}
	return nil
}

func (a *App) lint(
	ctx context.Context,
	dockerfile *domain.Dockerfile,
	opts GenerateOptions,
	stderr io.Writer,
) []domain.Diagnostic {
	var diags []domain.Diagnostic
	err := a.phase(ctx, "lint", func(ctx context.Context) error {
		linter, err := a.linters.Linter(opts.LintBackend)
		if err != nil {
			return err
		}
		diags, err = linter.Lint(ctx, dockerfile, opts.Lint, stderr)
		return err
	})
	if err != nil {
		a.logger.Warn("lint failed, reporting without diagnostics: " + err.Error())
	}
	return diags
}

// report prints the file as it is on disk, annotated with diags.
func (a *App) report(opts GenerateOptions, diags []domain.Diagnostic, stdout io.Writer) error {
	written, err := a.store.Read(opts.OutputPath)
	if err != nil {
		return err
	}

	color := detector.ColorEnabled(opts.Color, stdout)
	if err := report.NewFormatter(color).Format(stdout, written.Lines(), diags); err != nil {
		return zerr.Wrap(err, "failed to print lint report")
	}
	return nil
}

// phase runs fn inside a span named name, recording its error.
func (a *App) phase(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
