package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/dummit/internal/adapters/settings"
	"go.trai.ch/dummit/internal/adapters/telemetry"
	"go.trai.ch/dummit/internal/app"
	"go.trai.ch/dummit/internal/core/ports"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <conf-file> [<dockerfile-path>]",
		Short: "Generate a Dockerfile from a conf file",
		Long: "Resolve every strand listed in the conf file against the strand database and " +
			"write the resulting Dockerfile. Unless --no-lint is set, the file is then linted " +
			"with hadolint and printed with the findings above the lines they refer to.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.settings.Load(cmd.Flags())
			if err != nil {
				return err
			}
			c.configureLogger(s)

			ctx := cmd.Context()
			if s.Trace {
				shutdown := telemetry.Install(c.logger)
				defer func() { _ = shutdown(context.WithoutCancel(ctx)) }()
			}

			dryRun, _ := cmd.Flags().GetBool("dry-run")
			var outputPath string
			if len(args) > 1 {
				outputPath = args[1]
			}

			return c.app.Generate(ctx, app.GenerateOptions{
				ConfPath:      args[0],
				OutputPath:    outputPath,
				DryRun:        dryRun,
				StrandsPath:   s.StrandsPath,
				TorchTemplate: s.TorchTemplate,
				Color:         s.Color,
				NoLint:        s.NoLint,
				LintBackend:   s.LintBackend,
				Lint: ports.LintOptions{
					Image:   s.LintImage,
					Runtime: s.ContainerRuntime,
					Timeout: s.LintTimeout,
				},
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
		},
	}
	cmd.Flags().Bool("dry-run", false, "Print the Dockerfile instead of writing and linting it")
	settings.RegisterFlags(cmd.Flags())
	return cmd
}
