// Package commands implements the CLI commands for dummit.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/dummit/internal/adapters/settings"
	"go.trai.ch/dummit/internal/app"
	"go.trai.ch/dummit/internal/build"
	"go.trai.ch/dummit/internal/core/ports"
)

// CLI represents the command line interface for dummit.
type CLI struct {
	app      Application
	settings SettingsLoader
	logger   ports.Logger
	rootCmd  *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.GenerateOptions) error
}

// SettingsLoader resolves settings against the flags of the running command.
type SettingsLoader interface {
	Load(flags *pflag.FlagSet) (settings.Settings, error)
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enabled bool)
}

// New creates a new CLI instance.
func New(a Application, loader SettingsLoader, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "dummit",
		Short:         "Generate Dockerfiles from declarative strand lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:      a,
		settings: loader,
		logger:   log,
		rootCmd:  rootCmd,
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) configureLogger(s settings.Settings) {
	if l, ok := c.logger.(jsonSwitcher); ok {
		l.SetJSON(s.LogJSON)
	}
}
