// Package commands implements the CLI commands for taskgen.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ld55/taskgen/internal/app"
	"github.com/ld55/taskgen/internal/build"
	"github.com/ld55/taskgen/internal/core/domain"
	"github.com/ld55/taskgen/internal/core/ports"
	"github.com/spf13/cobra"
)

// Usage is printed to stdout when the arguments are invalid.
const Usage = "Usage: taskgen [release|debug|web]"

// CLI represents the command line interface for taskgen.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command

	root       string
	configPath string
	platform   string
	strict     bool
	jsonLog    bool
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.GenerateOptions) (domain.WriteResult, error)
}

// jsonSwitcher is implemented by loggers that can emit JSON.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, log ports.Logger) *CLI {
	c := &CLI{app: a, logger: log}

	rootCmd := &cobra.Command{
		Use:           "taskgen [release|debug|web]",
		Short:         "Generate .vscode/tasks.json for the game project",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          validateArgs,
		RunE:          c.runGenerate,
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

	// The only positional words are the aliases, so cobra's generated
	// commands are rejected like any other argument.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
		Args:   cobra.ArbitraryArgs,
		RunE: func(*cobra.Command, []string) error {
			return domain.ErrInvalidArguments
		},
	})

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Join(domain.ErrInvalidArguments, err)
	})

	flags := rootCmd.Flags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Settings file (default: taskgen.yaml in the project root)")
	flags.StringVarP(&c.root, "root", "r", ".", "Project root the tasks file is written under")
	flags.StringVar(&c.platform, "platform", "", "Target platform: windows or linux (default: host)")
	flags.BoolVar(&c.strict, "strict", false, "Fail on dangling dependencies and unparsable commands")
	flags.BoolVar(&c.jsonLog, "json-log", false, "Write logs as JSON")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func validateArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		if _, err := domain.ParseAlias(args[0]); err != nil {
			return errors.Join(domain.ErrInvalidArguments, err)
		}
		return nil
	default:
		return domain.ErrInvalidArguments
	}
}

func (c *CLI) runGenerate(cmd *cobra.Command, args []string) error {
	if c.jsonLog {
		if j, ok := c.logger.(jsonSwitcher); ok {
			j.SetJSON(true)
		}
	}

	opts := app.GenerateOptions{
		Root:       c.root,
		ConfigPath: c.configPath,
		Strict:     c.strict,
	}

	if len(args) == 1 {
		alias, err := domain.ParseAlias(args[0])
		if err != nil {
			return errors.Join(domain.ErrInvalidArguments, err)
		}
		opts.Alias = &alias
	}

	if c.platform != "" {
		p, err := domain.ParsePlatform(c.platform)
		if err != nil {
			return err
		}
		opts.Platform = &p
	}

	_, err := c.app.Generate(cmd.Context(), opts)
	return err
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
