// Package commands implements the CLI commands for bump.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/bump/internal/app"
	"go.trai.ch/bump/internal/build"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for bump.
type CLI struct {
	app     Application
	log     LogSwitcher
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, sourceDir, packagesDir string, opts app.RunOptions) error
}

// LogSwitcher is implemented by loggers that can emit JSON records.
type LogSwitcher interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app. log may be nil, in which
// case --log-format only accepts "pretty".
func New(a Application, log LogSwitcher) *CLI {
	rootCmd := &cobra.Command{
		Use:   "bump [flags] <source-folder> <packages-folder>",
		Short: "Bump a package version and propagate it through a monorepo",
		Long: "bump asks for a new version of the package in <source-folder>, rewrites every\n" +
			"manifest in <packages-folder> that depends on it and repeats the question for\n" +
			"each dependent, wave by wave.",
		Args:          cobra.MaximumNArgs(2),
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
		app:     a,
		log:     log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().String("log-format", "pretty", "Log format: pretty or json")
	rootCmd.PersistentPreRunE = c.applyLogFormat

	rootCmd.Flags().StringP("config", "c", "", "Path to a bump.yaml (default: <packages-folder>/bump.yaml)")
	rootCmd.Flags().StringP("output-mode", "o", "auto", "Prompt mode: auto, tui, or linear")
	rootCmd.Flags().Bool("ci", false, "Use the linear prompt (shorthand for --output-mode=linear)")
	rootCmd.Flags().String("journal", "", "Append every manifest rewrite to this JSON file")
	rootCmd.RunE = c.runBump

	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) applyLogFormat(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("log-format")
	switch format {
	case "pretty":
		if c.log != nil {
			c.log.SetJSON(false)
		}
	case "json":
		if c.log == nil {
			return zerr.With(zerr.New("json logging is not available"), "format", format)
		}
		c.log.SetJSON(true)
	default:
		return zerr.With(zerr.New("unknown log format"), "format", format)
	}
	return nil
}

func (c *CLI) runBump(cmd *cobra.Command, args []string) error {
	var sourceDir, packagesDir string
	if len(args) > 0 {
		sourceDir = args[0]
	}
	if len(args) > 1 {
		packagesDir = args[1]
	}

	configPath, _ := cmd.Flags().GetString("config")
	outputMode, _ := cmd.Flags().GetString("output-mode")
	ci, _ := cmd.Flags().GetBool("ci")
	journalPath, _ := cmd.Flags().GetString("journal")

	if ci {
		outputMode = "linear"
	}

	return c.app.Run(cmd.Context(), sourceDir, packagesDir, app.RunOptions{
		ConfigPath:  configPath,
		OutputMode:  outputMode,
		JournalPath: journalPath,
	})
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
