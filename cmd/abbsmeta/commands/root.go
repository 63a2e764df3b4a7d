// Package commands implements the CLI commands for abbsmeta.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/abbsmeta/internal/app"
	"go.trai.ch/abbsmeta/internal/build"
)

// Verbosity switches debug logging on or off.
type Verbosity interface {
	SetVerbose(verbose bool)
}

// CLI represents the command line interface for abbsmeta.
type CLI struct {
	app       *app.App
	verbosity Verbosity
	rootCmd   *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, verbosity Verbosity) *CLI {
	rootCmd := &cobra.Command{
		Use:           "abbsmeta",
		Short:         "Build a metadata database from an ABBS tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// -v belongs to --verbose, so the version flag is registered without a shorthand.
	rootCmd.Flags().Bool("version", false, "Print the application version")

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug logs")
	rootCmd.PersistentFlags().String("config", "", "Path to configuration file (default ./abbsmeta.yaml)")

	c := &CLI{
		app:       a,
		verbosity: verbosity,
		rootCmd:   rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		c.verbosity.SetVerbose(verbose)
		return nil
	}

	rootCmd.AddCommand(c.newScanCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
