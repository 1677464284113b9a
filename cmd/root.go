package cmd

import (
	"codedump/pkg/dump"
	"codedump/pkg/projectroot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger is set by Execute and shared by all commands.
var logger = zap.NewNop()

// RootCmd writes the code dump when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "codedump",
	Short: "Codedump writes key project files into one markdown document",
	Long: `Codedump concatenates a fixed list of project files into code_dump.md at the
project root, one fenced and syntax-tagged section per file, so the project can
be read by someone (or something) without access to the filesystem.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDump,
}

// Execute runs the command tree with l as the shared logger.
func Execute(l *zap.Logger) error {
	if l != nil {
		logger = l
	}
	return RootCmd.Execute()
}

// defaultOptions returns the compiled-in dump configuration with notices sent to cmd's stdout.
func defaultOptions(cmd *cobra.Command) dump.Options {
	opts := dump.DefaultOptions(projectroot.Root())
	opts.Out = cmd.OutOrStdout()
	return opts
}
