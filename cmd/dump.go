package cmd

import (
	"codedump/pkg/dump"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runDump writes the output document using the compiled-in manifest.
func runDump(cmd *cobra.Command, args []string) error {
	opts := defaultOptions(cmd)
	logger.Debug("Resolved project root", zap.String("root", opts.Root))

	_, err := dump.Run(opts, logger)
	return err
}
