package cmd

import (
	"fmt"
	"path/filepath"

	"codedump/pkg/dump"

	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the manifest as a directory tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := defaultOptions(cmd)
		_, err := fmt.Fprint(cmd.OutOrStdout(), dump.RenderTree(filepath.Base(opts.Root), opts.Manifest))
		return err
	},
}

func init() {
	RootCmd.AddCommand(treeCmd)
}
