package cmd

import (
	"fmt"

	"codedump/pkg/dump"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the dump document matches the current files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		drifts, err := dump.Verify(defaultOptions(cmd), logger)
		if err != nil {
			return err
		}
		if len(drifts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "dump is up to date")
			return nil
		}

		for _, d := range drifts {
			fmt.Fprintln(cmd.OutOrStdout(), d.String())
		}
		return fmt.Errorf("%w: %d difference(s)", dump.ErrDrift, len(drifts))
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)
}
