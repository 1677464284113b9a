package cmd

import (
	"fmt"
	"text/tabwriter"

	"codedump/pkg/dump"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// manifestReport is the yaml form of the manifest listing.
type manifestReport struct {
	Root    string       `yaml:"root"`
	Output  string       `yaml:"output"`
	Entries []dump.Entry `yaml:"entries"`
}

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "List the files included in the dump and whether they exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		opts := defaultOptions(cmd)
		entries, err := dump.Inspect(opts, logger)
		if err != nil {
			return fmt.Errorf("failed to inspect manifest: %w", err)
		}

		switch format {
		case "yaml":
			data, err := yaml.Marshal(manifestReport{
				Root:    opts.Root,
				Output:  opts.OutputName,
				Entries: entries,
			})
			if err != nil {
				return fmt.Errorf("failed to encode manifest: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		case "text":
			return writeManifestTable(cmd, entries)
		default:
			return fmt.Errorf("unknown format %q (want text or yaml)", format)
		}
	},
}

func writeManifestTable(cmd *cobra.Command, entries []dump.Entry) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tLANGUAGE\tPATH")
	for _, e := range entries {
		status := "missing"
		if e.Exists {
			status = "ok"
		}
		language := e.Language
		if language == "" {
			language = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", status, language, e.Path)
	}
	return tw.Flush()
}

func init() {
	manifestCmd.Flags().StringP("format", "f", "text", "Output format: text or yaml")
	RootCmd.AddCommand(manifestCmd)
}
