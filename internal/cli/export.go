package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/12dlabs/chemistry/pkg/dataset"
)

// exportCommand creates the export command writing the registry as a dataset.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the element registry as TOML, YAML or JSON",
		Long: `Write the loaded elements as a seed dataset. The output can be edited and
passed back with --dataset.

Without --format the format follows the extension of --output, falling back
to the configured export.format.`,
		Example: `  chemistry export --format yaml
  chemistry export -o elements.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := c.cfg.Export.Format
			if !cmd.Flags().Changed("format") && output != "" {
				if _, err := dataset.ParseFormat(filepath.Ext(output)); err == nil {
					name = filepath.Ext(output)
				}
			}
			format, err := dataset.ParseFormat(name)
			if err != nil {
				return err
			}

			reg, err := c.registry(cmd.Context())
			if err != nil {
				return err
			}
			records := dataset.FromElements(reg.All())

			out, err := openOutput(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}
			if err := dataset.Write(out, records, format); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}

			if output != "" {
				loggerFromContext(cmd.Context()).Debugf("Exported %d records as %s", len(records), format)
				w := cmd.OutOrStdout()
				printSuccess(w, "Exported %d elements as %s", len(records), strings.ToUpper(string(format)))
				printFile(w, output)
			}
			return nil
		},
	}

	formats := make([]string, len(dataset.Formats))
	for i, f := range dataset.Formats {
		formats[i] = string(f)
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringP("format", "f", c.cfg.Export.Format, "output format: "+strings.Join(formats, ", "))
	c.bind("export.format", cmd.Flags().Lookup("format"))
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return formats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
