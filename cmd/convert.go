package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/mutview/internal/domain"
	m "gooze.dev/pkg/mutview/internal/model"
)

// convertCmd represents the convert command.
var convertCmd = newConvertCmd()

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <output>",
		Short: "Rewrite a report in another format",
		Long: `Load the report (merging shards when --report is a directory) and write it
to output. The format follows the extension: .yaml, .yml, .json or .msgpack.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Convert(cmd.Context(), domain.ConvertArgs{
				Report: m.Path(viper.GetString(reportKey)),
				Output: m.Path(args[0]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
