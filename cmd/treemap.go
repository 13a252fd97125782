package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/mutview/internal/domain"
	m "gooze.dev/pkg/mutview/internal/model"
)

var treemapAddressFlag string

// treemapCmd represents the treemap command.
var treemapCmd = newTreemapCmd()

func newTreemapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treemap",
		Short: "Drill down the mutation scores of the report tree",
		Long: `Show the folders and files of the report as score-coloured tiles.

Enter opens a folder or a file, esc goes back up; at the top level it opens
the report listing. --address reopens a position such as root_src_parser.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nav, err := navigationArgs()
			if err != nil {
				return err
			}

			return workflow.Treemap(cmd.Context(), domain.TreemapArgs{
				Report:     m.Path(viper.GetString(reportKey)),
				Fragment:   treemapAddressFlag,
				SourceRoot: m.Path(viper.GetString(sourceRootKey)),
				Navigation: nav,
				Keys:       keyConfig(),
			})
		},
	}

	cmd.Flags().StringVarP(&treemapAddressFlag, addressFlagName, "a", "", "treemap address to open at")

	return cmd
}

func init() {
	rootCmd.AddCommand(treemapCmd)
}
