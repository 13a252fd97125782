package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/mutview/internal/domain"
	m "gooze.dev/pkg/mutview/internal/model"
)

var (
	listSortFlag   string
	listDescFlag   bool
	listFilterFlag string
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the files of the report with their mutation scores",
		Long: `List every source file of the report with its line, mutant, alive and
killed counts and its mutation score.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			column, err := domain.ParseSortColumn(viper.GetString(listSortKey))
			if err != nil {
				return fmt.Errorf("invalid --%s: %w", sortFlagName, err)
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				Report: m.Path(viper.GetString(reportKey)),
				SortBy: column,
				Desc:   viper.GetBool(listDescKey),
				Filter: listFilterFlag,
			})
		},
	}

	configureListFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func configureListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&listSortFlag, sortFlagName, "s", viper.GetString(listSortKey), "sort column: path, locations, mutants, alive, killed or score")
	bindFlagToConfig(cmd.Flags().Lookup(sortFlagName), listSortKey)

	cmd.Flags().BoolVar(&listDescFlag, descFlagName, viper.GetBool(listDescKey), "sort in descending order")
	bindFlagToConfig(cmd.Flags().Lookup(descFlagName), listDescKey)

	cmd.Flags().StringVar(&listFilterFlag, filterFlagName, "", "only list paths containing this text (case-insensitive)")
}
