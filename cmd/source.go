package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/mutview/internal/domain"
	m "gooze.dev/pkg/mutview/internal/model"
)

var sourceAddressFlag string

// sourceCmd represents the source command.
var sourceCmd = newSourceCmd()

func newSourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "source [file[#address]]",
		Short: "Browse the mutants of one source file",
		Long: `Browse one source file of the report line by line.

The address selects what is active on open: a mutant id selects the mutant
and its line, a line id such as loc-12 selects the line. It can be given
with --address or appended to the file as in src/parser.go#M42. The file may
be omitted for single-file reports.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nav, err := navigationArgs()
			if err != nil {
				return err
			}

			var (
				file     m.Path
				fragment string
			)

			if len(args) == 1 {
				file, fragment = splitTarget(args[0])
			}

			if sourceAddressFlag != "" {
				fragment = sourceAddressFlag
			}

			return workflow.Source(cmd.Context(), domain.SourceArgs{
				Report:     m.Path(viper.GetString(reportKey)),
				File:       file,
				Fragment:   fragment,
				SourceRoot: m.Path(viper.GetString(sourceRootKey)),
				Navigation: nav,
				Keys:       keyConfig(),
			})
		},
	}

	cmd.Flags().StringVarP(&sourceAddressFlag, addressFlagName, "a", "", "mutant or line id to open at")

	return cmd
}

func init() {
	rootCmd.AddCommand(sourceCmd)
}
