// Package cmd provides the root command and CLI setup for mutview.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/mutview/internal/adapter"
	"gooze.dev/pkg/mutview/internal/controller"
	"gooze.dev/pkg/mutview/internal/domain"
	"gooze.dev/pkg/mutview/internal/domain/navigator"
	m "gooze.dev/pkg/mutview/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// reportFlag is a root-level flag naming the report file or shard directory.
var reportFlag string

// sourceRootFlag points at the checkout the report was produced from.
var sourceRootFlag string

var (
	loopLocationsFlag bool
	mutantPolicyFlag  string
	testCasesFlag     int
	logFileFlag       string
	verboseFlag       bool
)

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore(fsAdapter, viper.GetInt(loadWorkersKey))
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui)
}

const rootLongDescription = `mutview is a terminal explorer for mutation testing reports.

Browse a source file line by line and step through the mutants placed on
each line, or drill down a treemap of mutation scores. Every position has an
address (a mutant id, a line id such as loc-12, or a treemap path such as
root_src_parser) that can be passed back with --address.

A report is a .yaml, .yml, .json or .msgpack file, or a directory whose
report shards are merged on load.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutview",
		Short: "Mutation report explorer",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportFlag, reportFlagName, "r",
			viper.GetString(reportKey),
			"report file or directory of report shards",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportKey)

	cmd.PersistentFlags().StringVar(&sourceRootFlag, sourceRootFlagName, viper.GetString(sourceRootKey), "directory to read missing source lines from")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(sourceRootFlagName), sourceRootKey)

	cmd.PersistentFlags().BoolVar(&loopLocationsFlag, loopFlagName, viper.GetBool(loopLocationsKey), "wrap around at the first and last line")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(loopFlagName), loopLocationsKey)

	cmd.PersistentFlags().StringVar(&mutantPolicyFlag, mutantPolicyFlagName, viper.GetString(mutantPolicyKey), "mutant traversal at the end of a line: stop, loop or fallthrough")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(mutantPolicyFlagName), mutantPolicyKey)

	cmd.PersistentFlags().IntVar(&testCasesFlag, testCasesFlagName, viper.GetInt(testCasesKey), "covering test cases listed per mutant")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(testCasesFlagName), testCasesKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// navigationArgs collects the selector configuration from flags and config.
func navigationArgs() (domain.NavigationArgs, error) {
	policy, err := navigator.ParseMutantPolicy(viper.GetString(mutantPolicyKey))
	if err != nil {
		return domain.NavigationArgs{}, fmt.Errorf("invalid --%s: %w", mutantPolicyFlagName, err)
	}

	return domain.NavigationArgs{
		LoopLocations: viper.GetBool(loopLocationsKey),
		MutantPolicy:  policy,
		TestCases:     viper.GetInt(testCasesKey),
	}, nil
}

// splitTarget splits "path#fragment" into its parts.
func splitTarget(target string) (m.Path, string) {
	path, fragment, _ := strings.Cut(target, "#")
	return m.Path(path), fragment
}
