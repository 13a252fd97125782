package cmd

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"gooze.dev/pkg/mutview/internal/adapter"
)

// reportCodecs are the modules whose versions decide which reports decode.
var reportCodecs = []string{
	"gopkg.in/yaml.v3",
	"github.com/vmihailenco/msgpack/v5",
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Displays the mutview build version, the Go version it was built with, the
report schema version and the report formats it reads.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion, codecs := "unknown", "unknown", map[string]string{}

			if info, ok := debug.ReadBuildInfo(); ok {
				if info.Main.Version != "" {
					version = info.Main.Version
				}

				goVersion = info.GoVersion

				for _, dep := range info.Deps {
					codecs[dep.Path] = dep.Version
				}
			}

			cmd.Println("mutview version\t", version)
			cmd.Println("go version\t", goVersion)
			cmd.Printf("report schema\t v%d\n", adapter.SchemaVersion)
			cmd.Println("report formats\t", strings.Join(adapter.Extensions(), " "))

			for _, path := range reportCodecs {
				if v, ok := codecs[path]; ok {
					cmd.Println(path+"\t", v)
				}
			}
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
