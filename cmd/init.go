package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	initForceFlag  = "force"
	initOutputFlag = "output"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default mutview.yaml configuration file",
		Long: `Create a mutview.yaml populated with the navigation, key binding and logging
defaults so it can be edited manually. Values already set through flags or
MUTVIEW_ environment variables are written in place of the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath, _ := cmd.Flags().GetString(initOutputFlag)
			force, _ := cmd.Flags().GetBool(initForceFlag)

			write := viper.SafeWriteConfigAs
			if force {
				write = viper.WriteConfigAs
			}

			if err := write(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Println("wrote", targetPath)

			return nil
		},
	}

	cmd.Flags().BoolP(initForceFlag, "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringP(initOutputFlag, "o", filepath.Join(configFolderPath, configFileName), "path of the configuration file to write")

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
