package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnolang/hilbert/batch"
)

var forceInit bool

// initCmd: hilbert init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file listing every check",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfigurationFile(cfgFile, forceInit); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created: %s\n", cfgFile)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing configuration file")
}

func initConfigurationFile(configurationPath string, force bool) error {
	if configurationPath == "" {
		configurationPath = batch.DefaultConfigFile
	}
	if !force {
		if _, err := os.Stat(configurationPath); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", configurationPath)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return batch.WriteConfig(configurationPath, batch.DefaultConfig())
}
