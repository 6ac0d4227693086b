package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/beadmatch/internal/config"
	"github.com/zjrosen/beadmatch/internal/log"
	"github.com/zjrosen/beadmatch/internal/paths"
)

var (
	initPath  string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initPath, "path", "", "where to write the config (default: the user config dir)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	path := initPath
	if path == "" {
		path = paths.DefaultConfigPath()
	}
	path = paths.ExpandHome(path)

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}
	if err := config.WriteDefaultConfig(path); err != nil {
		return err
	}
	logger.Info(log.CatConfig, "Wrote default config", "path", path)
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", path)
	return err
}
