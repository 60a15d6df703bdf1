package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
)

const (
	flagProjectDir = "project-dir"
	flagConfig     = "config"
	flagVerbose    = "verbose"
	flagOutput     = "output"
	flagWrite      = "write"
)

// AddPersistentFlags registers the flags every subcommand understands.
func AddPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(flagProjectDir, "C", ".",
		"Project directory (git checkout and pyproject.toml location)")
	cmd.PersistentFlags().String(flagConfig, "",
		"Path to the project config file (default: <project-dir>/pyproject.toml)")
	cmd.PersistentFlags().BoolP(flagVerbose, "v", false,
		"Enable verbose output")
}

// loadSettings reads the persistent flags and loads the project settings.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	projectDir, _ := cmd.Flags().GetString(flagProjectDir)
	configPath, _ := cmd.Flags().GetString(flagConfig)
	verbose, _ := cmd.Flags().GetBool(flagVerbose)

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	return entities.NewSettings(entities.SettingsOptions{
		ProjectDir: projectDir,
		ConfigPath: configPath,
	})
}
