package controllers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/projecttools/internal/domain/commands"
	"github.com/rios0rios0/projecttools/internal/domain/entities"
)

// VersionController handles the "version" subcommand.
type VersionController struct {
	command commands.Version
}

// NewVersionController creates a new VersionController.
func NewVersionController(command commands.Version) *VersionController {
	return &VersionController{command: command}
}

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version",
		Short: "Print the next version derived from the git history",
		Long: `Print the next semantic version: the minor component is bumped when a
[feature] commit landed since the latest release, the patch component
otherwise. Outside of release-candidate builds (see $GITHUB_REF) the
short hash of the current commit is appended as build metadata.`,
		Args: cobra.NoArgs,
	}
}

func (it *VersionController) AddFlags(_ *cobra.Command) {}

// Execute prints the version.
func (it *VersionController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	version, err := it.command.Execute(cmd.Context(), settings, commands.VersionOptions{
		CurrentRef: os.Getenv(settings.RefEnvVar),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), version)
	return err
}
