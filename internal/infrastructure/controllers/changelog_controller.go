package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/projecttools/internal/domain/commands"
	"github.com/rios0rios0/projecttools/internal/domain/entities"
)

// ChangelogController handles the "changelog" subcommand.
type ChangelogController struct {
	command commands.Changelog
}

// NewChangelogController creates a new ChangelogController.
func NewChangelogController(command commands.Changelog) *ChangelogController {
	return &ChangelogController{command: command}
}

// GetBind returns the Cobra command metadata for the changelog controller.
func (it *ChangelogController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "changelog",
		Short: "Print the changelog since the latest release",
		Long: `Print the features, bugfixes and internal changes committed since the
latest v<semver> tag, grouped by category.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags adds the changelog-specific flags to the given Cobra command.
func (it *ChangelogController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagWrite, "",
		`Also add the entries to the "## [Unreleased]" section of this file`)
}

// Execute prints the changelog lines.
func (it *ChangelogController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	writeFile, _ := cmd.Flags().GetString(flagWrite)

	lines, err := it.command.Execute(cmd.Context(), settings, commands.ChangelogOptions{WriteFile: writeFile})
	if err != nil {
		return err
	}
	return writeLines(cmd.OutOrStdout(), lines)
}
