package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/projecttools/internal/domain/commands"
	"github.com/rios0rios0/projecttools/internal/domain/entities"
)

// ReleaseCandidateController handles the "release_candidate" subcommand.
type ReleaseCandidateController struct {
	command commands.ReleaseCandidate
}

// NewReleaseCandidateController creates a new ReleaseCandidateController.
func NewReleaseCandidateController(command commands.ReleaseCandidate) *ReleaseCandidateController {
	return &ReleaseCandidateController{command: command}
}

// GetBind returns the Cobra command metadata for the release candidate controller.
func (it *ReleaseCandidateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:     "release_candidate",
		Aliases: []string{"release-candidate"},
		Short:   "Tag the current commit as release candidate and push the tag",
		Long: `Fetch the remote, make sure the checkout matches the remote default
branch, then force-move the release-candidate tag to the current commit
and push it. The pushed tag triggers the release pipeline.`,
		Args: cobra.NoArgs,
	}
}

func (it *ReleaseCandidateController) AddFlags(_ *cobra.Command) {}

// Execute runs the release candidate trigger.
func (it *ReleaseCandidateController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	return it.command.Execute(cmd.Context(), settings)
}
