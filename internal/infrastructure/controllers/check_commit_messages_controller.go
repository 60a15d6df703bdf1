package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/projecttools/internal/domain/commands"
	"github.com/rios0rios0/projecttools/internal/domain/entities"
)

// CheckCommitMessagesController handles the "check_commit_messages" subcommand.
type CheckCommitMessagesController struct {
	command commands.CheckCommitMessages
}

// NewCheckCommitMessagesController creates a new CheckCommitMessagesController.
func NewCheckCommitMessagesController(command commands.CheckCommitMessages) *CheckCommitMessagesController {
	return &CheckCommitMessagesController{command: command}
}

// GetBind returns the Cobra command metadata for the commit message check.
func (it *CheckCommitMessagesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:     "check_commit_messages",
		Aliases: []string{"check-commit-messages"},
		Short:   "Check that every commit message carries a category tag",
		Long: `Check that every commit subject has the form "[<tag>] <message>"
where <tag> is one of feature, bugfix, internal, tooling or docs.
Each invalid subject is printed and the command exits non-zero.`,
		Args: cobra.NoArgs,
	}
}

func (it *CheckCommitMessagesController) AddFlags(_ *cobra.Command) {}

// Execute prints the diagnostics before returning the validation error.
func (it *CheckCommitMessagesController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	diagnostics, err := it.command.Execute(cmd.Context(), settings)
	if writeErr := writeLines(cmd.OutOrStdout(), diagnostics); writeErr != nil {
		return writeErr
	}
	return err
}
