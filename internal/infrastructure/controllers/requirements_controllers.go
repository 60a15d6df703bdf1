package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/projecttools/internal/domain/commands"
	"github.com/rios0rios0/projecttools/internal/domain/entities"
)

// GetRequirementsController handles the "get" subcommand.
type GetRequirementsController struct {
	command commands.GetRequirements
}

// NewGetRequirementsController creates a new GetRequirementsController.
func NewGetRequirementsController(command commands.GetRequirements) *GetRequirementsController {
	return &GetRequirementsController{command: command}
}

func (it *GetRequirementsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "get [requirements-file]",
		Short: "List all pinned requirements",
		Long: `List every "name==version" pin of the requirements file, following
"-r <file>" includes in place.`,
		Args: cobra.MaximumNArgs(1),
	}
}

func (it *GetRequirementsController) AddFlags(cmd *cobra.Command) { addOutputFlag(cmd) }

func (it *GetRequirementsController) Execute(cmd *cobra.Command, args []string) error {
	format, settings, opts, err := requirementsInputs(cmd, args)
	if err != nil {
		return err
	}

	requirements, err := it.command.Execute(cmd.Context(), settings, opts)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), format, requirements)
}

// GetUpdatesController handles the "get_updates" subcommand.
type GetUpdatesController struct {
	command commands.GetUpdates
}

// NewGetUpdatesController creates a new GetUpdatesController.
func NewGetUpdatesController(command commands.GetUpdates) *GetUpdatesController {
	return &GetUpdatesController{command: command}
}

func (it *GetUpdatesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:     "get_updates [requirements-file]",
		Aliases: []string{"get-updates"},
		Short:   "List requirements with a newer version on the package index",
		Args:    cobra.MaximumNArgs(1),
	}
}

func (it *GetUpdatesController) AddFlags(cmd *cobra.Command) { addOutputFlag(cmd) }

func (it *GetUpdatesController) Execute(cmd *cobra.Command, args []string) error {
	format, settings, opts, err := requirementsInputs(cmd, args)
	if err != nil {
		return err
	}

	updates, err := it.command.Execute(cmd.Context(), settings, opts)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), format, updates)
}

// UpdateRequirementsController handles the "update" subcommand.
type UpdateRequirementsController struct {
	command commands.UpdateRequirements
}

// NewUpdateRequirementsController creates a new UpdateRequirementsController.
func NewUpdateRequirementsController(command commands.UpdateRequirements) *UpdateRequirementsController {
	return &UpdateRequirementsController{command: command}
}

func (it *UpdateRequirementsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "update [requirements-file]",
		Short: "Rewrite outdated pins to the latest published version",
		Long: `Rewrite every outdated "name==version" pin in place. Files are updated one
requirement at a time; a failure stops the run but keeps the pins already
written.`,
		Args: cobra.MaximumNArgs(1),
	}
}

func (it *UpdateRequirementsController) AddFlags(cmd *cobra.Command) { addOutputFlag(cmd) }

// Execute prints the applied updates, also when the run stopped early.
func (it *UpdateRequirementsController) Execute(cmd *cobra.Command, args []string) error {
	format, settings, opts, err := requirementsInputs(cmd, args)
	if err != nil {
		return err
	}

	applied, err := it.command.Execute(cmd.Context(), settings, opts)
	if renderErr := render(cmd.OutOrStdout(), format, applied); renderErr != nil && err == nil {
		return renderErr
	}
	return err
}

// requirementsInputs validates the output flag before any work is done.
func requirementsInputs(
	cmd *cobra.Command,
	args []string,
) (string, *entities.Settings, commands.RequirementsOptions, error) {
	format, err := outputFormat(cmd)
	if err != nil {
		return "", nil, commands.RequirementsOptions{}, err
	}
	settings, err := loadSettings(cmd)
	if err != nil {
		return "", nil, commands.RequirementsOptions{}, err
	}
	opts := commands.RequirementsOptions{}
	if len(args) > 0 {
		opts.File = args[0]
	}
	return format, settings, opts, nil
}
