package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
)

// BuildRootCommand creates the root command of a binary and registers one
// subcommand per controller. The root has no Args validator so cobra
// reports unknown subcommands.
func BuildRootCommand(bind entities.ControllerBind, controllers []entities.Controller) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	root := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	AddPersistentFlags(root)

	for _, controller := range controllers {
		ctrl := controller // capture for closure
		ctrlBind := ctrl.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:     ctrlBind.Use,
			Aliases: ctrlBind.Aliases,
			Short:   ctrlBind.Short,
			Long:    ctrlBind.Long,
			Args:    ctrlBind.Args,
			RunE:    ctrl.Execute,
		}
		ctrl.AddFlags(subCmd)
		root.AddCommand(subCmd)
	}

	return root
}
