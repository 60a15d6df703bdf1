package entities

import "github.com/spf13/cobra"

// ControllerBind is the command-line metadata a controller registers under.
type ControllerBind struct {
	Use     string
	Aliases []string
	Short   string
	Long    string
	Args    cobra.PositionalArgs
}

// Controller adapts one CLI operation to its domain command.
type Controller interface {
	GetBind() ControllerBind
	AddFlags(cmd *cobra.Command)
	Execute(cmd *cobra.Command, args []string) error
}
