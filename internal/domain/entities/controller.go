package entities

import "github.com/spf13/cobra"

// ControllerBind is the Cobra metadata a controller is mounted with.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is a CLI entry point backed by a domain command.
type Controller interface {
	GetBind() ControllerBind
	AddFlags(cmd *cobra.Command)
	Execute(cmd *cobra.Command, arguments []string) error
}
