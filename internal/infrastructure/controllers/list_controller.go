package controllers

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/legal-licenses/internal/domain/commands"
	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "List project dependencies and their licenses",
		Long: `Print a table of every dependency in the manifest with its version,
revision, declared licenses and whether a license file was found.
No file is written.`,
	}
}

// AddFlags adds the list-specific flags to the given Cobra command.
func (it *ListController) AddFlags(cmd *cobra.Command) {
	addManifestFlags(cmd)
}

// Execute prints the dependency table to the command output.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	entries, err := it.command.Execute(commandContext(cmd), settings)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Version", "Revision", "Licenses", "License File"})
	for _, entry := range entries {
		t.AppendRow(table.Row{
			entry.Name,
			entry.Version,
			entry.Revision,
			entry.LicenseNames,
			entry.License.Status.String(),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", len(entries)})
	t.Render()

	return nil
}
