package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/legal-licenses/internal/domain/commands"
	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
)

// GenerateController handles the "generate" subcommand.
type GenerateController struct {
	command commands.Generate
}

// NewGenerateController creates a new GenerateController.
func NewGenerateController(command commands.Generate) *GenerateController {
	return &GenerateController{command: command}
}

// GetBind returns the Cobra command metadata for the generate controller.
func (it *GenerateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "generate",
		Short: "Generate Licenses file from project dependencies.",
		Long: `Read the project's dependency manifest, look up each dependency's license
file in the dependency directory, and write licenses.md (or licenses.csv with --csv)
to the output directory. An existing report is overwritten.`,
	}
}

// AddFlags adds the generate-specific flags to the given Cobra command.
func (it *GenerateController) AddFlags(cmd *cobra.Command) {
	addManifestFlags(cmd)
	cmd.Flags().Bool(flagHideVersion, false, "Hide dependency version (alias: -hv)")
	cmd.Flags().Bool(flagCSV, false, "Output csv format")
	cmd.Flags().Bool(flagFullText, false, "Include the located license text in the Markdown report")
	cmd.Flags().StringP(flagOutputDir, "o", ".", "Directory the report is written to")
	cmd.Flags().SetNormalizeFunc(normalizeLegacyFlags)
}

// Execute runs the report generation.
func (it *GenerateController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(commandContext(cmd), settings)
	return err
}
