package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/legal-licenses/internal"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "legal-licenses",
		Short: "Dependency license report generator",
		Long: `Scan a project's dependency manifest (composer.lock, go.mod or
.terraform.lock.hcl), find each dependency's license file on disk and write
a consolidated report in Markdown or CSV.

Usage:
  legal-licenses generate               Write licenses.md
  legal-licenses generate --csv -hv     Write licenses.csv without versions
  legal-licenses list                   Print the dependencies as a table`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}
		ctrl.AddFlags(subCmd)

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, injectAppContext())
	cobraRoot.SetArgs(normalizeArgs(os.Args[1:]))

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'legal-licenses': %s", err)
	}
}

