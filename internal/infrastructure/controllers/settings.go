package controllers

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
)

const (
	flagConfig      = "config"
	flagVerbose     = "verbose"
	flagManifest    = "manifest"
	flagFormat      = "format"
	flagVendorDir   = "vendor-dir"
	flagOutputDir   = "output-dir"
	flagIncludeDev  = "include-dev"
	flagHideVersion = "hide-version"
	flagCSV         = "csv"
	flagFullText    = "full-text"

	// legacyHideVersion is the historical two-letter alias of --hide-version.
	legacyHideVersion = "hv"
)

// addManifestFlags adds the flags shared by every command reading a manifest.
func addManifestFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagManifest, "m", entities.DefaultManifest,
		"Path to the dependency manifest (composer.lock, go.mod, .terraform.lock.hcl)")
	cmd.Flags().StringP(flagFormat, "f", "",
		"Manifest format (composer, gomod, terraform); detected from the file name when empty")
	cmd.Flags().String(flagVendorDir, "",
		"Directory holding the installed dependencies (default depends on the manifest format)")
	cmd.Flags().Bool(flagIncludeDev, false,
		"Also report development dependencies (composer packages-dev)")
}

// normalizeLegacyFlags maps --hv to --hide-version.
func normalizeLegacyFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == legacyHideVersion {
		return flagHideVersion
	}
	return pflag.NormalizedName(name)
}

// loadSettings reads the config file (explicit or discovered) and applies the
// command line flags the user actually set on top of it.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := readSettingsFile(cmd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	overrideString(flags, flagManifest, &settings.Manifest)
	overrideString(flags, flagFormat, &settings.Format)
	overrideString(flags, flagVendorDir, &settings.VendorDir)
	overrideString(flags, flagOutputDir, &settings.OutputDir)
	overrideBool(flags, flagIncludeDev, &settings.IncludeDev)
	overrideBool(flags, flagHideVersion, &settings.HideVersion)
	overrideBool(flags, flagCSV, &settings.CSV)
	overrideBool(flags, flagFullText, &settings.FullText)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

func readSettingsFile(cmd *cobra.Command) (*entities.Settings, error) {
	cfgPath, _ := cmd.Flags().GetString(flagConfig)
	if cfgPath == "" {
		found, err := entities.FindConfigFile()
		if errors.Is(err, entities.ErrConfigNotFound) {
			logger.Debug("No config file found, using defaults")
			return entities.DefaultSettings(), nil
		}
		if err != nil {
			return nil, err
		}
		cfgPath = found
	}

	logger.Infof("Using config file: %s", cfgPath)
	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

func overrideString(flags *pflag.FlagSet, name string, target *string) {
	if flags.Lookup(name) == nil || !flags.Changed(name) {
		return
	}
	if value, err := flags.GetString(name); err == nil {
		*target = value
	}
}

func overrideBool(flags *pflag.FlagSet, name string, target *bool) {
	if flags.Lookup(name) == nil || !flags.Changed(name) {
		return
	}
	if value, err := flags.GetBool(name); err == nil {
		*target = value
	}
}

// commandContext returns the command context, falling back to Background for
// commands executed outside of cobra's Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
