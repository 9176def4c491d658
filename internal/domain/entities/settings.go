package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/adrg/xdg"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	appName = "legal-licenses"

	// DefaultManifest is the manifest read when nothing else is configured.
	DefaultManifest = "composer.lock"
)

// ErrConfigNotFound is returned by FindConfigFile when no file exists in the default locations.
var ErrConfigNotFound = errors.New("config file not found in default locations")

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Settings is the optional file based configuration of legal-licenses.
// Every field can be overridden from the command line.
type Settings struct {
	Manifest    string `yaml:"manifest"`    // Path to the manifest file
	Format      string `yaml:"format"`      // "composer", "gomod", "terraform"; empty = detect
	VendorDir   string `yaml:"vendor_dir"`  // Dependency root; empty = format default
	OutputDir   string `yaml:"output_dir"`  // Where licenses.md/csv is written
	IncludeDev  bool   `yaml:"include_dev"` // composer only: also report packages-dev
	FullText    bool   `yaml:"full_text"`
	HideVersion bool   `yaml:"hide_version"`
	CSV         bool   `yaml:"csv"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Manifest:  DefaultManifest,
		OutputDir: ".",
	}
}

// NewSettings reads and parses a configuration file, expanding ${ENV_VAR}
// references in path values.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Manifest = expandEnv(settings.Manifest)
	settings.VendorDir = expandEnv(settings.VendorDir)
	settings.OutputDir = expandEnv(settings.OutputDir)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// Validate checks the settings for values no component can honour.
func (it *Settings) Validate() error {
	if it.Manifest == "" {
		return errors.New("manifest path is required")
	}
	if it.Format != "" && !slices.Contains(KnownManifestFormats(), ManifestFormat(it.Format)) {
		return fmt.Errorf("%w: manifest %q", ErrUnknownFormat, it.Format)
	}
	if it.OutputDir == "" {
		it.OutputDir = "."
	}
	return nil
}

// ReportOptions derives the rendering options from the settings.
func (it *Settings) ReportOptions() ReportOptions {
	return NewReportOptions(it.CSV, it.HideVersion, it.FullText)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or ErrConfigNotFound.
func FindConfigFile() (string, error) {
	locations := []string{
		".",
		".config",
		"configs",
		filepath.Join(xdg.ConfigHome, appName),
	}

	patterns := []string{
		".legal-licenses.yaml",
		".legal-licenses.yml",
		"legal-licenses.yaml",
		"legal-licenses.yml",
		"config.yaml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			// plain config.yaml is only meaningful inside the application's own directory
			if pat == "config.yaml" && filepath.Base(loc) != appName {
				continue
			}
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", ErrConfigNotFound
}

// expandEnv expands ${ENV_VAR} references, warning about unset variables.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
