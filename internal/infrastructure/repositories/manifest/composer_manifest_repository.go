package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"

	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
)

const composerLockName = "composer.lock"

// composerLock is the raw JSON structure of a composer.lock file.
type composerLock struct {
	Packages    []composerPackage `json:"packages"`
	PackagesDev []composerPackage `json:"packages-dev"`
}

type composerPackage struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description *string         `json:"description"`
	Homepage    *string         `json:"homepage"`
	License     licenseList     `json:"license"`
	Source      *composerSource `json:"source"`
}

type composerSource struct {
	Type      string  `json:"type"`
	URL       string  `json:"url"`
	Reference *string `json:"reference"`
}

// licenseList accepts both `"license": ["MIT"]` and the legacy `"license": "MIT"`.
// Null and empty identifiers are dropped.
type licenseList []string

func (l *licenseList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = nil
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		var single string
		if singleErr := json.Unmarshal(data, &single); singleErr != nil {
			return err
		}
		many = []string{single}
	}

	result := make(licenseList, 0, len(many))
	for _, name := range many {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	*l = result
	return nil
}

// ComposerManifestRepository reads Composer lock files.
type ComposerManifestRepository struct {
	schema *gojsonschema.Schema
}

var _ repositories.ManifestRepository = (*ComposerManifestRepository)(nil)

// NewComposerManifestRepository creates a composer.lock reader.
func NewComposerManifestRepository() *ComposerManifestRepository {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(composerLockSchema))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded composer.lock schema: %v", err))
	}
	return &ComposerManifestRepository{schema: schema}
}

func (it *ComposerManifestRepository) Format() entities.ManifestFormat {
	return entities.ManifestComposer
}

func (it *ComposerManifestRepository) Detect(path string) bool {
	return filepath.Base(path) == composerLockName
}

func (it *ComposerManifestRepository) DefaultRoot() string {
	return "vendor"
}

// Load parses a composer.lock file into dependencies, packages first and then,
// when requested, packages-dev. Manifest order is preserved.
func (it *ComposerManifestRepository) Load(
	path string,
	opts repositories.LoadOptions,
) ([]entities.Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrParse, err)
	}

	return it.parse(data, opts)
}

func (it *ComposerManifestRepository) parse(
	data []byte,
	opts repositories.LoadOptions,
) ([]entities.Dependency, error) {
	result, err := it.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrParse, err)
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", entities.ErrParse, strings.Join(messages, "; "))
	}

	var lock composerLock
	if unmarshalErr := json.Unmarshal(data, &lock); unmarshalErr != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrParse, unmarshalErr)
	}

	packages := lock.Packages
	if opts.IncludeDev {
		packages = append(packages, lock.PackagesDev...)
	}

	dependencies := make([]entities.Dependency, 0, len(packages))
	for _, pkg := range packages {
		dependencies = append(dependencies, pkg.toDependency())
	}

	logger.Debugf("Read %d packages from composer.lock", len(dependencies))
	return dependencies, nil
}

func (p composerPackage) toDependency() entities.Dependency {
	var source *entities.Source
	if p.Source != nil {
		source = &entities.Source{Type: p.Source.Type, URL: p.Source.URL}
		if p.Source.Reference != nil {
			source.Reference = *p.Source.Reference
		}
	}

	return entities.Dependency{
		Name:        p.Name,
		Version:     p.Version,
		Source:      source,
		Licenses:    []string(p.License),
		Description: p.Description,
		Homepage:    p.Homepage,
		InstallPath: p.Name,
	}
}
