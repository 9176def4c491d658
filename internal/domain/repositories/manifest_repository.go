package repositories

import "github.com/rios0rios0/legal-licenses/internal/domain/entities"

// ManifestRepository reads one manifest flavour into an ordered dependency list.
type ManifestRepository interface {
	// Format returns the manifest format identifier (e.g. "composer").
	Format() entities.ManifestFormat

	// Detect returns true if the given manifest path looks like this format.
	Detect(path string) bool

	// DefaultRoot returns the dependency root used when none is configured.
	DefaultRoot() string

	// Load parses the manifest. Failures wrap entities.ErrParse.
	Load(path string, opts LoadOptions) ([]entities.Dependency, error)
}

// LoadOptions tunes how a manifest is read.
type LoadOptions struct {
	IncludeDev bool // composer only: include packages-dev
}
