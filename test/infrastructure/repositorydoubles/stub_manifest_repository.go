//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
)

// StubManifestRepository implements repositories.ManifestRepository with canned results.
type StubManifestRepository struct {
	// --- identity ---
	ManifestFormat entities.ManifestFormat
	DetectResult   bool
	Root           string

	// --- Load ---
	Dependencies []entities.Dependency
	LoadErr      error
	LoadedPaths  []string
	LoadOpts     []repositories.LoadOptions
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (s *StubManifestRepository) Format() entities.ManifestFormat { return s.ManifestFormat }

func (s *StubManifestRepository) Detect(_ string) bool { return s.DetectResult }

func (s *StubManifestRepository) DefaultRoot() string { return s.Root }

func (s *StubManifestRepository) Load(
	path string,
	opts repositories.LoadOptions,
) ([]entities.Dependency, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	s.LoadOpts = append(s.LoadOpts, opts)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Dependencies, nil
}
