package manifest

import (
	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
)

// ParseComposer exposes the composer.lock decoder for testing without a file.
func (it *ComposerManifestRepository) ParseComposer(
	data []byte,
	opts repositories.LoadOptions,
) ([]entities.Dependency, error) {
	return it.parse(data, opts)
}

// NewTerraformManifestRepositoryForPlatform pins the provider platform for testing.
func NewTerraformManifestRepositoryForPlatform(platform string) *TerraformManifestRepository {
	return &TerraformManifestRepository{platform: platform}
}
