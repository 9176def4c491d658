package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/legal-licenses/internal/domain/repositories"
	"github.com/rios0rios0/legal-licenses/internal/infrastructure/repositories/license"
	"github.com/rios0rios0/legal-licenses/internal/infrastructure/repositories/manifest"
	"github.com/rios0rios0/legal-licenses/internal/infrastructure/repositories/report"
	"github.com/rios0rios0/legal-licenses/internal/infrastructure/repositories/revision"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register manifest registry with every supported lock/manifest reader
	if err := container.Provide(func() *manifest.Registry {
		reg := manifest.NewRegistry()
		reg.Register(manifest.NewComposerManifestRepository())
		reg.Register(manifest.NewGoModManifestRepository())
		reg.Register(manifest.NewTerraformManifestRepository())
		return reg
	}); err != nil {
		return err
	}

	// Register report registry with the Markdown and CSV writers
	if err := container.Provide(func() *report.Registry {
		reg := report.NewRegistry()
		reg.Register(report.NewMarkdownReportRepository())
		reg.Register(report.NewCSVReportRepository())
		return reg
	}); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func() domainRepos.LicenseRepository {
		return license.NewFilesystemLicenseRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.RevisionRepository {
		return revision.NewGitRevisionRepository()
	}); err != nil {
		return err
	}

	return nil
}
