package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
	"github.com/rios0rios0/legal-licenses/internal/infrastructure/repositories/manifest"
)

// manifestSnapshot is a loaded manifest plus the dependency root to probe.
type manifestSnapshot struct {
	Format       entities.ManifestFormat
	Root         string
	Dependencies []entities.Dependency
}

// entryCollector turns manifest dependencies into report entries.
// It is shared by the generate and list commands.
type entryCollector struct {
	manifests *manifest.Registry
	licenses  repositories.LicenseRepository
	revisions repositories.RevisionRepository
}

// loadManifest resolves the manifest reader and parses the manifest.
// Every failure wraps entities.ErrParse.
func (it *entryCollector) loadManifest(settings *entities.Settings) (*manifestSnapshot, error) {
	reader, err := it.manifests.Resolve(settings.Format, settings.Manifest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrParse, err)
	}

	logger.Debugf("Reading %s manifest %q", reader.Format(), settings.Manifest)
	dependencies, err := reader.Load(settings.Manifest, repositories.LoadOptions{
		IncludeDev: settings.IncludeDev,
	})
	if err != nil {
		return nil, err
	}

	root := settings.VendorDir
	if root == "" {
		root = reader.DefaultRoot()
	}

	return &manifestSnapshot{
		Format:       reader.Format(),
		Root:         root,
		Dependencies: dependencies,
	}, nil
}

// collect builds one entry per dependency, in manifest order.
func (it *entryCollector) collect(
	ctx context.Context,
	snapshot *manifestSnapshot,
) ([]entities.ReportEntry, error) {
	entries := make([]entities.ReportEntry, 0, len(snapshot.Dependencies))
	for _, dependency := range snapshot.Dependencies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries = append(entries, it.entryFor(snapshot.Root, dependency))
	}
	return entries, nil
}

func (it *entryCollector) entryFor(root string, dependency entities.Dependency) entities.ReportEntry {
	license := it.licenses.Locate(root, dependency)
	switch license.Status {
	case entities.LicenseMissing:
		logger.Infof("No license file found for %s", dependency.Name)
	case entities.LicenseUnreadable:
		logger.Warnf("License file of %s could not be read: %v", dependency.Name, license.Err)
	case entities.LicenseFound:
	}

	entry := entities.NewReportEntry(dependency, license)
	if !entry.HasRevision() && it.revisions != nil {
		if rev, ok := it.revisions.Resolve(dependency.DirIn(root)); ok {
			logger.Debugf("Resolved revision of %s from its checkout: %s", dependency.Name, rev)
			entry = entry.WithRevision(rev)
		}
	}
	return entry
}
