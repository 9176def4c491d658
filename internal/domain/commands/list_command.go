package commands

import (
	"context"

	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
	"github.com/rios0rios0/legal-licenses/internal/infrastructure/repositories/manifest"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]entities.ReportEntry, error)
}

// ListCommand resolves the report entries without writing any file.
type ListCommand struct {
	collector *entryCollector
}

// NewListCommand creates a new ListCommand.
func NewListCommand(
	manifests *manifest.Registry,
	licenses repositories.LicenseRepository,
	revisions repositories.RevisionRepository,
) *ListCommand {
	return &ListCommand{
		collector: &entryCollector{
			manifests: manifests,
			licenses:  licenses,
			revisions: revisions,
		},
	}
}

// Execute loads the manifest and returns one entry per dependency, in manifest order.
func (it *ListCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) ([]entities.ReportEntry, error) {
	snapshot, err := it.collector.loadManifest(settings)
	if err != nil {
		return nil, err
	}
	return it.collector.collect(ctx, snapshot)
}
