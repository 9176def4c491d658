package commands

import (
	"context"

	"github.com/dustin/go-humanize"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
	"github.com/rios0rios0/legal-licenses/internal/infrastructure/repositories/manifest"
	"github.com/rios0rios0/legal-licenses/internal/infrastructure/repositories/report"
)

const (
	// MessageGenerating is printed once the manifest has been read.
	MessageGenerating = "Generating Licenses file..."
	// MessageDone is printed after the report has been written.
	MessageDone = "Done!"
)

// Generate is the interface for the generate command.
type Generate interface {
	Execute(ctx context.Context, settings *entities.Settings) (*GenerateResult, error)
}

// GenerateResult describes the written report.
type GenerateResult struct {
	Path         string
	Size         int64
	Dependencies int
	Missing      int // Dependencies without a located license file
}

// GenerateCommand orchestrates the report generation:
// load manifest -> locate licenses -> format entries -> write document.
type GenerateCommand struct {
	collector *entryCollector
	reports   *report.Registry
	console   Console
}

// NewGenerateCommand creates a new GenerateCommand with the given collaborators.
func NewGenerateCommand(
	manifests *manifest.Registry,
	reports *report.Registry,
	licenses repositories.LicenseRepository,
	revisions repositories.RevisionRepository,
	console Console,
) *GenerateCommand {
	return &GenerateCommand{
		collector: &entryCollector{
			manifests: manifests,
			licenses:  licenses,
			revisions: revisions,
		},
		reports: reports,
		console: console,
	}
}

// Execute generates licenses.md or licenses.csv according to the settings.
// Manifest failures wrap entities.ErrParse and happen before any output;
// write failures wrap entities.ErrIO.
func (it *GenerateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) (*GenerateResult, error) {
	opts := settings.ReportOptions()

	writer, err := it.reports.Get(opts.Format)
	if err != nil {
		return nil, err
	}

	snapshot, err := it.collector.loadManifest(settings)
	if err != nil {
		return nil, err
	}

	it.console.Info(MessageGenerating)

	entries, err := it.collector.collect(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	path, size, err := writer.Write(settings.OutputDir, entries, opts)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		Path:         path,
		Size:         size,
		Dependencies: len(entries),
		Missing:      countMissing(entries),
	}
	logger.Infof(
		"Wrote %s (%s, %d dependencies, %d without license file)",
		result.Path, humanize.Bytes(uint64(max(result.Size, 0))), result.Dependencies, result.Missing,
	)

	it.console.Info(MessageDone)
	return result, nil
}

func countMissing(entries []entities.ReportEntry) int {
	missing := 0
	for _, entry := range entries {
		if !entry.License.Found() {
			missing++
		}
	}
	return missing
}
