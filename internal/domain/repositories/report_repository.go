package repositories

import "github.com/rios0rios0/legal-licenses/internal/domain/entities"

// ReportRepository serializes report entries to a file in one format.
type ReportRepository interface {
	// Format returns the report format this repository writes.
	Format() entities.ReportFormat

	// Write renders the entries and replaces <outputDir>/<format file name>.
	// It returns the written path and its size in bytes. Failures wrap entities.ErrIO.
	Write(outputDir string, entries []entities.ReportEntry, opts entities.ReportOptions) (string, int64, error)
}
