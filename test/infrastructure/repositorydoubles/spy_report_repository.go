//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path/filepath"

	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
)

// SpyReportRepository implements repositories.ReportRepository as a configurable spy.
type SpyReportRepository struct {
	ReportFormat entities.ReportFormat
	WriteErr     error
	Size         int64

	// spy: inputs received
	WriteCalls []WriteCall
}

// WriteCall records a single invocation of Write.
type WriteCall struct {
	OutputDir string
	Entries   []entities.ReportEntry
	Opts      entities.ReportOptions
}

var _ repositories.ReportRepository = (*SpyReportRepository)(nil)

func (s *SpyReportRepository) Format() entities.ReportFormat { return s.ReportFormat }

func (s *SpyReportRepository) Write(
	outputDir string,
	entries []entities.ReportEntry,
	opts entities.ReportOptions,
) (string, int64, error) {
	s.WriteCalls = append(s.WriteCalls, WriteCall{OutputDir: outputDir, Entries: entries, Opts: opts})
	if s.WriteErr != nil {
		return "", 0, s.WriteErr
	}
	return filepath.Join(outputDir, s.ReportFormat.FileName()), s.Size, nil
}
