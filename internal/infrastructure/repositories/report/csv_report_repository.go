package report

import (
	"encoding/csv"
	"io"
	"path/filepath"

	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
)

// CSVHeader is the fixed header row of licenses.csv.
func CSVHeader() []string {
	return []string{"name", "version", "source", "license description"}
}

// CSVReportRepository writes licenses.csv.
type CSVReportRepository struct{}

var _ repositories.ReportRepository = (*CSVReportRepository)(nil)

// NewCSVReportRepository creates a CSV report writer.
func NewCSVReportRepository() *CSVReportRepository {
	return &CSVReportRepository{}
}

func (it *CSVReportRepository) Format() entities.ReportFormat {
	return entities.ReportCSV
}

func (it *CSVReportRepository) Write(
	outputDir string,
	entries []entities.ReportEntry,
	opts entities.ReportOptions,
) (string, int64, error) {
	path := filepath.Join(outputDir, entities.ReportCSV.FileName())
	size, err := writeFileAtomic(path, func(w io.Writer) error {
		return RenderCSV(w, entries, opts)
	})
	if err != nil {
		return "", 0, err
	}
	return path, size, nil
}

// RenderCSV writes the header row followed by one four-field row per entry.
func RenderCSV(w io.Writer, entries []entities.ReportEntry, opts entities.ReportOptions) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeader()); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := writer.Write(entry.CSVRow(opts)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
