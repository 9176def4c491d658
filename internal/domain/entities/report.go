package entities

import "fmt"

// ReportFormat selects the output document type.
type ReportFormat string

const (
	ReportMarkdown ReportFormat = "markdown"
	ReportCSV      ReportFormat = "csv"
)

// FileName returns the fixed output file name for the format.
func (f ReportFormat) FileName() string {
	if f == ReportCSV {
		return "licenses.csv"
	}
	return "licenses.md"
}

// ReportOptions carries the user's rendering choices through the whole
// generation flow (command -> formatter -> writer).
type ReportOptions struct {
	Format      ReportFormat
	HideVersion bool // Blank the version column of CSV rows
	FullText    bool // Embed the located license text in Markdown blocks
}

// NewReportOptions builds options from the two CLI toggles plus the
// full-text extension.
func NewReportOptions(toCSV, hideVersion, fullText bool) ReportOptions {
	format := ReportMarkdown
	if toCSV {
		format = ReportCSV
	}
	return ReportOptions{
		Format:      format,
		HideVersion: hideVersion,
		FullText:    fullText,
	}
}

// ParseReportFormat converts a user supplied name into a ReportFormat.
func ParseReportFormat(name string) (ReportFormat, error) {
	switch ReportFormat(name) {
	case ReportMarkdown, "md", "":
		return ReportMarkdown, nil
	case ReportCSV:
		return ReportCSV, nil
	default:
		return "", fmt.Errorf("%w: report %q", ErrUnknownFormat, name)
	}
}
