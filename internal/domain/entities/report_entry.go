package entities

import (
	"fmt"
	"strings"
)

const (
	// NotConfigured replaces optional fields the manifest does not declare.
	NotConfigured = "Not configured."
	// NoSha replaces the revision when no reference is known.
	NoSha = "no sha"
	// LicenseNotFound is shown in place of the license text when none was located.
	LicenseNotFound = "License file not found."

	shortRevisionLength = 7
	licenseSeparator    = ", "
)

// ReportEntry is the rendering view of one dependency.
// Display fields already carry their "not configured" fallbacks; raw fields
// (Version, SourceURL) keep the manifest value so CSV output can stay blank.
type ReportEntry struct {
	Name         string
	Description  string
	Version      string
	Homepage     string
	SourceURL    string
	Revision     string
	LicenseNames string
	License      LicenseText
}

// NewReportEntry derives the report entry of a dependency and its located license.
func NewReportEntry(dependency Dependency, license LicenseText) ReportEntry {
	revision := NoSha
	if ref := dependency.Reference(); ref != "" {
		revision = ShortRevision(ref)
	}

	return ReportEntry{
		Name:         dependency.Name,
		Description:  valueOrNotConfigured(dependency.Description),
		Version:      dependency.Version,
		Homepage:     valueOrNotConfigured(dependency.Homepage),
		SourceURL:    dependency.SourceURL(),
		Revision:     revision,
		LicenseNames: JoinLicenses(dependency.Licenses),
		License:      license,
	}
}

// WithRevision returns a copy of the entry using the given full reference.
func (it ReportEntry) WithRevision(reference string) ReportEntry {
	if reference != "" {
		it.Revision = ShortRevision(reference)
	}
	return it
}

// HasRevision reports whether a revision is known for the entry.
func (it ReportEntry) HasRevision() bool {
	return it.Revision != NoSha
}

// Heading is the Markdown heading text of the entry.
func (it ReportEntry) Heading() string {
	return fmt.Sprintf("%s (Version %s | %s)", it.Name, it.Version, it.Revision)
}

// SourceDisplay is the source URL with the "not configured" fallback.
func (it ReportEntry) SourceDisplay() string {
	if it.SourceURL == "" {
		return NotConfigured
	}
	return it.SourceURL
}

// LicenseDisplay is the located license text, or a placeholder when none was found.
func (it ReportEntry) LicenseDisplay() string {
	if it.License.Content == "" {
		return LicenseNotFound
	}
	return it.License.Content
}

// CSVRow renders the four CSV fields: name, version, source, license description.
func (it ReportEntry) CSVRow(opts ReportOptions) []string {
	version := it.Version
	if opts.HideVersion {
		version = ""
	}
	return []string{it.Name, version, it.SourceURL, it.LicenseNames}
}

// ShortRevision returns the first seven characters of a revision reference.
func ShortRevision(reference string) string {
	runes := []rune(reference)
	if len(runes) <= shortRevisionLength {
		return reference
	}
	return string(runes[:shortRevisionLength])
}

// JoinLicenses joins license identifiers, falling back to NotConfigured.
func JoinLicenses(licenses []string) string {
	names := make([]string, 0, len(licenses))
	for _, license := range licenses {
		if license != "" {
			names = append(names, license)
		}
	}
	if len(names) == 0 {
		return NotConfigured
	}
	return strings.Join(names, licenseSeparator)
}

func valueOrNotConfigured(value *string) string {
	if value == nil {
		return NotConfigured
	}
	return *value
}
