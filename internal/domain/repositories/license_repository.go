package repositories

import "github.com/rios0rios0/legal-licenses/internal/domain/entities"

// LicenseRepository locates the license file of an installed dependency.
type LicenseRepository interface {
	// Locate probes <root>/<dependency install dir>/ for a license file.
	// A missing license is reported through the returned status, never as an error.
	Locate(root string, dependency entities.Dependency) entities.LicenseText
}
