//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
)

// StubLicenseRepository returns license texts keyed by dependency name.
// Unknown dependencies resolve to a missing license.
type StubLicenseRepository struct {
	Licenses map[string]entities.LicenseText
	// spy: roots and dependency names probed, in call order
	Roots  []string
	Probed []string
}

var _ repositories.LicenseRepository = (*StubLicenseRepository)(nil)

func (s *StubLicenseRepository) Locate(root string, dependency entities.Dependency) entities.LicenseText {
	s.Roots = append(s.Roots, root)
	s.Probed = append(s.Probed, dependency.Name)
	if license, ok := s.Licenses[dependency.Name]; ok {
		return license
	}
	return entities.LicenseText{Status: entities.LicenseMissing}
}

// StubRevisionRepository returns revisions keyed by directory.
type StubRevisionRepository struct {
	Revisions map[string]string
	Resolved  []string
}

var _ repositories.RevisionRepository = (*StubRevisionRepository)(nil)

func (s *StubRevisionRepository) Resolve(dir string) (string, bool) {
	s.Resolved = append(s.Resolved, dir)
	rev, ok := s.Revisions[dir]
	return rev, ok
}
