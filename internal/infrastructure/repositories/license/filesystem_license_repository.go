package license

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
)

// candidateFileNames is the fixed probe order. The first non-empty match wins.
var candidateFileNames = []string{ //nolint:gochecknoglobals // fixed lookup table
	"LICENSE.txt",
	"LICENSE.md",
	"LICENSE",
	"license.txt",
	"license.md",
	"license",
	"LICENSE-2.0.txt",
}

// CandidateFileNames returns a copy of the probe order.
func CandidateFileNames() []string {
	return append([]string(nil), candidateFileNames...)
}

// FilesystemLicenseRepository reads license files from an installed dependency tree.
type FilesystemLicenseRepository struct {
	readFile func(name string) ([]byte, error)
}

var _ repositories.LicenseRepository = (*FilesystemLicenseRepository)(nil)

// NewFilesystemLicenseRepository creates a locator backed by the local filesystem.
func NewFilesystemLicenseRepository() *FilesystemLicenseRepository {
	return &FilesystemLicenseRepository{readFile: os.ReadFile}
}

// Locate probes the candidate names in order inside the dependency directory.
// Absent and empty files are skipped; unreadable files are recorded and skipped.
func (it *FilesystemLicenseRepository) Locate(
	root string,
	dependency entities.Dependency,
) entities.LicenseText {
	dir := dependency.DirIn(root)

	var firstErr error
	for _, name := range candidateFileNames {
		candidate := filepath.Join(dir, name)

		content, err := it.readFile(candidate)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) && firstErr == nil {
				logger.Warnf("Could not read license candidate %q: %v", candidate, err)
				firstErr = err
			}
			continue
		}
		if len(content) == 0 {
			logger.Debugf("Skipping empty license candidate %q", candidate)
			continue
		}

		logger.Debugf("Found license for %s at %q", dependency.Name, candidate)
		return entities.LicenseText{
			Content: string(content),
			Path:    candidate,
			Status:  entities.LicenseFound,
		}
	}

	if firstErr != nil {
		return entities.LicenseText{Status: entities.LicenseUnreadable, Err: firstErr}
	}
	return entities.LicenseText{Status: entities.LicenseMissing}
}
