package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
)

const reportFileMode = 0o644

// writeFileAtomic renders into a temporary file next to path and renames it over path.
// Every failure wraps entities.ErrIO.
func writeFileAtomic(path string, render func(w io.Writer) error) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".licenses-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("%w: %w", entities.ErrIO, err)
	}
	tmpName := tmp.Name()

	cleanup := func(cause error) (int64, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return 0, fmt.Errorf("%w: %s: %w", entities.ErrIO, path, cause)
	}

	if renderErr := render(tmp); renderErr != nil {
		return cleanup(renderErr)
	}
	if syncErr := tmp.Sync(); syncErr != nil {
		return cleanup(syncErr)
	}
	info, statErr := tmp.Stat()
	if statErr != nil {
		return cleanup(statErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		_ = os.Remove(tmpName)
		return 0, fmt.Errorf("%w: %s: %w", entities.ErrIO, path, closeErr)
	}
	if chmodErr := os.Chmod(tmpName, reportFileMode); chmodErr != nil {
		_ = os.Remove(tmpName)
		return 0, fmt.Errorf("%w: %s: %w", entities.ErrIO, path, chmodErr)
	}
	if renameErr := os.Rename(tmpName, path); renameErr != nil {
		_ = os.Remove(tmpName)
		return 0, fmt.Errorf("%w: %s: %w", entities.ErrIO, path, renameErr)
	}

	return info.Size(), nil
}
