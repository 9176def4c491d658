package manifest

import (
	"fmt"

	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
)

// Registry manages all registered manifest readers, keeping registration order
// so format detection is deterministic.
type Registry struct {
	readers []repositories.ManifestRepository
}

// NewRegistry creates an empty manifest registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a reader; a later reader with the same format replaces the earlier one.
func (r *Registry) Register(reader repositories.ManifestRepository) {
	for i, existing := range r.readers {
		if existing.Format() == reader.Format() {
			r.readers[i] = reader
			return
		}
	}
	r.readers = append(r.readers, reader)
}

// Get returns the reader for the given format, or nil if not registered.
func (r *Registry) Get(format entities.ManifestFormat) repositories.ManifestRepository {
	for _, reader := range r.readers {
		if reader.Format() == format {
			return reader
		}
	}
	return nil
}

// Resolve returns the reader for an explicit format name, or detects it from the
// manifest file name when format is empty.
func (r *Registry) Resolve(format, path string) (repositories.ManifestRepository, error) {
	if format != "" {
		if reader := r.Get(entities.ManifestFormat(format)); reader != nil {
			return reader, nil
		}
		return nil, fmt.Errorf("%w: manifest %q", entities.ErrUnknownFormat, format)
	}

	for _, reader := range r.readers {
		if reader.Detect(path) {
			return reader, nil
		}
	}
	return nil, fmt.Errorf("%w: cannot detect manifest format of %q", entities.ErrUnknownFormat, path)
}

// Formats returns the registered format names.
func (r *Registry) Formats() []entities.ManifestFormat {
	formats := make([]entities.ManifestFormat, 0, len(r.readers))
	for _, reader := range r.readers {
		formats = append(formats, reader.Format())
	}
	return formats
}
