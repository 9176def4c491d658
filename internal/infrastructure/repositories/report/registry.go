package report

import (
	"fmt"

	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
	"github.com/rios0rios0/legal-licenses/internal/domain/repositories"
)

// Registry maps report formats to their writers.
type Registry struct {
	writers map[entities.ReportFormat]repositories.ReportRepository
}

// NewRegistry creates an empty report registry.
func NewRegistry() *Registry {
	return &Registry{
		writers: make(map[entities.ReportFormat]repositories.ReportRepository),
	}
}

// Register adds a writer under its format.
func (r *Registry) Register(writer repositories.ReportRepository) {
	r.writers[writer.Format()] = writer
}

// Get returns the writer for the given format.
func (r *Registry) Get(format entities.ReportFormat) (repositories.ReportRepository, error) {
	writer, ok := r.writers[format]
	if !ok {
		return nil, fmt.Errorf("%w: report %q", entities.ErrUnknownFormat, format)
	}
	return writer, nil
}
