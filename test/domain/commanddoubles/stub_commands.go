//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/legal-licenses/internal/domain/commands"
	"github.com/rios0rios0/legal-licenses/internal/domain/entities"
)

// StubGenerateCommand is a stub implementation of commands.Generate.
type StubGenerateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.GenerateResult
	LastSettings     *entities.Settings
}

var _ commands.Generate = (*StubGenerateCommand)(nil)

func (s *StubGenerateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) (*commands.GenerateResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Result, s.ExecuteErr
}

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Entries          []entities.ReportEntry
	LastSettings     *entities.Settings
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) ([]entities.ReportEntry, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Entries, s.ExecuteErr
}
