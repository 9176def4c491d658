//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/legal-licenses/internal/domain/commands"
)

// SpyConsole records every message printed by a command.
type SpyConsole struct {
	Messages []string
}

var _ commands.Console = (*SpyConsole)(nil)

func (s *SpyConsole) Info(message string) {
	s.Messages = append(s.Messages, message)
}
