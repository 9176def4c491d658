package console

import (
	"io"
	"os"

	"github.com/fatih/color"
	"go.uber.org/dig"

	"github.com/rios0rios0/legal-licenses/internal/domain/commands"
)

// ColorConsole prints progress messages in green. Colors are dropped when
// stdout is not a terminal.
type ColorConsole struct {
	out   io.Writer
	style *color.Color
}

var _ commands.Console = (*ColorConsole)(nil)

// NewColorConsole creates a console writing to out.
func NewColorConsole(out io.Writer) *ColorConsole {
	return &ColorConsole{
		out:   out,
		style: color.New(color.FgGreen),
	}
}

func (it *ColorConsole) Info(message string) {
	_, _ = it.style.Fprintln(it.out, message)
}

// RegisterProviders binds commands.Console to a stdout ColorConsole.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() commands.Console {
		return NewColorConsole(os.Stdout)
	})
}
