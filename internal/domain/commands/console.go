package commands

// Console receives the human readable progress messages of a command.
type Console interface {
	Info(message string)
}
