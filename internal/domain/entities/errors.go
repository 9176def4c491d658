package entities

import "errors"

var (
	// ErrParse is returned when the manifest is absent, unreadable, or structurally invalid.
	ErrParse = errors.New("failed to parse manifest")

	// ErrIO is returned when the report cannot be written.
	ErrIO = errors.New("failed to write report")

	// ErrUnknownFormat is returned for manifest or report formats nobody registered.
	ErrUnknownFormat = errors.New("unknown format")
)
