package script

import "errors"

// Runtime errors.
var (
	// ErrClosed is returned when loading into a closed runtime.
	ErrClosed = errors.New("script runtime is closed")

	// ErrUnknownControl is raised into Lua when a script references a
	// control name the menu does not have.
	ErrUnknownControl = errors.New("unknown menu control")
)
