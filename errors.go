// FILE: lixenwraith/appsettings/errors.go
package settings

import "errors"

// Errors returned while parsing enum values and collecting overrides.
// Builder setters and Freeze never fail.
var (
	// ErrUnknownMode indicates a string that names no ApplicationMode
	ErrUnknownMode = errors.New("unknown application mode")
	// ErrUnknownMenuItem indicates a string that names no MenuItem
	ErrUnknownMenuItem = errors.New("unknown menu item")
	// ErrUnknownKey indicates a string that names no supported KeyCode
	ErrUnknownKey = errors.New("unknown key code")
	// ErrEnvParse wraps failures decoding environment variable overrides
	ErrEnvParse = errors.New("failed to parse environment overrides")
	// ErrCLIParse wraps failures decoding command-line overrides
	ErrCLIParse = errors.New("failed to parse command-line overrides")
)
