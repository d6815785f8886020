// FILE: lixenwraith/appsettings/mode.go
package settings

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ApplicationMode selects how much diagnostic output the application produces
type ApplicationMode int

const (
	// ModeDeveloper logs informational messages and above
	ModeDeveloper ApplicationMode = iota
	// ModeDebug logs everything
	ModeDebug
	// ModeRelease logs warnings and errors only
	ModeRelease
)

var modeNames = map[ApplicationMode]string{
	ModeDeveloper: "DEVELOPER",
	ModeDebug:     "DEBUG",
	ModeRelease:   "RELEASE",
}

// String returns the upper-case mode name
func (m ApplicationMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ApplicationMode(%d)", int(m))
}

// IsValid reports whether m is one of the declared modes
func (m ApplicationMode) IsValid() bool {
	_, ok := modeNames[m]
	return ok
}

// LogLevel maps the mode to the minimum zerolog level downstream loggers should emit
func (m ApplicationMode) LogLevel() zerolog.Level {
	switch m {
	case ModeDebug:
		return zerolog.DebugLevel
	case ModeRelease:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// ParseApplicationMode converts a case-insensitive mode name
func ParseApplicationMode(s string) (ApplicationMode, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for mode, modeName := range modeNames {
		if modeName == name {
			return mode, nil
		}
	}
	return ModeDeveloper, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler
func (m ApplicationMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *ApplicationMode) UnmarshalText(text []byte) error {
	mode, err := ParseApplicationMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
