// FILE: lixenwraith/appsettings/key.go
package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyCode names a physical keyboard key, e.g. "ESCAPE", "A", "F1", "DIGIT5"
type KeyCode string

// Named keys. Letters use their upper-case character, digits use DIGIT0-DIGIT9,
// function keys use F1-F12.
const (
	KeyEscape    KeyCode = "ESCAPE"
	KeyEnter     KeyCode = "ENTER"
	KeySpace     KeyCode = "SPACE"
	KeyTab       KeyCode = "TAB"
	KeyBackspace KeyCode = "BACK_SPACE"
	KeyPause     KeyCode = "PAUSE"
	KeyUp        KeyCode = "UP"
	KeyDown      KeyCode = "DOWN"
	KeyLeft      KeyCode = "LEFT"
	KeyRight     KeyCode = "RIGHT"
	KeyF1        KeyCode = "F1"
	KeyF10       KeyCode = "F10"
	KeyF12       KeyCode = "F12"
)

var namedKeys = map[KeyCode]bool{
	KeyEscape:    true,
	KeyEnter:     true,
	KeySpace:     true,
	KeyTab:       true,
	KeyBackspace: true,
	KeyPause:     true,
	KeyUp:        true,
	KeyDown:      true,
	KeyLeft:      true,
	KeyRight:     true,
}

// IsValid reports whether k names a supported key
func (k KeyCode) IsValid() bool {
	s := string(k)
	if namedKeys[k] {
		return true
	}
	// Single letter
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		return true
	}
	if digit, ok := strings.CutPrefix(s, "DIGIT"); ok {
		return len(digit) == 1 && digit[0] >= '0' && digit[0] <= '9'
	}
	if num, ok := strings.CutPrefix(s, "F"); ok {
		n, err := strconv.Atoi(num)
		return err == nil && n >= 1 && n <= 12 && strconv.Itoa(n) == num
	}
	return false
}

func (k KeyCode) String() string {
	return string(k)
}

// ParseKeyCode converts a case-insensitive key name
func ParseKeyCode(s string) (KeyCode, error) {
	k := KeyCode(strings.ToUpper(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
	}
	return k, nil
}

// MarshalText implements encoding.TextMarshaler
func (k KeyCode) MarshalText() ([]byte, error) {
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *KeyCode) UnmarshalText(text []byte) error {
	key, err := ParseKeyCode(string(text))
	if err != nil {
		return err
	}
	*k = key
	return nil
}
