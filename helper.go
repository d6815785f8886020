// File: lixenwraith/appsettings/helper.go
package settings

import "strings"

// isValidKey checks if an override key is a valid TOML bare key (A-Za-z0-9_-).
func isValidKey(s string) bool {
	if len(s) == 0 {
		return false
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'
		isDash := r == '-'

		if !(isLetter || isDigit || isUnderscore || isDash) {
			return false
		}
	}
	return true
}

// normalizeKey maps "Menu-Key" style flags onto the "menu_key" tag form
func normalizeKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "-", "_"))
}
