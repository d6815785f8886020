// FILE: lixenwraith/appsettings/credits.go
package settings

import (
	"slices"
	"strings"
)

// Credits is an immutable list of credit lines shown by the credits screen.
// The zero value is an empty list.
type Credits struct {
	lines []string
}

// NewCredits copies lines into a new Credits value
func NewCredits(lines ...string) Credits {
	return Credits{lines: slices.Clone(lines)}
}

// Lines returns a copy of the credit lines
func (c Credits) Lines() []string {
	return slices.Clone(c.lines)
}

// Len returns the number of lines
func (c Credits) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether there are no lines
func (c Credits) IsEmpty() bool {
	return len(c.lines) == 0
}

// String joins the lines with newlines
func (c Credits) String() string {
	return strings.Join(c.lines, "\n")
}
