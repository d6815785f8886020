// FILE: lixenwraith/appsettings/clone.go
package settings

// Cloner is implemented by capabilities that hold mutable state.
// Clone must return an independent copy; Freeze stores the copy.
type Cloner[T any] interface {
	Clone() T
}

// cloneCapability returns v.Clone() when v implements Cloner[T], otherwise v itself.
// A nil capability is returned unchanged.
func cloneCapability[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
