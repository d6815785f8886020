// FILE: lixenwraith/appsettings/readonly.go
package settings

// ReadOnly is a frozen settings snapshot produced by Builder.Freeze.
// It has no mutators and is safe for concurrent readers.
type ReadOnly struct {
	f fields
}

// WindowSettings is the view consumed by the window subsystem
type WindowSettings interface {
	Title() string
	Width() int
	Height() int
	FullScreen() bool
}

// MenuSettings is the view consumed by the menu subsystem
type MenuSettings interface {
	MenuEnabled() bool
	EnabledMenuItems() MenuItemSet
	MenuKey() KeyCode
}

// DiagnosticSettings is the view consumed by profiling and logging setup
type DiagnosticSettings interface {
	ApplicationMode() ApplicationMode
	ProfilingEnabled() bool
}

var (
	_ WindowSettings     = (*ReadOnly)(nil)
	_ MenuSettings       = (*ReadOnly)(nil)
	_ DiagnosticSettings = (*ReadOnly)(nil)
)

// Title returns the window header text
func (r *ReadOnly) Title() string { return r.f.title }

// Width returns the logical width in pixels
func (r *ReadOnly) Width() int { return r.f.width }

// Height returns the logical height in pixels
func (r *ReadOnly) Height() int { return r.f.height }

// Version returns the free-form application version
func (r *ReadOnly) Version() string { return r.f.version }

// IntroEnabled reports whether the intro plays before the main menu
func (r *ReadOnly) IntroEnabled() bool { return r.f.introEnabled }

// MenuEnabled reports whether the main and in-game menus are available
func (r *ReadOnly) MenuEnabled() bool { return r.f.menuEnabled }

// FullScreen reports whether the application starts in full screen
func (r *ReadOnly) FullScreen() bool { return r.f.fullScreen }

// ProfilingEnabled reports whether the profiler and performance counters run
func (r *ReadOnly) ProfilingEnabled() bool { return r.f.profilingEnabled }

// CloseConfirmation reports whether exit asks for confirmation
func (r *ReadOnly) CloseConfirmation() bool { return r.f.closeConfirmation }

// ApplicationMode returns the run mode
func (r *ReadOnly) ApplicationMode() ApplicationMode { return r.f.applicationMode }

// MenuKey returns the key toggling the in-game menu
func (r *ReadOnly) MenuKey() KeyCode { return r.f.menuKey }

// Credits returns the immutable credits value
func (r *ReadOnly) Credits() Credits { return r.f.credits }

// EnabledMenuItems returns a copy of the enabled item set
func (r *ReadOnly) EnabledMenuItems() MenuItemSet { return r.f.enabledMenuItems }

// SceneFactory returns the configured scene factory, possibly nil
func (r *ReadOnly) SceneFactory() SceneFactory { return r.f.sceneFactory }

// DialogFactory returns the configured dialog factory
func (r *ReadOnly) DialogFactory() DialogFactory { return r.f.dialogFactory }

// UIFactory returns the widget factory
func (r *ReadOnly) UIFactory() UIFactory { return r.f.uiFactory }

// NotificationService returns the notification sink
func (r *ReadOnly) NotificationService() NotificationService { return r.f.notificationService }

// ExceptionHandler returns the handler for unhandled errors
func (r *ReadOnly) ExceptionHandler() ExceptionHandler { return r.f.exceptionHandler }
