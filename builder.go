// FILE: lixenwraith/appsettings/builder.go
package settings

import (
	"os"

	"github.com/rs/zerolog"
)

// Default values applied by New
const (
	DefaultTitle   = "Untitled Application"
	DefaultWidth   = 800
	DefaultHeight  = 600
	DefaultVersion = "0.0"
)

// fields holds every configurable value. Builder and ReadOnly both wrap it,
// so a freeze is a single struct copy plus capability cloning.
type fields struct {
	title             string
	width             int
	height            int
	version           string
	introEnabled      bool
	menuEnabled       bool
	fullScreen        bool
	profilingEnabled  bool
	closeConfirmation bool
	applicationMode   ApplicationMode
	menuKey           KeyCode
	credits           Credits
	enabledMenuItems  MenuItemSet

	sceneFactory        SceneFactory
	dialogFactory       DialogFactory
	uiFactory           UIFactory
	notificationService NotificationService
	exceptionHandler    ExceptionHandler
}

// Builder accumulates application settings before startup.
// It is not safe for concurrent use; build and freeze it on a single goroutine.
type Builder struct {
	f      fields
	logger zerolog.Logger
}

// New creates a Builder with every field set to its default.
// Default capabilities log to stderr.
func New() *Builder {
	return NewWithLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger())
}

// NewWithLogger creates a Builder with defaults whose logging capabilities
// and override reporting write through logger.
func NewWithLogger(logger zerolog.Logger) *Builder {
	return &Builder{
		f: fields{
			title:             DefaultTitle,
			width:             DefaultWidth,
			height:            DefaultHeight,
			version:           DefaultVersion,
			introEnabled:      true,
			menuEnabled:       true,
			fullScreen:        false,
			profilingEnabled:  true,
			closeConfirmation: true,
			applicationMode:   ModeDeveloper,
			menuKey:           KeyEscape,
			credits:           Credits{},
			enabledMenuItems:  AllMenuItems(),

			sceneFactory:        DefaultSceneFactory{},
			dialogFactory:       DefaultDialogFactory{},
			uiFactory:           DefaultUIFactory{},
			notificationService: NewDefaultNotificationService(logger),
			exceptionHandler:    NewDefaultExceptionHandler(logger),
		},
		logger: logger,
	}
}

// SetTitle sets the display name shown as the window header
func (b *Builder) SetTitle(title string) {
	b.f.title = title
}

// SetWidth sets the target logical width in pixels
func (b *Builder) SetWidth(width int) {
	b.f.width = width
}

// SetHeight sets the target logical height in pixels
func (b *Builder) SetHeight(height int) {
	b.f.height = height
}

// SetVersion sets the free-form application version
func (b *Builder) SetVersion(version string) {
	b.f.version = version
}

// SetIntroEnabled controls whether the intro plays before the main menu
func (b *Builder) SetIntroEnabled(enabled bool) {
	b.f.introEnabled = enabled
}

// SetMenuEnabled enables the main and in-game menus
func (b *Builder) SetMenuEnabled(enabled bool) {
	b.f.menuEnabled = enabled
}

// SetFullScreen starts the application in full screen mode
func (b *Builder) SetFullScreen(fullScreen bool) {
	b.f.fullScreen = fullScreen
}

// SetProfilingEnabled enables the profiler and on-screen performance counters
func (b *Builder) SetProfilingEnabled(enabled bool) {
	b.f.profilingEnabled = enabled
}

// SetCloseConfirmation controls whether exit asks for confirmation
func (b *Builder) SetCloseConfirmation(confirm bool) {
	b.f.closeConfirmation = confirm
}

// SetApplicationMode sets the run mode, which drives diagnostic verbosity
func (b *Builder) SetApplicationMode(mode ApplicationMode) {
	b.f.applicationMode = mode
}

// SetMenuKey sets the key that toggles the in-game menu
func (b *Builder) SetMenuKey(key KeyCode) {
	b.f.menuKey = key
}

// SetCredits sets additional credits
func (b *Builder) SetCredits(credits Credits) {
	b.f.credits = credits
}

// SetEnabledMenuItems replaces the set of enabled menu items.
// Bits that do not name a declared MenuItem are dropped.
func (b *Builder) SetEnabledMenuItems(items MenuItemSet) {
	b.f.enabledMenuItems = items & allMenuItemsMask
}

// SetSceneFactory provides a custom scene factory
func (b *Builder) SetSceneFactory(factory SceneFactory) {
	b.f.sceneFactory = factory
}

// SetDialogFactory provides a custom dialog factory
func (b *Builder) SetDialogFactory(factory DialogFactory) {
	b.f.dialogFactory = factory
}

// SetUIFactory provides a custom UI factory
func (b *Builder) SetUIFactory(factory UIFactory) {
	b.f.uiFactory = factory
}

// SetNotificationService provides a custom notification service
func (b *Builder) SetNotificationService(service NotificationService) {
	b.f.notificationService = service
}

// SetExceptionHandler provides a custom exception handler
func (b *Builder) SetExceptionHandler(handler ExceptionHandler) {
	b.f.exceptionHandler = handler
}

// Freeze returns a read-only snapshot of the current values.
// Later changes to the Builder are not visible through the snapshot.
// Capabilities implementing Clone are copied, all others are shared by reference.
// Freeze may be called any number of times; each call yields an independent snapshot.
func (b *Builder) Freeze() *ReadOnly {
	f := b.f // Plain values, Credits and MenuItemSet copy by value

	f.sceneFactory = cloneCapability(f.sceneFactory)
	f.dialogFactory = cloneCapability(f.dialogFactory)
	f.uiFactory = cloneCapability(f.uiFactory)
	f.notificationService = cloneCapability(f.notificationService)
	f.exceptionHandler = cloneCapability(f.exceptionHandler)

	return &ReadOnly{f: f}
}
