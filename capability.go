// FILE: lixenwraith/appsettings/capability.go
package settings

//go:generate mockgen -source=capability.go -destination=internal/mock/capability_mock.go -package=mock

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Capabilities are stored in settings and handed to the subsystems that use them.
// A frozen snapshot shares a capability with every reader, so implementations
// must be safe for concurrent use and must not change observable behavior after
// Freeze. Implementations that keep mutable state should implement Clone, in
// which case Freeze stores a private copy instead of the original.

// SceneKind identifies a scene built by a SceneFactory
type SceneKind int

const (
	SceneIntro SceneKind = iota
	SceneMainMenu
	SceneGameMenu
	SceneLoading
)

func (k SceneKind) String() string {
	switch k {
	case SceneIntro:
		return "intro"
	case SceneMainMenu:
		return "main_menu"
	case SceneGameMenu:
		return "game_menu"
	case SceneLoading:
		return "loading"
	default:
		return fmt.Sprintf("SceneKind(%d)", int(k))
	}
}

// Scene is the minimal contract for scenes returned by a SceneFactory
type Scene interface {
	Kind() SceneKind
}

// SceneFactory creates the built-in scenes (intro, menus, loading).
// Implementations must be safe for concurrent use.
type SceneFactory interface {
	NewScene(kind SceneKind) Scene
}

// DialogKind identifies a dialog built by a DialogFactory
type DialogKind int

const (
	DialogMessage DialogKind = iota
	DialogConfirmation
	DialogError
)

// Dialog describes a modal dialog for the dialog renderer
type Dialog struct {
	Kind    DialogKind
	Message string
	Buttons []string
}

// DialogFactory creates dialogs. Implementations must be safe for concurrent use.
type DialogFactory interface {
	NewDialog(kind DialogKind, message string) Dialog
}

// WidgetKind identifies a UI element built by a UIFactory
type WidgetKind int

const (
	WidgetButton WidgetKind = iota
	WidgetText
)

// Widget describes a UI element for the UI renderer
type Widget struct {
	Kind WidgetKind
	Text string
}

// UIFactory creates UI elements. Implementations must be safe for concurrent use.
type UIFactory interface {
	NewButton(label string) Widget
	NewText(content string) Widget
}

// NotificationService shows short messages to the user.
// Implementations must be safe for concurrent use.
type NotificationService interface {
	PushNotification(message string)
}

// ExceptionHandler receives errors that escape application code.
// Implementations must be safe for concurrent use.
type ExceptionHandler interface {
	Handle(err error)
	// HandleFatal reports an unrecoverable error. Shutdown is left to the caller.
	HandleFatal(err error)
}

// DefaultSceneFactory builds stateless placeholder scenes
type DefaultSceneFactory struct{}

type basicScene struct {
	kind SceneKind
}

func (s basicScene) Kind() SceneKind { return s.kind }

func (DefaultSceneFactory) NewScene(kind SceneKind) Scene {
	return basicScene{kind: kind}
}

// DefaultDialogFactory builds dialogs with standard button sets
type DefaultDialogFactory struct{}

func (DefaultDialogFactory) NewDialog(kind DialogKind, message string) Dialog {
	buttons := []string{"OK"}
	if kind == DialogConfirmation {
		buttons = []string{"Yes", "No"}
	}
	return Dialog{Kind: kind, Message: message, Buttons: buttons}
}

// DefaultUIFactory builds plain widgets
type DefaultUIFactory struct{}

func (DefaultUIFactory) NewButton(label string) Widget {
	return Widget{Kind: WidgetButton, Text: label}
}

func (DefaultUIFactory) NewText(content string) Widget {
	return Widget{Kind: WidgetText, Text: content}
}

// DefaultNotificationService writes notifications to a logger
type DefaultNotificationService struct {
	logger zerolog.Logger
}

// NewDefaultNotificationService creates a notification service logging through logger
func NewDefaultNotificationService(logger zerolog.Logger) *DefaultNotificationService {
	return &DefaultNotificationService{logger: logger.With().Str("component", "notification").Logger()}
}

func (s *DefaultNotificationService) PushNotification(message string) {
	s.logger.Info().Str("message", message).Msg("notification")
}

// DefaultExceptionHandler logs errors and leaves recovery to the caller
type DefaultExceptionHandler struct {
	logger zerolog.Logger
}

// NewDefaultExceptionHandler creates an exception handler logging through logger
func NewDefaultExceptionHandler(logger zerolog.Logger) *DefaultExceptionHandler {
	return &DefaultExceptionHandler{logger: logger.With().Str("component", "exception").Logger()}
}

func (h *DefaultExceptionHandler) Handle(err error) {
	h.logger.Error().Err(err).Msg("unhandled error")
}

func (h *DefaultExceptionHandler) HandleFatal(err error) {
	h.logger.Error().Err(err).Bool("fatal", true).Msg("fatal error")
}
