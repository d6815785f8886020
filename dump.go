// FILE: lixenwraith/appsettings/dump.go
package settings

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// dumpView is the TOML rendering of a snapshot
type dumpView struct {
	Title             string          `toml:"title"`
	Width             int             `toml:"width"`
	Height            int             `toml:"height"`
	Version           string          `toml:"version"`
	IntroEnabled      bool            `toml:"intro_enabled"`
	MenuEnabled       bool            `toml:"menu_enabled"`
	FullScreen        bool            `toml:"full_screen"`
	ProfilingEnabled  bool            `toml:"profiling_enabled"`
	CloseConfirmation bool            `toml:"close_confirmation"`
	ApplicationMode   string          `toml:"mode"`
	MenuKey           string          `toml:"menu_key"`
	EnabledMenuItems  []string        `toml:"menu_items"`
	Credits           []string        `toml:"credits,omitempty"`
	Capabilities      capabilitiesView `toml:"capabilities"`
}

type capabilitiesView struct {
	SceneFactory        string `toml:"scene_factory"`
	DialogFactory       string `toml:"dialog_factory"`
	UIFactory           string `toml:"ui_factory"`
	NotificationService string `toml:"notification_service"`
	ExceptionHandler    string `toml:"exception_handler"`
}

// Dump writes the snapshot to w in TOML format for diagnostics.
// Capabilities are rendered by their dynamic type name.
func (r *ReadOnly) Dump(w io.Writer) error {
	items := r.f.enabledMenuItems.Items()
	itemNames := make([]string, len(items))
	for i, item := range items {
		itemNames[i] = item.String()
	}

	view := dumpView{
		Title:             r.f.title,
		Width:             r.f.width,
		Height:            r.f.height,
		Version:           r.f.version,
		IntroEnabled:      r.f.introEnabled,
		MenuEnabled:       r.f.menuEnabled,
		FullScreen:        r.f.fullScreen,
		ProfilingEnabled:  r.f.profilingEnabled,
		CloseConfirmation: r.f.closeConfirmation,
		ApplicationMode:   r.f.applicationMode.String(),
		MenuKey:           r.f.menuKey.String(),
		EnabledMenuItems:  itemNames,
		Credits:           r.f.credits.Lines(),
		Capabilities: capabilitiesView{
			SceneFactory:        fmt.Sprintf("%T", r.f.sceneFactory),
			DialogFactory:       fmt.Sprintf("%T", r.f.dialogFactory),
			UIFactory:           fmt.Sprintf("%T", r.f.uiFactory),
			NotificationService: fmt.Sprintf("%T", r.f.notificationService),
			ExceptionHandler:    fmt.Sprintf("%T", r.f.exceptionHandler),
		},
	}

	if err := toml.NewEncoder(w).Encode(view); err != nil {
		return fmt.Errorf("failed to encode settings to TOML: %w", err)
	}
	return nil
}
