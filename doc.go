// File: lixenwraith/appsettings/doc.go

// Package settings provides application settings that are assembled with a
// mutable Builder and frozen into a read-only snapshot before startup.
//
// Features:
//   - Fully populated defaults, no unset state
//   - One setter per field, no validation beyond the Go type
//   - Freeze produces an independent ReadOnly snapshot with accessors only
//   - Pluggable capabilities (scene, dialog, UI, notification, exception handling)
//   - Opt-in defensive copy of stateful capabilities through Clone
//   - Environment and command-line overrides applied before freezing
//   - TOML dump of a snapshot for diagnostics
//
// Quick Start:
//
//	b := settings.New()
//	b.SetTitle("Space Invaders")
//	b.SetWidth(1280)
//	b.SetHeight(720)
//	b.SetEnabledMenuItems(settings.NewMenuItemSet(settings.MenuItemSaveLoad))
//
//	overrides, err := settings.ResolveOverrides("GAME_", os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b.ApplyOverrides(overrides)
//
//	cfg := b.Freeze()
//	startWindow(cfg) // accepts settings.WindowSettings
//
// Override Precedence (highest to lowest):
//  1. Command-line arguments (--width=1920, --mode release, --full_screen)
//  2. Environment variables (GAME_WIDTH=1920, GAME_MENU_ITEMS=extra,online)
//  3. Values set on the Builder
//
// Thread Safety:
// A Builder is meant to be used from one goroutine during initialization.
// A ReadOnly snapshot holds no mutable shared data of its own and may be read
// concurrently. Capabilities shared by reference must be safe for concurrent use.
package settings
