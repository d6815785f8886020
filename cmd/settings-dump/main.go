// FILE: cmd/settings-dump/main.go
package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"

	settings "github.com/lixenwraith/appsettings"
)

const envPrefix = "APP_"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Build settings with application defaults
	b := settings.NewWithLogger(logger)
	b.SetTitle("Settings Dump")
	b.SetVersion("1.0")
	b.SetCredits(settings.NewCredits("Programming: lixenwraith"))

	// Apply operator overrides: CLI > env > builder values
	// ./settings-dump --width 1920 --mode release --menu_items save_load,extra
	overrides, err := settings.ResolveOverrides(envPrefix, os.Args[1:])
	if err != nil {
		if errors.Is(err, settings.ErrCLIParse) {
			logger.Fatal().Err(err).Msg("Invalid command-line override")
		}
		logger.Fatal().Err(err).Msg("Failed to resolve overrides")
	}
	b.ApplyOverrides(overrides)

	cfg := b.Freeze()

	logger = logger.Level(cfg.ApplicationMode().LogLevel())
	logger.Info().
		Str("title", cfg.Title()).
		Int("width", cfg.Width()).
		Int("height", cfg.Height()).
		Bool("full_screen", cfg.FullScreen()).
		Stringer("mode", cfg.ApplicationMode()).
		Stringer("menu_items", cfg.EnabledMenuItems()).
		Msg("Settings frozen")

	if err := cfg.Dump(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("Failed to dump settings")
	}
}
