// FILE: lixenwraith/appsettings/override.go
package settings

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
)

// Overrides carries operator-supplied values collected from the environment
// or command line. A nil field means the value was not provided.
type Overrides struct {
	Title             *string          `env:"TITLE" toml:"title"`
	Width             *int             `env:"WIDTH" toml:"width"`
	Height            *int             `env:"HEIGHT" toml:"height"`
	Version           *string          `env:"VERSION" toml:"version"`
	IntroEnabled      *bool            `env:"INTRO_ENABLED" toml:"intro_enabled"`
	MenuEnabled       *bool            `env:"MENU_ENABLED" toml:"menu_enabled"`
	FullScreen        *bool            `env:"FULL_SCREEN" toml:"full_screen"`
	ProfilingEnabled  *bool            `env:"PROFILING_ENABLED" toml:"profiling_enabled"`
	CloseConfirmation *bool            `env:"CLOSE_CONFIRMATION" toml:"close_confirmation"`
	ApplicationMode   *ApplicationMode `env:"MODE" toml:"mode"`
	MenuKey           *KeyCode         `env:"MENU_KEY" toml:"menu_key"`
	EnabledMenuItems  *MenuItemSet     `env:"MENU_ITEMS" toml:"menu_items"`
}

// LoadEnvOverrides reads overrides from environment variables named prefix + tag,
// e.g. "APP_" yields APP_WIDTH, APP_MODE, APP_MENU_ITEMS.
// An empty variable counts as unset; use APP_MENU_ITEMS=NONE to disable every menu item.
func LoadEnvOverrides(prefix string) (Overrides, error) {
	var o Overrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: prefix}); err != nil {
		return Overrides{}, fmt.Errorf("%w: %w", ErrEnvParse, err)
	}
	return o, nil
}

// ParseArgOverrides reads overrides from command-line arguments.
// Accepted forms are "--key value", "--key=value" and "--flag" (boolean true).
// Keys use the toml tag names; dashes are accepted in place of underscores.
// Non-flag arguments and unknown keys are ignored.
func ParseArgOverrides(args []string) (Overrides, error) {
	parsed, err := parseArgs(args)
	if err != nil {
		return Overrides{}, fmt.Errorf("%w: %w", ErrCLIParse, err)
	}

	var o Overrides
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &o,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return Overrides{}, fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(parsed); err != nil {
		return Overrides{}, fmt.Errorf("%w: %w", ErrCLIParse, err)
	}
	return o, nil
}

// ResolveOverrides combines environment and command-line overrides.
// Command-line values take precedence over environment values.
func ResolveOverrides(envPrefix string, args []string) (Overrides, error) {
	envOverrides, envErr := LoadEnvOverrides(envPrefix)
	cliOverrides, cliErr := ParseArgOverrides(args)
	if envErr != nil || cliErr != nil {
		return Overrides{}, errors.Join(envErr, cliErr)
	}

	// Pointers are compared for nil only, so an explicit CLI false or 0 still wins
	merged := cliOverrides
	if err := mergo.Merge(&merged, envOverrides, mergo.WithoutDereference); err != nil {
		return Overrides{}, fmt.Errorf("failed to merge overrides: %w", err)
	}
	return merged, nil
}

// ApplyOverrides routes every provided override through the matching setter
func (b *Builder) ApplyOverrides(o Overrides) {
	if o.Title != nil {
		b.SetTitle(*o.Title)
		b.logOverride("title", *o.Title)
	}
	if o.Width != nil {
		b.SetWidth(*o.Width)
		b.logOverride("width", *o.Width)
	}
	if o.Height != nil {
		b.SetHeight(*o.Height)
		b.logOverride("height", *o.Height)
	}
	if o.Version != nil {
		b.SetVersion(*o.Version)
		b.logOverride("version", *o.Version)
	}
	if o.IntroEnabled != nil {
		b.SetIntroEnabled(*o.IntroEnabled)
		b.logOverride("intro_enabled", *o.IntroEnabled)
	}
	if o.MenuEnabled != nil {
		b.SetMenuEnabled(*o.MenuEnabled)
		b.logOverride("menu_enabled", *o.MenuEnabled)
	}
	if o.FullScreen != nil {
		b.SetFullScreen(*o.FullScreen)
		b.logOverride("full_screen", *o.FullScreen)
	}
	if o.ProfilingEnabled != nil {
		b.SetProfilingEnabled(*o.ProfilingEnabled)
		b.logOverride("profiling_enabled", *o.ProfilingEnabled)
	}
	if o.CloseConfirmation != nil {
		b.SetCloseConfirmation(*o.CloseConfirmation)
		b.logOverride("close_confirmation", *o.CloseConfirmation)
	}
	if o.ApplicationMode != nil {
		b.SetApplicationMode(*o.ApplicationMode)
		b.logOverride("mode", o.ApplicationMode.String())
	}
	if o.MenuKey != nil {
		b.SetMenuKey(*o.MenuKey)
		b.logOverride("menu_key", o.MenuKey.String())
	}
	if o.EnabledMenuItems != nil {
		b.SetEnabledMenuItems(*o.EnabledMenuItems)
		b.logOverride("menu_items", o.EnabledMenuItems.String())
	}
}

func (b *Builder) logOverride(key string, value any) {
	b.logger.Debug().Str("key", key).Interface("value", value).Msg("settings override applied")
}

// parseArgs collects "--name value", "--name=value" and bare "--name" flags.
// Values stay strings for the decoder to convert.
func parseArgs(args []string) (map[string]any, error) {
	flags := make(map[string]any)
	for i := 0; i < len(args); i++ {
		flag, ok := strings.CutPrefix(args[i], "--")
		if !ok || flag == "" {
			continue // positional or "--"
		}

		name, value, hasValue := strings.Cut(flag, "=")
		if !hasValue {
			value = "true"
			if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "--") {
				value = args[next]
				i = next
			}
		}

		if name == "" {
			continue
		}
		if !isValidKey(name) {
			return nil, fmt.Errorf("invalid command-line key %q", name)
		}
		flags[normalizeKey(name)] = value
	}
	return flags, nil
}
