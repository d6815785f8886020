// FILE: lixenwraith/appsettings/builder_test.go
package settings

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder() *Builder {
	return NewWithLogger(zerolog.Nop())
}

// TestDefaults tests that an unmodified builder freezes to the documented defaults
func TestDefaults(t *testing.T) {
	cfg := newTestBuilder().Freeze()
	require.NotNil(t, cfg)

	assert.Equal(t, "Untitled Application", cfg.Title())
	assert.Equal(t, 800, cfg.Width())
	assert.Equal(t, 600, cfg.Height())
	assert.Equal(t, "0.0", cfg.Version())
	assert.True(t, cfg.IntroEnabled())
	assert.True(t, cfg.MenuEnabled())
	assert.False(t, cfg.FullScreen())
	assert.True(t, cfg.ProfilingEnabled())
	assert.True(t, cfg.CloseConfirmation())
	assert.Equal(t, ModeDeveloper, cfg.ApplicationMode())
	assert.Equal(t, KeyEscape, cfg.MenuKey())
	assert.True(t, cfg.Credits().IsEmpty())
	assert.Equal(t, AllMenuItems(), cfg.EnabledMenuItems())
	assert.Equal(t, []MenuItem{MenuItemSaveLoad, MenuItemExtra, MenuItemOnline}, cfg.EnabledMenuItems().Items())

	assert.IsType(t, DefaultSceneFactory{}, cfg.SceneFactory())
	assert.IsType(t, DefaultDialogFactory{}, cfg.DialogFactory())
	assert.IsType(t, DefaultUIFactory{}, cfg.UIFactory())
	assert.IsType(t, &DefaultNotificationService{}, cfg.NotificationService())
	assert.IsType(t, &DefaultExceptionHandler{}, cfg.ExceptionHandler())

	t.Run("NewUsesSameDefaults", func(t *testing.T) {
		cfg := New().Freeze()
		assert.Equal(t, DefaultTitle, cfg.Title())
		assert.Equal(t, DefaultWidth, cfg.Width())
		assert.Equal(t, DefaultHeight, cfg.Height())
		assert.Equal(t, DefaultVersion, cfg.Version())
	})
}

// TestSetters tests that every setter is visible through the frozen snapshot
func TestSetters(t *testing.T) {
	b := newTestBuilder()
	credits := NewCredits("Art: someone", "Music: someone else")

	b.SetTitle("Pong")
	b.SetWidth(1280)
	b.SetHeight(720)
	b.SetVersion("2.1.0-beta")
	b.SetIntroEnabled(false)
	b.SetMenuEnabled(false)
	b.SetFullScreen(true)
	b.SetProfilingEnabled(false)
	b.SetCloseConfirmation(false)
	b.SetApplicationMode(ModeRelease)
	b.SetMenuKey(KeyCode("P"))
	b.SetCredits(credits)
	b.SetEnabledMenuItems(NewMenuItemSet(MenuItemExtra))

	cfg := b.Freeze()
	assert.Equal(t, "Pong", cfg.Title())
	assert.Equal(t, 1280, cfg.Width())
	assert.Equal(t, 720, cfg.Height())
	assert.Equal(t, "2.1.0-beta", cfg.Version())
	assert.False(t, cfg.IntroEnabled())
	assert.False(t, cfg.MenuEnabled())
	assert.True(t, cfg.FullScreen())
	assert.False(t, cfg.ProfilingEnabled())
	assert.False(t, cfg.CloseConfirmation())
	assert.Equal(t, ModeRelease, cfg.ApplicationMode())
	assert.Equal(t, KeyCode("P"), cfg.MenuKey())
	assert.Equal(t, credits, cfg.Credits())
	assert.Equal(t, NewMenuItemSet(MenuItemExtra), cfg.EnabledMenuItems())

	t.Run("NoValidation", func(t *testing.T) {
		b := newTestBuilder()
		b.SetWidth(0)
		b.SetHeight(-10)
		b.SetTitle("")
		b.SetApplicationMode(ApplicationMode(42))
		b.SetMenuKey(KeyCode("not a key"))
		b.SetSceneFactory(nil)

		cfg := b.Freeze()
		assert.Equal(t, 0, cfg.Width())
		assert.Equal(t, -10, cfg.Height())
		assert.Equal(t, "", cfg.Title())
		assert.Equal(t, ApplicationMode(42), cfg.ApplicationMode())
		assert.Equal(t, KeyCode("not a key"), cfg.MenuKey())
		assert.Nil(t, cfg.SceneFactory())
	})
}

// TestFreezeIsolation tests that builder mutations after Freeze do not leak into snapshots
func TestFreezeIsolation(t *testing.T) {
	t.Run("WidthAfterFreeze", func(t *testing.T) {
		b := newTestBuilder()
		b.SetWidth(1024)
		s1 := b.Freeze()

		b.SetWidth(500)
		assert.Equal(t, 1024, s1.Width())
		assert.Equal(t, 500, b.Freeze().Width())
	})

	t.Run("AllFieldsAfterFreeze", func(t *testing.T) {
		b := newTestBuilder()
		before := b.Freeze()
		want := *before

		b.SetTitle("changed")
		b.SetHeight(1)
		b.SetVersion("9.9")
		b.SetIntroEnabled(false)
		b.SetMenuEnabled(false)
		b.SetFullScreen(true)
		b.SetProfilingEnabled(false)
		b.SetCloseConfirmation(false)
		b.SetApplicationMode(ModeDebug)
		b.SetMenuKey(KeyF1)
		b.SetCredits(NewCredits("late"))
		b.SetEnabledMenuItems(NewMenuItemSet())
		b.SetSceneFactory(nil)
		b.SetDialogFactory(nil)
		b.SetUIFactory(nil)
		b.SetNotificationService(nil)
		b.SetExceptionHandler(nil)

		assert.Equal(t, want, *before)
	})

	t.Run("CreditsSourceSlice", func(t *testing.T) {
		lines := []string{"Code: a", "Art: b"}
		b := newTestBuilder()
		b.SetCredits(NewCredits(lines...))
		cfg := b.Freeze()

		lines[0] = "mutated"
		got := cfg.Credits().Lines()
		assert.Equal(t, []string{"Code: a", "Art: b"}, got)

		got[1] = "mutated again"
		assert.Equal(t, []string{"Code: a", "Art: b"}, cfg.Credits().Lines())
	})
}

// TestMultipleFreezes tests that repeated freezes yield equal, independent snapshots
func TestMultipleFreezes(t *testing.T) {
	b := newTestBuilder()
	b.SetTitle("Twice")
	b.SetEnabledMenuItems(NewMenuItemSet(MenuItemOnline))

	s1 := b.Freeze()
	s2 := b.Freeze()
	require.NotSame(t, s1, s2)
	assert.Equal(t, s1, s2)

	b.SetTitle("Thrice")
	b.SetEnabledMenuItems(AllMenuItems())

	assert.Equal(t, "Twice", s1.Title())
	assert.Equal(t, "Twice", s2.Title())
	assert.Equal(t, NewMenuItemSet(MenuItemOnline), s1.EnabledMenuItems())
	assert.Equal(t, s1, s2)
}

// TestEnabledMenuItemsReplace tests that the setter replaces rather than unions
func TestEnabledMenuItemsReplace(t *testing.T) {
	b := newTestBuilder()
	b.SetEnabledMenuItems(NewMenuItemSet(MenuItemSaveLoad, MenuItemExtra))
	b.SetEnabledMenuItems(NewMenuItemSet(MenuItemOnline))

	items := b.Freeze().EnabledMenuItems()
	assert.Equal(t, []MenuItem{MenuItemOnline}, items.Items())
	assert.False(t, items.Contains(MenuItemSaveLoad))
	assert.False(t, items.Contains(MenuItemExtra))

	t.Run("UndeclaredBitsMasked", func(t *testing.T) {
		b := newTestBuilder()
		b.SetEnabledMenuItems(MenuItemSet(0xFF))

		got := b.Freeze().EnabledMenuItems()
		assert.Equal(t, AllMenuItems(), got)
		assert.Equal(t, 3, got.Len())

		b.SetEnabledMenuItems(MenuItemSet(1<<7) | NewMenuItemSet(MenuItemExtra))
		assert.Equal(t, NewMenuItemSet(MenuItemExtra), b.Freeze().EnabledMenuItems())

		b.SetEnabledMenuItems(MenuItemSet(1 << 6))
		assert.True(t, b.Freeze().EnabledMenuItems().IsEmpty())
		assert.Equal(t, MenuItemSet(0), b.Freeze().EnabledMenuItems())
	})
}

// TestIdempotentSetters tests that repeating a setter with the same value is a no-op
func TestIdempotentSetters(t *testing.T) {
	scenes := DefaultSceneFactory{}
	dialogs := DefaultDialogFactory{}
	ui := DefaultUIFactory{}
	notifier := NewDefaultNotificationService(zerolog.Nop())
	handler := NewDefaultExceptionHandler(zerolog.Nop())

	tests := []struct {
		name  string
		apply func(b *Builder)
	}{
		{"Title", func(b *Builder) { b.SetTitle("Same") }},
		{"Width", func(b *Builder) { b.SetWidth(1920) }},
		{"Height", func(b *Builder) { b.SetHeight(1080) }},
		{"Version", func(b *Builder) { b.SetVersion("1.2.3") }},
		{"IntroEnabled", func(b *Builder) { b.SetIntroEnabled(false) }},
		{"MenuEnabled", func(b *Builder) { b.SetMenuEnabled(false) }},
		{"FullScreen", func(b *Builder) { b.SetFullScreen(true) }},
		{"ProfilingEnabled", func(b *Builder) { b.SetProfilingEnabled(false) }},
		{"CloseConfirmation", func(b *Builder) { b.SetCloseConfirmation(false) }},
		{"Mode", func(b *Builder) { b.SetApplicationMode(ModeDebug) }},
		{"MenuKey", func(b *Builder) { b.SetMenuKey(KeyTab) }},
		{"Credits", func(b *Builder) { b.SetCredits(NewCredits("x")) }},
		{"MenuItems", func(b *Builder) { b.SetEnabledMenuItems(NewMenuItemSet(MenuItemExtra, MenuItemExtra)) }},
		{"SceneFactory", func(b *Builder) { b.SetSceneFactory(scenes) }},
		{"DialogFactory", func(b *Builder) { b.SetDialogFactory(dialogs) }},
		{"UIFactory", func(b *Builder) { b.SetUIFactory(ui) }},
		{"NotificationService", func(b *Builder) { b.SetNotificationService(notifier) }},
		{"ExceptionHandler", func(b *Builder) { b.SetExceptionHandler(handler) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := newTestBuilder()
			tt.apply(once)

			twice := newTestBuilder()
			tt.apply(twice)
			tt.apply(twice)

			assert.Equal(t, once.Freeze(), twice.Freeze())
		})
	}

	t.Run("SamePointerTwice", func(t *testing.T) {
		b := newTestBuilder()
		b.SetNotificationService(notifier)
		b.SetNotificationService(notifier)
		b.SetExceptionHandler(handler)
		b.SetExceptionHandler(handler)

		cfg := b.Freeze()
		assert.Same(t, notifier, cfg.NotificationService())
		assert.Same(t, handler, cfg.ExceptionHandler())
	})
}

// TestNoCrossFieldEffects tests that a setter only touches its own field
func TestNoCrossFieldEffects(t *testing.T) {
	b := newTestBuilder()
	want := *b.Freeze()

	b.SetFullScreen(true)
	got := *b.Freeze()

	assert.True(t, got.FullScreen())
	got.f.fullScreen = want.f.fullScreen
	assert.Equal(t, want, got)
}
