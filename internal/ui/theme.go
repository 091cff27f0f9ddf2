package ui

import (
	"context"
	"log/slog"

	"github.com/nfrund/esperanca/internal/dom"
	"github.com/nfrund/esperanca/internal/storage"
)

// Theme preference storage and markup.
const (
	ThemeKey      = "theme"
	ThemeLight    = "light"
	ThemeDark     = "dark"
	ThemeToggleID = "theme-toggle"
	DarkModeClass = "dark-mode"

	// The button shows the active theme.
	iconInDark  = "🌙"
	iconInLight = "☀️"
)

// Theme switches body between light and dark mode and remembers the choice.
type Theme struct {
	store  storage.KeyValue
	logger *slog.Logger
	detach func()
}

// NewTheme creates a Theme persisting to store.
func NewTheme(store storage.KeyValue, logger *slog.Logger) *Theme {
	if logger == nil {
		logger = slog.Default()
	}
	return &Theme{store: store, logger: logger}
}

// Init applies the saved preference (light when none) and makes
// #theme-toggle flip it. No-op without the button or a body.
func (t *Theme) Init(ctx context.Context, doc dom.Document) {
	if t.detach != nil {
		t.detach()
		t.detach = nil
	}

	btn, ok := doc.ElementByID(ThemeToggleID)
	if !ok {
		t.logger.Debug("Theme toggle not present, skipping")
		return
	}
	body, ok := doc.Body()
	if !ok {
		return
	}

	t.detach = btn.AddEventListener("click", func(dom.Event) {
		next := ThemeDark
		if body.HasClass(DarkModeClass) {
			next = ThemeLight
		}
		t.apply(ctx, body, btn, next)
	})

	t.apply(ctx, body, btn, t.saved(ctx))
}

func (t *Theme) saved(ctx context.Context) string {
	value, ok, err := t.store.GetItem(ctx, ThemeKey)
	if err != nil {
		t.logger.Warn("Failed to read theme preference", "error", err)
		return ThemeLight
	}
	if !ok || value != ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t *Theme) apply(ctx context.Context, body, btn dom.Element, theme string) {
	if theme == ThemeDark {
		body.AddClass(DarkModeClass)
		btn.SetText(iconInDark)
	} else {
		body.RemoveClass(DarkModeClass)
		btn.SetText(iconInLight)
	}
	if err := t.store.SetItem(ctx, ThemeKey, theme); err != nil {
		t.logger.Warn("Failed to save theme preference", "theme", theme, "error", err)
	}
}
