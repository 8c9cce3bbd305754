// Package theme holds the light/dark preference.
//
// A Preference is initialised once from the persisted value, or from an
// environment default when nothing is stored, and lives for the rest of the
// session. Toggling writes through to the store.
package theme

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/logging"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse accepts "light" or "dark" in any case.
func Parse(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Icon names the icon shown on the toggle button: a moon offers dark mode,
// a sun offers light mode.
func (t Theme) Icon() string {
	if t == Dark {
		return "sun"
	}
	return "moon"
}

// FromColorScheme maps a prefers-color-scheme value to a Theme. Browsers
// send the client hint as a structured-header string, quotes included
// ("dark"); bare values are accepted too. Anything else is Light.
func FromColorScheme(v string) Theme {
	if t, ok := Parse(strings.Trim(strings.TrimSpace(v), `"`)); ok {
		return t
	}
	return Light
}

// Store is the persistence a Preference needs.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Preference is the current theme for one user or visitor.
type Preference struct {
	mu      sync.Mutex
	store   Store
	key     string
	current Theme
}

func storageKey(key string) string {
	return "theme:" + key
}

// Init loads the stored theme for key, falling back to def. A nil store
// keeps the preference in memory only. Read errors are logged and treated
// as "nothing stored".
func Init(ctx context.Context, store Store, key string, def Theme) *Preference {
	if _, ok := Parse(string(def)); !ok {
		def = Light
	}
	p := &Preference{store: store, key: key, current: def}
	if store == nil {
		return p
	}

	v, ok, err := store.Get(ctx, storageKey(key))
	if err != nil {
		logging.Warn("Failed to read theme preference", zap.Error(err))
		return p
	}
	if t, valid := Parse(v); ok && valid {
		p.current = t
	}
	return p
}

// Current returns the active theme.
func (p *Preference) Current() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Toggle flips the theme and persists it. The in-memory value flips even
// when persisting fails; the error is returned for the caller to log.
func (p *Preference) Toggle(ctx context.Context) (Theme, error) {
	p.mu.Lock()
	p.current = p.current.Toggle()
	t := p.current
	p.mu.Unlock()

	return t, p.persist(ctx, t)
}

// Set replaces the theme and persists it.
func (p *Preference) Set(ctx context.Context, t Theme) error {
	if _, ok := Parse(string(t)); !ok {
		return fmt.Errorf("unknown theme %q", t)
	}
	p.mu.Lock()
	p.current = t
	p.mu.Unlock()
	return p.persist(ctx, t)
}

func (p *Preference) persist(ctx context.Context, t Theme) error {
	if p.store == nil {
		return nil
	}
	if err := p.store.Set(ctx, storageKey(p.key), string(t)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}
