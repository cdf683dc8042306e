package persist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/jaap/internal/counter"
	"github.com/five82/jaap/internal/prefs"
	"github.com/five82/jaap/internal/storage"
)

// Adapter loads and saves counter state and preferences through a Store.
type Adapter struct {
	store storage.Store
	log   *slog.Logger
}

// NewAdapter wraps store. A nil logger discards output.
func NewAdapter(store storage.Store, log *slog.Logger) *Adapter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Adapter{store: store, log: log}
}

// Load reads every key independently. A key that is absent, unreadable or
// malformed falls back to its default; Load itself never fails.
func (a *Adapter) Load(ctx context.Context) (counter.State, prefs.Prefs) {
	p := prefs.Default()
	s := counter.Zero()

	if raw, ok := a.read(ctx, KeyState); ok {
		decoded, err := DecodeState(raw)
		if err != nil {
			a.log.Warn("stored counter unreadable, starting from zero", "key", KeyState, "error", err)
		} else {
			s = decoded
		}
	}
	if raw, ok := a.read(ctx, KeyTheme); ok {
		theme, err := prefs.ParseTheme(raw)
		if err != nil {
			a.log.Warn("stored theme unreadable, using default", "key", KeyTheme, "error", err)
		}
		p.Theme = theme
	}
	if raw, ok := a.read(ctx, KeyMode); ok {
		mode, err := counter.ParseMode(raw)
		if err != nil {
			a.log.Warn("stored mode unreadable, using default", "key", KeyMode, "error", err)
		}
		p.Mode = mode
	}
	if raw, ok := a.read(ctx, KeySound); ok {
		sound, err := prefs.ParseSound(raw)
		if err != nil {
			a.log.Warn("stored sound setting unreadable, using default", "key", KeySound, "error", err)
		}
		p.Sound = sound
	}

	a.log.Debug("state loaded",
		"store", a.store.Description(),
		"total", s.TotalCount,
		"theme", string(p.Theme),
		"mode", p.Mode.String(),
		"sound", p.Sound,
	)
	return s, p
}

func (a *Adapter) read(ctx context.Context, key string) (string, bool) {
	raw, ok, err := a.store.Get(ctx, key)
	if err != nil {
		a.log.Warn("storage read failed, using default", "key", key, "error", err)
		return "", false
	}
	return raw, ok
}

// SaveState writes the counter.
func (a *Adapter) SaveState(ctx context.Context, s counter.State) error {
	return a.save(ctx, KeyState, EncodeState(s))
}

// SaveTheme writes the theme.
func (a *Adapter) SaveTheme(ctx context.Context, t prefs.Theme) error {
	return a.save(ctx, KeyTheme, EncodeTheme(t))
}

// SaveMode writes the counting mode.
func (a *Adapter) SaveMode(ctx context.Context, m counter.Mode) error {
	return a.save(ctx, KeyMode, EncodeMode(m))
}

// SaveSound writes the sound toggle.
func (a *Adapter) SaveSound(ctx context.Context, enabled bool) error {
	return a.save(ctx, KeySound, EncodeSound(enabled))
}

func (a *Adapter) save(ctx context.Context, key, value string) error {
	if err := a.store.Set(ctx, key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
