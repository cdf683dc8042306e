// Package prefs defines the user preferences that travel alongside the
// counter: the active theme, the counting mode and the sound toggle.
package prefs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/five82/jaap/internal/counter"
)

// Theme identifies one of the fixed visual themes.
type Theme string

const (
	ThemeSaffron      Theme = "SAFFRON"
	ThemeDeepBlue     Theme = "DEEP_BLUE"
	ThemeForestGreen  Theme = "FOREST_GREEN"
	ThemeClassicWhite Theme = "CLASSIC_WHITE"
)

var themeOrder = []Theme{ThemeSaffron, ThemeDeepBlue, ThemeForestGreen, ThemeClassicWhite}

// Prefs holds user preferences.
type Prefs struct {
	Theme Theme
	Mode  counter.Mode
	Sound bool
}

// Default returns the preferences used on first run.
func Default() Prefs {
	return Prefs{
		Theme: DefaultTheme(),
		Mode:  counter.ModeCycle,
		Sound: true,
	}
}

// DefaultTheme returns the first enumerated theme.
func DefaultTheme() Theme {
	return themeOrder[0]
}

// Themes returns the themes in cycle order.
func Themes() []Theme {
	out := make([]Theme, len(themeOrder))
	copy(out, themeOrder)
	return out
}

// Next returns the theme after t, wrapping around. Unknown themes restart
// the cycle.
func (t Theme) Next() Theme {
	for i, name := range themeOrder {
		if name == t {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// Label returns a human readable name.
func (t Theme) Label() string {
	words := strings.Split(strings.ToLower(string(t)), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ParseTheme matches value against the known themes, case-insensitively.
func ParseTheme(value string) (Theme, error) {
	normalized := Theme(strings.ToUpper(strings.TrimSpace(value)))
	for _, t := range themeOrder {
		if t == normalized {
			return t, nil
		}
	}
	return DefaultTheme(), fmt.Errorf("unknown theme %q", value)
}

// FormatSound returns the persisted form of the sound toggle.
func FormatSound(enabled bool) string {
	return strconv.FormatBool(enabled)
}

// ParseSound accepts only "true" and "false".
func ParseSound(value string) (bool, error) {
	switch strings.TrimSpace(value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return true, fmt.Errorf("invalid sound setting %q", value)
	}
}
