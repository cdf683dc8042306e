package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/jaap/internal/prefs"
)

// Theme defines the colors of one visual theme.
type Theme struct {
	Name prefs.Theme

	Primary    string // bead, counts, progress
	Secondary  string // unfilled progress
	Background string
	Text       string
	Accent     string // reset and warnings
	Card       string // quote and cycle cards
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Faint(true),

		PrimaryText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Count: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Bead: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Primary)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(1, 6),

		BeadPulse: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Secondary)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true).
			Padding(1, 6),

		Card: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Card)).
			Foreground(lipgloss.Color(t.Text)).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(t.Primary)).
			Padding(1, 2),

		ModeActive: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Card)).
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true).
			Padding(0, 2),

		ModeInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Faint(true).
			Padding(0, 2),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	PrimaryText lipgloss.Style
	AccentText  lipgloss.Style
	Count       lipgloss.Style

	// Components
	Bead         lipgloss.Style
	BeadPulse    lipgloss.Style
	Card         lipgloss.Style
	ModeActive   lipgloss.Style
	ModeInactive lipgloss.Style
}

// Theme definitions

var themes = map[prefs.Theme]Theme{
	prefs.ThemeSaffron:      saffronTheme(),
	prefs.ThemeDeepBlue:     deepBlueTheme(),
	prefs.ThemeForestGreen:  forestGreenTheme(),
	prefs.ThemeClassicWhite: classicWhiteTheme(),
}

// GetTheme returns a theme by name, falling back to saffron.
func GetTheme(name prefs.Theme) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return saffronTheme()
}

func saffronTheme() Theme {
	return Theme{
		Name:       prefs.ThemeSaffron,
		Primary:    "#FF9933",
		Secondary:  "#FFCC80",
		Background: "#FFF3E0",
		Text:       "#5D4037",
		Accent:     "#E64A19",
		Card:       "#FFFFFF",
	}
}

func deepBlueTheme() Theme {
	return Theme{
		Name:       prefs.ThemeDeepBlue,
		Primary:    "#1A237E",
		Secondary:  "#3949AB",
		Background: "#E8EAF6",
		Text:       "#1A237E",
		Accent:     "#FFD600",
		Card:       "#FFFFFF",
	}
}

func forestGreenTheme() Theme {
	return Theme{
		Name:       prefs.ThemeForestGreen,
		Primary:    "#1B5E20",
		Secondary:  "#43A047",
		Background: "#E8F5E9",
		Text:       "#1B5E20",
		Accent:     "#FFB300",
		Card:       "#FFFFFF",
	}
}

func classicWhiteTheme() Theme {
	return Theme{
		Name:       prefs.ThemeClassicWhite,
		Primary:    "#455A64",
		Secondary:  "#B0BEC5",
		Background: "#F5F7F8",
		Text:       "#263238",
		Accent:     "#CFD8DC",
		Card:       "#FFFFFF",
	}
}
