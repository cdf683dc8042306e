package prefs

import (
	"testing"

	"github.com/five82/jaap/internal/counter"
)

func TestDefault(t *testing.T) {
	p := Default()
	if p.Theme != ThemeSaffron {
		t.Fatalf("Theme = %q, want %q", p.Theme, ThemeSaffron)
	}
	if p.Mode != counter.ModeCycle {
		t.Fatalf("Mode = %v, want %v", p.Mode, counter.ModeCycle)
	}
	if !p.Sound {
		t.Fatalf("Sound = false, want true")
	}
}

func TestNextTheme(t *testing.T) {
	cases := []struct {
		in, want Theme
	}{
		{ThemeSaffron, ThemeDeepBlue},
		{ThemeDeepBlue, ThemeForestGreen},
		{ThemeForestGreen, ThemeClassicWhite},
		{ThemeClassicWhite, ThemeSaffron},
		{Theme("NEON"), ThemeSaffron},
	}
	for _, tc := range cases {
		if got := tc.in.Next(); got != tc.want {
			t.Fatalf("Next(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestThemesReturnsCopy(t *testing.T) {
	themes := Themes()
	if len(themes) != 4 {
		t.Fatalf("Themes() returned %d themes, want 4", len(themes))
	}
	themes[0] = "MUTATED"
	if Themes()[0] != ThemeSaffron {
		t.Fatalf("Themes() should return a copy")
	}
}

func TestParseTheme(t *testing.T) {
	got, err := ParseTheme(" deep_blue ")
	if err != nil || got != ThemeDeepBlue {
		t.Fatalf("ParseTheme = %q, %v; want %q", got, err, ThemeDeepBlue)
	}
	got, err = ParseTheme("neon")
	if err == nil {
		t.Fatalf("ParseTheme(neon) returned nil error")
	}
	if got != ThemeSaffron {
		t.Fatalf("ParseTheme(neon) = %q, want default %q", got, ThemeSaffron)
	}
}

func TestThemeLabel(t *testing.T) {
	if got := ThemeForestGreen.Label(); got != "Forest Green" {
		t.Fatalf("Label = %q, want %q", got, "Forest Green")
	}
}

func TestParseSound(t *testing.T) {
	cases := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"false", false, false},
		{"", true, true},
		{"yes", true, true},
	}
	for _, tc := range cases {
		got, err := ParseSound(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Fatalf("ParseSound(%q) = %v, %v; want %v, err=%v", tc.in, got, err, tc.want, tc.wantErr)
		}
	}
	if FormatSound(false) != "false" || FormatSound(true) != "true" {
		t.Fatalf("FormatSound mismatch")
	}
}
