package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/jaap/internal/counter"
	"github.com/five82/jaap/internal/prefs"
	"github.com/five82/jaap/internal/quote"
	"github.com/five82/jaap/internal/state"
)

func newTestModel(c counter.State, p prefs.Prefs) (Model, *state.Session) {
	session := state.NewSession(c, p)
	m := New(Options{Session: session, Quotes: &quote.Cache{}})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return next.(Model), session
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestTapKeysRecordTaps(t *testing.T) {
	m, session := newTestModel(counter.Zero(), prefs.Default())

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd == nil {
		t.Fatal("expected pulse command after tap")
	}
	if !m.pulsing {
		t.Fatal("pulsing = false, want true")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := session.Snapshot().Counter.TotalCount; got != 2 {
		t.Fatalf("TotalCount = %d, want 2", got)
	}
	if got := m.snapshot.Counter.CurrentCycleCount; got != 2 {
		t.Fatalf("CurrentCycleCount = %d, want 2", got)
	}
}

func TestPulseEndsOnlyForLatestTap(t *testing.T) {
	m, _ := newTestModel(counter.Zero(), prefs.Default())

	m, _ = press(t, m, runeKey(' '))
	m, _ = press(t, m, runeKey(' '))

	m, _ = press(t, m, pulseEndMsg(1))
	if !m.pulsing {
		t.Fatal("stale pulse cleared the highlight")
	}
	m, _ = press(t, m, pulseEndMsg(2))
	if m.pulsing {
		t.Fatal("pulsing = true after latest pulse ended")
	}
}

func TestTapCompletingMalaMarksCycle(t *testing.T) {
	start := counter.State{TotalCount: 215, CurrentCycleCount: 107, CyclesCompleted: 1}
	m, _ := newTestModel(start, prefs.Default())

	m, _ = press(t, m, runeKey(' '))

	want := counter.State{TotalCount: 216, CurrentCycleCount: 0, CyclesCompleted: 2}
	if m.snapshot.Counter != want {
		t.Fatalf("Counter = %+v, want %+v", m.snapshot.Counter, want)
	}
	if !m.cycleCompleted {
		t.Fatal("cycleCompleted = false, want true")
	}
	if view := m.View(); !strings.Contains(view, "॥ माला पूर्ण ॥") {
		t.Fatal("view missing mala complete banner")
	}

	m, _ = press(t, m, runeKey(' '))
	if m.cycleCompleted {
		t.Fatal("cycleCompleted should clear on the next tap")
	}
}

func TestToggleModeKeepsCounter(t *testing.T) {
	start := counter.State{TotalCount: 120, CurrentCycleCount: 12, CyclesCompleted: 1}
	m, session := newTestModel(start, prefs.Default())

	m, _ = press(t, m, runeKey('m'))
	if got := session.Snapshot().Prefs.Mode; got != counter.ModeUnbounded {
		t.Fatalf("Mode = %v, want %v", got, counter.ModeUnbounded)
	}
	if m.snapshot.Counter != start {
		t.Fatalf("Counter = %+v, want %+v", m.snapshot.Counter, start)
	}

	view := m.View()
	if !strings.Contains(view, counter.ModeUnbounded.Label()) {
		t.Fatal("header missing unlimited mode label")
	}
	if !strings.Contains(view, "अनंत जाप") {
		t.Fatal("unlimited view missing total label")
	}
	if strings.Contains(view, "वर्तमान माला") {
		t.Fatal("unlimited view should hide the mala card")
	}

	m, _ = press(t, m, runeKey(' '))
	if got := m.snapshot.Counter; got.TotalCount != 121 || got.CurrentCycleCount != 12 {
		t.Fatalf("unlimited tap = %+v, want total 121 and cycle 12", got)
	}
}

func TestThemeAndSoundKeys(t *testing.T) {
	m, session := newTestModel(counter.Zero(), prefs.Default())

	m, _ = press(t, m, runeKey('T'))
	if got := session.Snapshot().Prefs.Theme; got != prefs.ThemeDeepBlue {
		t.Fatalf("Theme = %q, want %q", got, prefs.ThemeDeepBlue)
	}
	m, _ = press(t, m, runeKey('s'))
	if m.snapshot.Prefs.Sound {
		t.Fatal("Sound = true after toggle, want false")
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	start := counter.State{TotalCount: 500, CurrentCycleCount: 68, CyclesCompleted: 4}
	m, session := newTestModel(start, prefs.Default())

	m, _ = press(t, m, runeKey('r'))
	if m.modal == nil {
		t.Fatal("expected reset modal")
	}
	if view := m.View(); !strings.Contains(view, "500 jaaps") {
		t.Fatal("modal missing total count")
	}

	// Taps are ignored while the modal is open.
	m, _ = press(t, m, runeKey(' '))
	if got := session.Snapshot().Counter; got != start {
		t.Fatalf("Counter changed behind modal: %+v", got)
	}

	m, cmd := press(t, m, runeKey('y'))
	if m.modal != nil {
		t.Fatal("modal should close on confirm")
	}
	if cmd == nil {
		t.Fatal("expected reset command")
	}
	m, _ = press(t, m, cmd())

	if got := session.Snapshot().Counter; got != counter.Zero() {
		t.Fatalf("Counter = %+v, want zero", got)
	}
	if m.snapshot.Counter != counter.Zero() {
		t.Fatalf("model Counter = %+v, want zero", m.snapshot.Counter)
	}
}

func TestResetCancelKeepsCounter(t *testing.T) {
	start := counter.State{TotalCount: 9, CurrentCycleCount: 9}

	for _, k := range []tea.KeyMsg{runeKey('n'), {Type: tea.KeyEsc}} {
		m, session := newTestModel(start, prefs.Default())
		m, _ = press(t, m, runeKey('r'))
		m, cmd := press(t, m, k)
		if m.modal != nil {
			t.Fatalf("modal still open after %q", k.String())
		}
		if cmd != nil {
			t.Fatalf("cancel %q returned a command", k.String())
		}
		if got := session.Snapshot().Counter; got != start {
			t.Fatalf("Counter = %+v, want %+v", got, start)
		}
	}
}

func TestHelpOverlay(t *testing.T) {
	m, session := newTestModel(counter.Zero(), prefs.Default())

	m, _ = press(t, m, runeKey('?'))
	if !m.showHelp {
		t.Fatal("showHelp = false, want true")
	}
	if view := m.View(); !strings.Contains(view, "Keyboard Shortcuts") {
		t.Fatal("help view missing title")
	}

	// Any key closes help without acting.
	m, _ = press(t, m, runeKey(' '))
	if m.showHelp {
		t.Fatal("help should close on any key")
	}
	if got := session.Snapshot().Counter.TotalCount; got != 0 {
		t.Fatalf("TotalCount = %d, want 0", got)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(counter.Zero(), prefs.Default())
	_, cmd := press(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("cmd() = %T, want tea.QuitMsg", cmd())
	}
}

func TestTickRefreshesQuote(t *testing.T) {
	session := state.NewSession(counter.Zero(), prefs.Default())
	cache := &quote.Cache{}
	m := New(Options{Session: session, Quotes: cache})
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})

	if m.quote.Loaded {
		t.Fatal("quote loaded before any fetch")
	}
	msg := quote.Message{Hindi: "राधे राधे", English: "Radhe Radhe", Author: "Test"}
	cache.Update(msg, nil)

	m, cmd := press(t, m, tickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if m.quote.Message != msg {
		t.Fatalf("quote = %+v, want %+v", m.quote.Message, msg)
	}
	if view := m.View(); !strings.Contains(view, "Radhe") {
		t.Fatal("view missing quote text")
	}
}

func TestViewBeforeResize(t *testing.T) {
	session := state.NewSession(counter.Zero(), prefs.Default())
	m := New(Options{Session: session})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View = %q, want Loading...", got)
	}
}

func TestMainViewShowsCounts(t *testing.T) {
	start := counter.State{TotalCount: 12345, CurrentCycleCount: 33, CyclesCompleted: 114}
	m, _ := newTestModel(start, prefs.Default())

	view := m.View()
	for _, want := range []string{"12,345", "33 / 108", "114", "राधा", "१०८ जाप = १ माला", "Mala (108)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRenderProgressBar(t *testing.T) {
	theme := GetTheme(prefs.ThemeSaffron)
	styles := theme.Styles()
	bg := NewBgStyle(theme.Background)

	cases := []struct {
		name     string
		fraction float64
		filled   int
	}{
		{"empty", 0, 0},
		{"half", 0.5, 5},
		{"full", 1, 10},
		{"over", 1.5, 10},
		{"negative", -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := renderProgressBar(tc.fraction, 10, styles, bg)
			if got := strings.Count(out, "█"); got != tc.filled {
				t.Fatalf("filled = %d, want %d", got, tc.filled)
			}
			if got := strings.Count(out, "░"); got != 10-tc.filled {
				t.Fatalf("empty = %d, want %d", got, 10-tc.filled)
			}
		})
	}
}
