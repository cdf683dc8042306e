package state

import (
	"sync"

	"github.com/five82/jaap/internal/counter"
	"github.com/five82/jaap/internal/prefs"
)

// Change names the field a transition touched.
type Change int

const (
	ChangeTap Change = iota + 1
	ChangeReset
	ChangeTheme
	ChangeMode
	ChangeSound
)

func (c Change) String() string {
	switch c {
	case ChangeTap:
		return "tap"
	case ChangeReset:
		return "reset"
	case ChangeTheme:
		return "theme"
	case ChangeMode:
		return "mode"
	case ChangeSound:
		return "sound"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of everything the session owns.
type Snapshot struct {
	Counter counter.State
	Prefs   prefs.Prefs
}

// CounterChanged reports whether c altered the counter value.
func (c Change) CounterChanged() bool {
	return c == ChangeTap || c == ChangeReset
}

// Event describes one applied transition.
type Event struct {
	Change   Change
	Snapshot Snapshot
	// CycleCompleted is set on the tap that finished a mala.
	CycleCompleted bool
}

// Observer is called after every transition while the session lock is held,
// so events arrive in transition order. Observers must not block or call
// back into the session.
type Observer func(Event)

// Session holds the authoritative counter and preferences for one process.
type Session struct {
	mu        sync.Mutex
	counter   counter.State
	prefs     prefs.Prefs
	observers []Observer
}

// NewSession seeds a session with previously loaded values.
func NewSession(c counter.State, p prefs.Prefs) *Session {
	return &Session{counter: c, prefs: p}
}

// Subscribe registers o for all subsequent transitions.
func (s *Session) Subscribe(o Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// Snapshot returns the current values.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Tap records one tap in the active mode.
func (s *Session) Tap() counter.Tap {
	s.mu.Lock()
	defer s.mu.Unlock()

	tap := counter.RecordTap(s.counter, s.prefs.Mode)
	s.counter = tap.State
	s.notifyLocked(Event{Change: ChangeTap, CycleCompleted: tap.CycleCompleted})
	return tap
}

// Reset clears the counter. Preferences are untouched.
func (s *Session) Reset() counter.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter = counter.Reset(s.counter)
	s.notifyLocked(Event{Change: ChangeReset})
	return s.counter
}

// SetMode switches the counting mode. The counter itself is carried over.
func (s *Session) SetMode(m counter.Mode) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter = counter.SwitchMode(s.counter, m)
	s.prefs.Mode = m
	s.notifyLocked(Event{Change: ChangeMode})
	return s.snapshotLocked()
}

// ToggleMode flips between mala and unlimited counting.
func (s *Session) ToggleMode() counter.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.prefs.Mode.Toggle()
	s.counter = counter.SwitchMode(s.counter, next)
	s.prefs.Mode = next
	s.notifyLocked(Event{Change: ChangeMode})
	return next
}

// CycleTheme advances to the next theme, wrapping after the last.
func (s *Session) CycleTheme() prefs.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs.Theme = s.prefs.Theme.Next()
	s.notifyLocked(Event{Change: ChangeTheme})
	return s.prefs.Theme
}

// SetTheme selects t directly.
func (s *Session) SetTheme(t prefs.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs.Theme = t
	s.notifyLocked(Event{Change: ChangeTheme})
}

// ToggleSound flips the sound preference and returns the new value.
func (s *Session) ToggleSound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs.Sound = !s.prefs.Sound
	s.notifyLocked(Event{Change: ChangeSound})
	return s.prefs.Sound
}

// SetSound sets the sound preference.
func (s *Session) SetSound(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs.Sound = enabled
	s.notifyLocked(Event{Change: ChangeSound})
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{Counter: s.counter, Prefs: s.prefs}
}

func (s *Session) notifyLocked(ev Event) {
	ev.Snapshot = s.snapshotLocked()
	for _, o := range s.observers {
		o(ev)
	}
}
