// Package counter implements the jaap tap-to-count state machine.
// Every function here is pure: no I/O, no clocks, no hidden state.
package counter

// CycleTarget is the number of taps in one mala.
const CycleTarget = 108

// State is the complete counter value. Transitions always return a new
// State; nothing mutates one in place.
type State struct {
	TotalCount        int
	CurrentCycleCount int
	CyclesCompleted   int
}

// Tap is the result of recording a single tap.
type Tap struct {
	State State
	// CycleCompleted is true only on the tap that wrapped the current cycle.
	CycleCompleted bool
}

// Zero returns the initial state.
func Zero() State {
	return State{}
}

// Valid reports whether s satisfies the counter invariants.
func (s State) Valid() bool {
	return s.TotalCount >= 0 &&
		s.CyclesCompleted >= 0 &&
		s.CurrentCycleCount >= 0 &&
		s.CurrentCycleCount < CycleTarget
}

// Progress returns how far the current cycle has advanced, in [0, 1).
func (s State) Progress() float64 {
	return float64(s.CurrentCycleCount) / float64(CycleTarget)
}

// RecordTap applies one tap. In ModeUnbounded only the total advances; in
// ModeCycle the current cycle advances and wraps once it reaches
// CycleTarget.
func RecordTap(s State, mode Mode) Tap {
	next := s
	next.TotalCount++

	if mode != ModeCycle {
		return Tap{State: next}
	}

	next.CurrentCycleCount++
	if next.CurrentCycleCount >= CycleTarget {
		next.CyclesCompleted++
		next.CurrentCycleCount = 0
		return Tap{State: next, CycleCompleted: true}
	}
	return Tap{State: next}
}

// Reset discards s and returns the zero state.
func Reset(State) State {
	return Zero()
}

// SwitchMode returns s unchanged. Mode only decides how future taps are
// interpreted; the cycle fields resume from where they were left.
func SwitchMode(s State, _ Mode) State {
	return s
}
