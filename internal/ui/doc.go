// Package ui provides the terminal surface for jaap.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns no counter state of its own: every
// key that changes something calls into state.Session and then re-reads its
// Snapshot, so the TUI and the persistence queue always agree.
//
// # Package Structure
//
//   - ui.go: Model, Update loop, message types and Run
//   - keys.go: key bindings and help grouping
//   - counter.go: header, mode switch, total, bead, mala card and footer
//   - quote.go: daily message card
//   - modal.go: reset confirmation dialog
//   - help.go: keyboard shortcut overlay
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//   - layout.go: size and timing constants
//
// # Tap Feedback
//
// A tap highlights the bead for PulseDuration. Each tap bumps a sequence
// number so that only the most recent pulse clears the highlight. Sound and
// vibration cues are played by the feedback dispatcher subscribed to the
// session, never by the view.
//
// # Keyboard Shortcuts
//
//	space/enter  Tap bead
//	m            Mala / unlimited
//	r            Reset (asks first)
//	T            Cycle theme
//	s            Toggle sound
//	h/?          Help
//	q/ctrl+c     Quit
package ui
