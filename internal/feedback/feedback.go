// Package feedback turns tap results into vibration and sound cues.
package feedback

import (
	"errors"
)

// VibrateMillis is the pulse length for every tap.
const VibrateMillis = 40

// ErrUnsupported is returned by channels that lack a capability.
var ErrUnsupported = errors.New("feedback: unsupported on this channel")

// Channel is the host-side output for cues.
type Channel interface {
	Vibrate(ms int) error
	PlayTapSound() error
	PlayCycleCompleteSound() error
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Vibrate(int) error             { return nil }
func (Nop) PlayTapSound() error           { return nil }
func (Nop) PlayCycleCompleteSound() error { return nil }
