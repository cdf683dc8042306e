package counter

import (
	"fmt"
	"strings"
)

// Mode selects whether cycle completion is tracked.
type Mode int

const (
	ModeCycle Mode = iota
	ModeUnbounded
)

// Persisted names, shared with the web client's storage format.
const (
	modeCycleName     = "MALA"
	modeUnboundedName = "UNLIMITED"
)

// String returns the persisted name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeUnbounded:
		return modeUnboundedName
	default:
		return modeCycleName
	}
}

// Label returns a short human label.
func (m Mode) Label() string {
	if m == ModeUnbounded {
		return "Unlimited"
	}
	return "Mala (108)"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeUnbounded {
		return ModeCycle
	}
	return ModeUnbounded
}

// ParseMode accepts the persisted names as well as the descriptive aliases
// "cycle" and "unbounded", case-insensitively.
func ParseMode(value string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case modeCycleName, "CYCLE":
		return ModeCycle, nil
	case modeUnboundedName, "UNBOUNDED":
		return ModeUnbounded, nil
	default:
		return ModeCycle, fmt.Errorf("unknown counting mode %q", value)
	}
}
