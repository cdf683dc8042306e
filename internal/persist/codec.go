package persist

import (
	"encoding/json"
	"fmt"

	"github.com/five82/jaap/internal/counter"
	"github.com/five82/jaap/internal/prefs"
)

// wireState is the stored JSON shape of a counter.State. Pointers let
// DecodeState tell a missing field from a zero one.
type wireState struct {
	TotalCount       *int `json:"totalCount"`
	CurrentMalaCount *int `json:"currentMalaCount"`
	MalasCompleted   *int `json:"malasCompleted"`
}

// EncodeState renders s as stored JSON.
func EncodeState(s counter.State) string {
	total, current, cycles := s.TotalCount, s.CurrentCycleCount, s.CyclesCompleted
	bytes, _ := json.Marshal(wireState{
		TotalCount:       &total,
		CurrentMalaCount: &current,
		MalasCompleted:   &cycles,
	})
	return string(bytes)
}

// DecodeState parses stored JSON. All three fields must be present and the
// result must satisfy the counter invariants.
func DecodeState(value string) (counter.State, error) {
	var w wireState
	if err := json.Unmarshal([]byte(value), &w); err != nil {
		return counter.Zero(), fmt.Errorf("decode state: %w", err)
	}
	if w.TotalCount == nil || w.CurrentMalaCount == nil || w.MalasCompleted == nil {
		return counter.Zero(), fmt.Errorf("decode state: missing field in %q", value)
	}
	s := counter.State{
		TotalCount:        *w.TotalCount,
		CurrentCycleCount: *w.CurrentMalaCount,
		CyclesCompleted:   *w.MalasCompleted,
	}
	if !s.Valid() {
		return counter.Zero(), fmt.Errorf("decode state: out of range %+v", s)
	}
	return s, nil
}

// EncodeTheme returns the stored form of t.
func EncodeTheme(t prefs.Theme) string {
	return string(t)
}

// EncodeMode returns the stored form of m.
func EncodeMode(m counter.Mode) string {
	return m.String()
}

// EncodeSound returns the stored form of the sound toggle.
func EncodeSound(enabled bool) string {
	return prefs.FormatSound(enabled)
}
