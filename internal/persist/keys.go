// Package persist mirrors the counter and preferences into a storage.Store
// and restores them at startup.
package persist

// Logical storage keys. Backends may namespace them.
const (
	KeyState = "state"
	KeyTheme = "theme"
	KeyMode  = "mode"
	KeySound = "sound"
)
