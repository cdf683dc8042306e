package ui

import "time"

// Layout sizes.
const (
	// ContentWidth caps the width of the counter column.
	ContentWidth = 48

	// ProgressBarWidth is the width of the mala progress bar in cells.
	ProgressBarWidth = 40

	// CompactHeight is the height below which the quote card is hidden.
	CompactHeight = 30
)

// Timing constants.
const (
	// PulseDuration is how long the bead stays highlighted after a tap.
	PulseDuration = 100 * time.Millisecond

	// DefaultRefreshInterval is how often the quote cache is re-read.
	DefaultRefreshInterval = time.Second
)
