package quote

import (
	"fmt"
	"sync"
	"time"
)

// Snapshot is what surfaces render.
type Snapshot struct {
	Message             Message
	Loaded              bool // false until the first fetch attempt finishes
	Fetched             bool // true once a real message replaced the fallback
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// Cache holds the latest message for concurrent readers.
type Cache struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the outcome of one fetch. A failed fetch keeps a
// previously fetched message and falls back only when there is none.
func (c *Cache) Update(msg Message, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot.Loaded = true
	c.snapshot.LastUpdated = time.Now()

	if err == nil && !msg.Valid() {
		err = fmt.Errorf("incomplete message")
	}
	if err != nil {
		c.snapshot.LastError = err
		c.snapshot.ConsecutiveFailures++
		if !c.snapshot.Fetched {
			c.snapshot.Message = Fallback()
		}
		return
	}

	c.snapshot.Message = msg
	c.snapshot.Fetched = true
	c.snapshot.LastError = nil
	c.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current state.
func (c *Cache) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := c.snapshot
	if c.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", c.snapshot.LastError)
	}
	return snap
}
