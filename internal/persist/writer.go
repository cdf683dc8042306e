package persist

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

const defaultWriteTimeout = 5 * time.Second

// Writer persists values in the background. Each key has one pending slot
// holding its latest value, and a single worker drains the slots, so a
// key's values reach the store in the order they were produced.
type Writer struct {
	adapter      *Adapter
	log          *slog.Logger
	writeTimeout time.Duration

	mu      sync.Mutex
	pending map[string]string
	order   []string
	closed  bool

	// writeMu serializes drain+write so an older value can never land after
	// a newer one for the same key.
	writeMu sync.Mutex

	wake   chan struct{}
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewWriter starts a background writer for adapter.
func NewWriter(adapter *Adapter, log *slog.Logger) *Writer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	w := &Writer{
		adapter:      adapter,
		log:          log,
		writeTimeout: defaultWriteTimeout,
		pending:      map[string]string{},
		wake:         make(chan struct{}, 1),
		stopCh:       make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

// Enqueue records value as the next value for key and wakes the worker.
// It never blocks. Values enqueued after Close are dropped.
func (w *Writer) Enqueue(key, value string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.log.Warn("write dropped after close", "key", key)
		return
	}
	if _, ok := w.pending[key]; !ok {
		w.order = append(w.order, key)
	}
	w.pending[key] = value
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of keys waiting to be written.
func (w *Writer) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// Flush writes everything pending now. Failed writes are logged and
// dropped; the joined errors are returned for callers that care.
func (w *Writer) Flush(ctx context.Context) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	keys, values := w.drain()
	var errs []error
	for i, key := range keys {
		writeCtx, cancel := context.WithTimeout(ctx, w.writeTimeout)
		err := w.adapter.save(writeCtx, key, values[i])
		cancel()
		if err != nil {
			w.log.Warn("storage write failed", "key", key, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close stops the worker and flushes what is left.
func (w *Writer) Close(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.stopCh)
	w.wg.Wait()
	return w.Flush(ctx)
}

func (w *Writer) drain() ([]string, []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.order) == 0 {
		return nil, nil
	}
	keys := w.order
	values := make([]string, len(keys))
	for i, key := range keys {
		values[i] = w.pending[key]
	}
	w.order = nil
	w.pending = map[string]string{}
	return keys, values
}

func (w *Writer) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.wake:
			_ = w.Flush(context.Background())
		case <-w.stopCh:
			return
		}
	}
}
