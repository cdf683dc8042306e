package feedback

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/five82/jaap/internal/counter"
	"github.com/five82/jaap/internal/state"
)

const queueSize = 32

type cue struct {
	cycleCompleted bool
	sound          bool
}

// Dispatcher plays cues on its own goroutine so taps never wait on audio.
type Dispatcher struct {
	channel Channel
	log     *slog.Logger

	mu     sync.Mutex
	closed bool
	queue  chan cue
	wg     sync.WaitGroup
}

// NewDispatcher starts a dispatcher for channel.
func NewDispatcher(channel Channel, log *slog.Logger) *Dispatcher {
	if channel == nil {
		channel = Nop{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	d := &Dispatcher{
		channel: channel,
		log:     log,
		queue:   make(chan cue, queueSize),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Notify queues the cues for one tap: a vibration always, the tap sound
// when sound is on, and the cycle sound once when the tap finished a mala.
// Notify never blocks; cues are dropped while the queue is full.
func (d *Dispatcher) Notify(tap counter.Tap, soundEnabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	select {
	case d.queue <- cue{cycleCompleted: tap.CycleCompleted, sound: soundEnabled}:
	default:
		d.log.Debug("feedback queue full, dropping cue")
	}
}

// Close stops accepting cues and waits for queued ones to play.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for c := range d.queue {
		d.play(c)
	}
}

func (d *Dispatcher) play(c cue) {
	d.report("vibrate", d.channel.Vibrate(VibrateMillis))
	if !c.sound {
		return
	}
	d.report("tap sound", d.channel.PlayTapSound())
	if c.cycleCompleted {
		d.report("cycle sound", d.channel.PlayCycleCompleteSound())
	}
}

func (d *Dispatcher) report(what string, err error) {
	if err == nil || errors.Is(err, ErrUnsupported) {
		return
	}
	d.log.Debug("feedback failed", "cue", what, "error", err)
}

// Observer returns a session observer that plays cues for every tap.
func Observer(d *Dispatcher) state.Observer {
	return func(ev state.Event) {
		if ev.Change != state.ChangeTap {
			return
		}
		d.Notify(counter.Tap{State: ev.Snapshot.Counter, CycleCompleted: ev.CycleCompleted}, ev.Snapshot.Prefs.Sound)
	}
}
