package persist

import (
	"github.com/five82/jaap/internal/state"
)

// Observer returns a session observer that queues the changed field on w.
func Observer(w *Writer) state.Observer {
	return func(ev state.Event) {
		switch {
		case ev.Change.CounterChanged():
			w.Enqueue(KeyState, EncodeState(ev.Snapshot.Counter))
		case ev.Change == state.ChangeTheme:
			w.Enqueue(KeyTheme, EncodeTheme(ev.Snapshot.Prefs.Theme))
		case ev.Change == state.ChangeMode:
			w.Enqueue(KeyMode, EncodeMode(ev.Snapshot.Prefs.Mode))
		case ev.Change == state.ChangeSound:
			w.Enqueue(KeySound, EncodeSound(ev.Snapshot.Prefs.Sound))
		}
	}
}
