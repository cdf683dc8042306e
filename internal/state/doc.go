// Package state owns the live counter and preferences for one process.
//
// # Overview
//
// Session is the single authority for the running counter. Surfaces (the
// terminal UI and the HTTP API) call its transition methods; nothing else
// mutates the counter or the preferences.
//
//	Surface:                 Session:                  Observers:
//	┌──────────────┐        ┌──────────────────┐      ┌────────────────────┐
//	│ key / request │──────→│ counter.RecordTap │─────→│ persist.Observer    │
//	│              │ (mutex)│ prefs update      │      │ feedback dispatcher │
//	└──────────────┘        └──────────────────┘      └────────────────────┘
//
// # Concurrency Model
//
// Every transition runs under one mutex, so overlapping taps are applied
// one after another and none is lost. Observers run while the lock is held
// and therefore see events in exactly the order transitions happened. They
// must hand work off (enqueue) rather than perform I/O.
//
// # Usage Example
//
//	session := state.NewSession(loadedCounter, loadedPrefs)
//	session.Subscribe(persist.Observer(writer))
//	tap := session.Tap()
//	if tap.CycleCompleted {
//		// ring the bell
//	}
package state
