// Package app is the composition root for jaap.
//
// # Overview
//
// Run and Serve share one bootstrap sequence and differ only in the
// surface they drive:
//
//  1. Load ~/.config/jaap/config.toml (defaults when missing)
//  2. Open the structured log (a file for the TUI, stderr for the server)
//  3. Open the configured storage backend
//  4. Restore the counter and preferences, each key defaulting on its own
//  5. Build the state.Session and subscribe the persistence write queue
//  6. Start the quote refresher
//  7. Run the TUI or the HTTP API until exit
//  8. Close the write queue (final flush) and the store
//
// # Data Flow
//
//	┌──────────────┐   Tap/Reset/SetMode   ┌──────────────┐
//	│ ui / api     │ ────────────────────> │ state.Session│
//	└──────┬───────┘                       └──────┬───────┘
//	       │ Snapshot()                           │ Event
//	       │                          ┌───────────┴──────────┐
//	       │                          v                      v
//	       │                 persist.Writer        feedback.Dispatcher
//	       │                          │                (TUI only)
//	       │                          v
//	       │                   storage.Store
//	       │
//	       └──── quote.Cache <── StartPoller() goroutine
//
// # Quote Refresh
//
// The poller fetches once at startup, then daily. Failures retry with
// exponential backoff from 30s, capped at 15 minutes. A missing API key
// stops the poller; the cache then serves the fallback message.
//
// # Error Handling
//
// Fatal (returned from Run/Serve):
//   - Config file present but unreadable or invalid
//   - Storage backend that cannot be opened
//   - Log file that cannot be created
//   - HTTP listener failure
//
// Everything after startup degrades: unreadable keys default, failed
// writes are logged and dropped, feedback and quote failures are logged.
package app
