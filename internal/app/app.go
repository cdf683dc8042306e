package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/five82/jaap/internal/api"
	"github.com/five82/jaap/internal/config"
	"github.com/five82/jaap/internal/feedback"
	"github.com/five82/jaap/internal/persist"
	"github.com/five82/jaap/internal/quote"
	"github.com/five82/jaap/internal/state"
	"github.com/five82/jaap/internal/storage"
	"github.com/five82/jaap/internal/ui"
)

const (
	shutdownTimeout = 5 * time.Second
	openTimeout     = 10 * time.Second
)

// Options configure the jaap application.
type Options struct {
	ConfigPath string
	Backend    string // overrides storage.backend when set
	Listen     string // overrides server.listen when set
}

// runtime is everything both surfaces share.
type runtime struct {
	cfg      config.Config
	log      *slog.Logger
	logFile  io.Closer
	store    storage.Store
	writer   *persist.Writer
	session  *state.Session
	quotes   *quote.Cache
	provider quote.Provider
}

// Run boots the jaap TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := bootstrap(ctx, opts, nil)
	if err != nil {
		return err
	}
	defer rt.close()

	dispatcher := feedback.NewDispatcher(feedback.NewTerminal(rt.cfg.Feedback), rt.log)
	defer dispatcher.Close()
	rt.session.Subscribe(feedback.Observer(dispatcher))

	rt.startQuotes(ctx)

	return ui.Run(ui.Options{
		Session: rt.session,
		Quotes:  rt.quotes,
		Log:     rt.log,
	})
}

// Serve runs the HTTP API until the context is cancelled.
func Serve(ctx context.Context, opts Options) error {
	rt, err := bootstrap(ctx, opts, os.Stderr)
	if err != nil {
		return err
	}
	defer rt.close()

	rt.startQuotes(ctx)

	srv := &http.Server{
		Addr:              rt.cfg.Server.Listen,
		Handler:           api.NewServer(rt.session, rt.quotes, rt.log).NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		rt.log.Info("http api listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http api: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http api: %w", err)
	}
	return nil
}

// PrintQuote fetches one message and writes it to w. The fallback message
// is printed when the provider is disabled, misconfigured or failing.
func PrintQuote(ctx context.Context, opts Options, w io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)}))

	msg := quote.Fetch(ctx, newProvider(cfg.Quote, log), log)
	_, err = fmt.Fprintf(w, "%s\n\n\"%s\"\n\n— %s\n", msg.Hindi, msg.English, msg.Author)
	return err
}

// bootstrap loads config, opens the log and the store, restores the session
// and subscribes the write queue. logOut overrides the configured log file.
func bootstrap(ctx context.Context, opts Options, logOut io.Writer) (*runtime, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg, quotes: &quote.Cache{}}
	if logOut != nil {
		rt.log = newLogger(logOut, cfg.Log.Level)
	} else {
		file, err := openLogFile(cfg.Log.Path)
		if err != nil {
			return nil, err
		}
		rt.logFile = file
		rt.log = newLogger(file, cfg.Log.Level)
	}

	openCtx, cancel := context.WithTimeout(ctx, openTimeout)
	store, err := storage.Open(openCtx, cfg.Storage)
	cancel()
	if err != nil {
		rt.close()
		return nil, fmt.Errorf("open storage: %w", err)
	}
	rt.store = store
	rt.log.Info("storage opened", "store", store.Description())

	adapter := persist.NewAdapter(store, rt.log)
	counterState, userPrefs := adapter.Load(ctx)
	rt.session = state.NewSession(counterState, userPrefs)
	rt.writer = persist.NewWriter(adapter, rt.log)
	rt.session.Subscribe(persist.Observer(rt.writer))

	rt.provider = newProvider(cfg.Quote, rt.log)

	rt.log.Info("session restored",
		"total", counterState.TotalCount,
		"malas", counterState.CyclesCompleted,
		"mode", userPrefs.Mode.String(),
		"theme", string(userPrefs.Theme),
	)
	return rt, nil
}

// newProvider returns nil when quotes are disabled or misconfigured; callers
// then show the fallback message.
func newProvider(cfg config.Quote, log *slog.Logger) quote.Provider {
	if cfg.Disabled {
		return nil
	}
	g, err := quote.NewGemini(cfg)
	if err != nil {
		log.Warn("quote provider unavailable", "error", err)
		return nil
	}
	return g
}

// startQuotes fills the quote cache in the background. Without a provider
// the cache holds the fallback message.
func (rt *runtime) startQuotes(ctx context.Context) {
	if rt.provider == nil {
		rt.quotes.Update(quote.Fallback(), nil)
		return
	}
	StartPoller(ctx, rt.quotes, rt.provider, rt.cfg.Quote.Refresh, rt.log)
}

// close flushes pending writes and releases the store and log file.
func (rt *runtime) close() {
	if rt.writer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := rt.writer.Close(ctx); err != nil {
			rt.log.Warn("final flush failed", "error", err)
		}
		cancel()
	}
	if rt.store != nil {
		if err := rt.store.Close(); err != nil {
			rt.log.Warn("close storage", "error", err)
		}
	}
	if rt.logFile != nil {
		_ = rt.logFile.Close()
	}
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if b := strings.TrimSpace(opts.Backend); b != "" {
		cfg.Storage.Backend = b
		cfg.Storage.Normalize()
	}
	if l := strings.TrimSpace(opts.Listen); l != "" {
		cfg.Server.Listen = l
	}
	return cfg, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

// parseLevel maps a config level name to slog, defaulting to info.
func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}
