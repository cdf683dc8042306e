package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/five82/jaap/internal/quote"
)

const (
	defaultRefreshInterval = 24 * time.Hour
	retryBase              = 30 * time.Second
	maxBackoff             = 15 * time.Minute
)

// StartPoller launches a background goroutine that keeps cache filled with
// the daily message. Failures are retried with exponential backoff; a
// missing API key stops the poller after the first attempt since retrying
// cannot help. It returns immediately.
func StartPoller(ctx context.Context, cache *quote.Cache, provider quote.Provider, interval time.Duration, log *slog.Logger) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	go func() {
		for {
			err := refresh(ctx, cache, provider, log)
			if errors.Is(err, quote.ErrNoAPIKey) {
				log.Info("quote provider has no API key, showing fallback message")
				return
			}

			wait := interval
			if err != nil {
				wait = calculateBackoff(cache.Snapshot().ConsecutiveFailures-1, retryBase)
			}

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

func refresh(ctx context.Context, cache *quote.Cache, provider quote.Provider, log *slog.Logger) error {
	msg, err := provider.FetchDailyMessage(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	cache.Update(msg, err)
	if err != nil {
		log.Warn("quote poll failed", "error", err)
		return err
	}
	log.Debug("quote refreshed", "author", msg.Author)
	return nil
}

// calculateBackoff doubles base for every failure beyond the first and caps
// the result at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
