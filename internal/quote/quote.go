// Package quote fetches the daily spiritual message shown beside the
// counter and keeps the latest one for the surfaces.
package quote

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// ErrNoAPIKey is returned when no provider credentials are configured.
var ErrNoAPIKey = errors.New("quote: no API key configured")

// Message is one bilingual quote.
type Message struct {
	Hindi   string `json:"hindi"`
	English string `json:"english"`
	Author  string `json:"author"`
}

// Valid reports whether every field is filled in.
func (m Message) Valid() bool {
	return strings.TrimSpace(m.Hindi) != "" &&
		strings.TrimSpace(m.English) != "" &&
		strings.TrimSpace(m.Author) != ""
}

// Fallback is shown whenever no fetched message is available.
func Fallback() Message {
	return Message{
		Hindi:   "राधा नाम की महिमा अपरंपार है।",
		English: "The glory of Radha's name is boundless.",
		Author:  "Traditional",
	}
}

// Provider produces the daily message. It may fail.
type Provider interface {
	FetchDailyMessage(ctx context.Context) (Message, error)
}

// Fetch asks p for a message and always returns exactly one: the fetched
// message when it is complete, Fallback otherwise.
func Fetch(ctx context.Context, p Provider, log *slog.Logger) Message {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if p == nil {
		return Fallback()
	}
	msg, err := p.FetchDailyMessage(ctx)
	if err != nil {
		log.Warn("quote fetch failed, using fallback", "error", err)
		return Fallback()
	}
	if !msg.Valid() {
		log.Warn("quote incomplete, using fallback")
		return Fallback()
	}
	return msg
}
