package quote

import (
	"context"
	"errors"
	"testing"
)

type stubProvider struct {
	msg Message
	err error
}

func (p stubProvider) FetchDailyMessage(context.Context) (Message, error) {
	return p.msg, p.err
}

func TestFetch(t *testing.T) {
	good := Message{Hindi: "राधे", English: "Radhe", Author: "Sant"}

	tests := []struct {
		name     string
		provider Provider
		want     Message
	}{
		{name: "success", provider: stubProvider{msg: good}, want: good},
		{name: "error", provider: stubProvider{err: errors.New("unavailable")}, want: Fallback()},
		{name: "no key", provider: stubProvider{err: ErrNoAPIKey}, want: Fallback()},
		{name: "blank author", provider: stubProvider{msg: Message{Hindi: "a", English: "b", Author: " "}}, want: Fallback()},
		{name: "nil provider", provider: nil, want: Fallback()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fetch(context.Background(), tt.provider, nil); got != tt.want {
				t.Fatalf("Fetch = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFallbackIsValid(t *testing.T) {
	f := Fallback()
	if !f.Valid() {
		t.Fatalf("Fallback is not valid: %+v", f)
	}
	if f.English != "The glory of Radha's name is boundless." || f.Author != "Traditional" {
		t.Fatalf("Fallback = %+v", f)
	}
}
