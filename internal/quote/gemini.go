package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/jaap/internal/config"
)

const (
	defaultUserAgent = "jaap/0.1"
	defaultTimeout   = 10 * time.Second
	prompt           = "Generate a short, beautiful spiritual message or quote about Radha Rani and the power of chanting 'Radha' in both Hindi and English. Keep it brief and inspiring."
)

// Ensure Gemini implements Provider at compile time.
var _ Provider = (*Gemini)(nil)

// Gemini asks the Gemini generateContent API for a structured message.
type Gemini struct {
	endpoint  *url.URL
	model     string
	apiKey    string
	http      *http.Client
	userAgent string
}

// NewGemini builds a client from the quote config.
func NewGemini(cfg config.Quote) (*Gemini, error) {
	endpoint, err := url.Parse(strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/"))
	if err != nil {
		return nil, fmt.Errorf("parse quote endpoint: %w", err)
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, fmt.Errorf("quote endpoint %q must be an absolute URL", cfg.Endpoint)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Gemini{
		endpoint:  endpoint,
		model:     cfg.Model,
		apiKey:    cfg.APIKey,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
	ResponseSchema   schema `json:"responseSchema"`
}

type schema struct {
	Type       string            `json:"type"`
	Properties map[string]schema `json:"properties,omitempty"`
	Required   []string          `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func messageRequest() generateRequest {
	str := schema{Type: "STRING"}
	return generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: schema{
				Type:       "OBJECT",
				Properties: map[string]schema{"hindi": str, "english": str, "author": str},
				Required:   []string{"hindi", "english", "author"},
			},
		},
	}
}

// FetchDailyMessage requests one message.
func (g *Gemini) FetchDailyMessage(ctx context.Context) (Message, error) {
	if g == nil {
		return Message{}, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(g.apiKey) == "" {
		return Message{}, ErrNoAPIKey
	}

	body, err := json.Marshal(messageRequest())
	if err != nil {
		return Message{}, fmt.Errorf("encode request: %w", err)
	}
	reqURL := g.endpoint.String() + "/models/" + url.PathEscape(g.model) + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return Message{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return Message{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return Message{}, fmt.Errorf("quote api returned status %d", resp.StatusCode)
	}

	var payload generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Message{}, fmt.Errorf("decode response: %w", err)
	}
	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return Message{}, fmt.Errorf("quote api returned no candidates")
	}

	var msg Message
	if err := json.Unmarshal([]byte(payload.Candidates[0].Content.Parts[0].Text), &msg); err != nil {
		return Message{}, fmt.Errorf("decode message: %w", err)
	}
	if !msg.Valid() {
		return Message{}, fmt.Errorf("quote api returned an incomplete message")
	}
	return msg, nil
}
