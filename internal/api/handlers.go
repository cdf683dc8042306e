package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/five82/jaap/internal/counter"
	"github.com/five82/jaap/internal/prefs"
	"github.com/five82/jaap/internal/quote"
	"github.com/five82/jaap/internal/state"
)

// StateResponse is the counter and preferences as seen by clients.
type StateResponse struct {
	TotalCount       int    `json:"totalCount"`
	CurrentMalaCount int    `json:"currentMalaCount"`
	MalasCompleted   int    `json:"malasCompleted"`
	CycleTarget      int    `json:"cycleTarget"`
	Mode             string `json:"mode"`
	Theme            string `json:"theme"`
	Sound            bool   `json:"sound"`
}

// TapResponse adds the completion flag to the new state.
type TapResponse struct {
	StateResponse
	CycleCompleted bool `json:"cycleCompleted"`
}

// ResetRequestResponse carries the token that confirms a reset.
type ResetRequestResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Message   string    `json:"message"`
}

// QuoteResponse is the current daily message.
type QuoteResponse struct {
	Hindi   string `json:"hindi"`
	English string `json:"english"`
	Author  string `json:"author"`
	Loading bool   `json:"loading"`
}

func stateResponse(snap state.Snapshot) StateResponse {
	return StateResponse{
		TotalCount:       snap.Counter.TotalCount,
		CurrentMalaCount: snap.Counter.CurrentCycleCount,
		MalasCompleted:   snap.Counter.CyclesCompleted,
		CycleTarget:      counter.CycleTarget,
		Mode:             snap.Prefs.Mode.String(),
		Theme:            string(snap.Prefs.Theme),
		Sound:            snap.Prefs.Sound,
	}
}

// GetStateHandler returns the current counter and preferences.
func (s *Server) GetStateHandler(w http.ResponseWriter, _ *http.Request) {
	JSONResponse(w, http.StatusOK, stateResponse(s.session.Snapshot()))
}

// TapHandler records one tap.
func (s *Server) TapHandler(w http.ResponseWriter, _ *http.Request) {
	tap := s.session.Tap()
	snap := s.session.Snapshot()
	resp := TapResponse{StateResponse: stateResponse(snap), CycleCompleted: tap.CycleCompleted}
	// Later taps may already have landed; report the counter this tap produced.
	resp.TotalCount = tap.State.TotalCount
	resp.CurrentMalaCount = tap.State.CurrentCycleCount
	resp.MalasCompleted = tap.State.CyclesCompleted
	JSONResponse(w, http.StatusOK, resp)
}

// RequestResetHandler issues a short-lived confirmation token.
func (s *Server) RequestResetHandler(w http.ResponseWriter, _ *http.Request) {
	token := uuid.NewString()
	expires := s.now().Add(resetTokenTTL)

	s.mu.Lock()
	s.pruneTokensLocked()
	s.resetTokens[token] = expires
	s.mu.Unlock()

	total := s.session.Snapshot().Counter.TotalCount
	JSONResponse(w, http.StatusAccepted, ResetRequestResponse{
		Token:     token,
		ExpiresAt: expires.UTC(),
		Message:   fmt.Sprintf("This will clear your total count of %d jaaps.", total),
	})
}

// ConfirmResetHandler clears the counter when the token is valid.
func (s *Server) ConfirmResetHandler(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if _, err := uuid.Parse(token); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "malformed reset token")
		return
	}

	s.mu.Lock()
	expires, ok := s.resetTokens[token]
	delete(s.resetTokens, token)
	s.mu.Unlock()

	if !ok {
		ErrorResponse(w, http.StatusNotFound, "unknown reset token")
		return
	}
	if s.now().After(expires) {
		ErrorResponse(w, http.StatusGone, "reset token expired")
		return
	}

	s.session.Reset()
	s.log.Info("counter reset via api")
	JSONResponse(w, http.StatusOK, stateResponse(s.session.Snapshot()))
}

// CancelResetHandler discards a pending reset.
func (s *Server) CancelResetHandler(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	s.mu.Lock()
	_, ok := s.resetTokens[token]
	delete(s.resetTokens, token)
	s.mu.Unlock()

	if !ok {
		ErrorResponse(w, http.StatusNotFound, "unknown reset token")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetModeHandler switches between MALA and UNLIMITED counting.
func (s *Server) SetModeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode string `json:"mode"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	mode, err := counter.ParseMode(req.Mode)
	if err != nil {
		ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	JSONResponse(w, http.StatusOK, stateResponse(s.session.SetMode(mode)))
}

// NextThemeHandler advances to the next theme.
func (s *Server) NextThemeHandler(w http.ResponseWriter, _ *http.Request) {
	s.session.CycleTheme()
	JSONResponse(w, http.StatusOK, stateResponse(s.session.Snapshot()))
}

// SetThemeHandler selects a theme by name.
func (s *Server) SetThemeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	theme, err := prefs.ParseTheme(req.Theme)
	if err != nil {
		ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.session.SetTheme(theme)
	JSONResponse(w, http.StatusOK, stateResponse(s.session.Snapshot()))
}

// SetSoundHandler turns sound cues on or off.
func (s *Server) SetSoundHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Sound *bool `json:"sound"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Sound == nil {
		ErrorResponse(w, http.StatusBadRequest, "sound is required")
		return
	}
	s.session.SetSound(*req.Sound)
	JSONResponse(w, http.StatusOK, stateResponse(s.session.Snapshot()))
}

// GetQuoteHandler returns the daily message, or the fallback while loading.
func (s *Server) GetQuoteHandler(w http.ResponseWriter, _ *http.Request) {
	snap := s.quotes.Snapshot()
	msg := snap.Message
	if !snap.Loaded {
		msg = quote.Fallback()
	}
	JSONResponse(w, http.StatusOK, QuoteResponse{
		Hindi:   msg.Hindi,
		English: msg.English,
		Author:  msg.Author,
		Loading: !snap.Loaded,
	})
}

func (s *Server) pruneTokensLocked() {
	now := s.now()
	for token, expires := range s.resetTokens {
		if now.After(expires) {
			delete(s.resetTokens, token)
		}
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// JSONResponse writes a JSON response.
func JSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// ErrorResponse writes {"error": msg}.
func ErrorResponse(w http.ResponseWriter, status int, msg string) {
	JSONResponse(w, status, map[string]string{"error": msg})
}
