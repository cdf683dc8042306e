// Package api exposes the session over a small JSON HTTP API.
package api

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/five82/jaap/internal/quote"
	"github.com/five82/jaap/internal/state"
)

const resetTokenTTL = 30 * time.Second

// Server holds the handlers' dependencies.
type Server struct {
	session *state.Session
	quotes  *quote.Cache
	log     *slog.Logger
	now     func() time.Time

	mu          sync.Mutex
	resetTokens map[string]time.Time // token -> expiry
}

// NewServer builds a server for session. quotes may be nil.
func NewServer(session *state.Session, quotes *quote.Cache, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if quotes == nil {
		quotes = &quote.Cache{}
	}
	return &Server{
		session:     session,
		quotes:      quotes,
		log:         log,
		now:         time.Now,
		resetTokens: map[string]time.Time{},
	}
}

// NewRouter registers every route.
func (s *Server) NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/state", s.GetStateHandler).Methods("GET")
	api.HandleFunc("/tap", s.TapHandler).Methods("POST")
	api.HandleFunc("/reset", s.RequestResetHandler).Methods("POST")
	api.HandleFunc("/reset/{token}", s.ConfirmResetHandler).Methods("POST")
	api.HandleFunc("/reset/{token}", s.CancelResetHandler).Methods("DELETE")
	api.HandleFunc("/mode", s.SetModeHandler).Methods("PUT")
	api.HandleFunc("/theme/next", s.NextThemeHandler).Methods("POST")
	api.HandleFunc("/theme", s.SetThemeHandler).Methods("PUT")
	api.HandleFunc("/sound", s.SetSoundHandler).Methods("PUT")
	api.HandleFunc("/quote", s.GetQuoteHandler).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		ErrorResponse(w, http.StatusNotFound, "not found")
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.now()
		next.ServeHTTP(w, r)
		s.log.Debug("http request", "method", r.Method, "path", r.URL.Path, "elapsed", s.now().Sub(start))
	})
}
