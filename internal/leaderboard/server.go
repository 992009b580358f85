package leaderboard

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/registry"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/storage"
)

// Server exposes the leaderboard over HTTP, backed by the same SQLite store
// the local arcade uses. Submissions are deduplicated by their client ID so
// a retried POST after a dropped response never double-counts.
type Server struct {
	store  *storage.Store
	apiKey string
	logger *log.Logger

	mu   sync.Mutex
	seen map[string]SubmitResponse // Submission ID -> original response
}

// NewServer creates a leaderboard server. An empty apiKey disables auth.
func NewServer(store *storage.Store, apiKey string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:  store,
		apiKey: apiKey,
		logger: logger,
		seen:   make(map[string]SubmitResponse),
	}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Heartbeat("/health"))
	r.Use(s.requestLogger)

	r.Route("/api/leaderboard", func(r chi.Router) {
		r.Use(s.auth)
		r.Get("/", s.handleTop)
		r.Post("/", s.handleSubmit)
	})

	return r
}

// requestLogger logs each request through the structured logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// auth rejects requests without the configured API key.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey != "" && r.Header.Get(apiKeyHeader) != s.apiKey {
			s.writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleTop serves GET /api/leaderboard?game=ID.
func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	game := r.URL.Query().Get("game")
	if game == "" {
		s.writeError(w, http.StatusBadRequest, "missing_game", "query parameter 'game' is required")
		return
	}
	if !registry.Exists(game) {
		s.writeError(w, http.StatusNotFound, "unknown_game", "no such game: "+game)
		return
	}

	rows, err := s.store.TopScores(game, TopLimit)
	if err != nil {
		s.logger.Error("top query failed", "game", game, "err", err)
		s.writeError(w, http.StatusInternalServerError, "storage_error", "could not read scores")
		return
	}

	resp := TopResponse{Game: game, Entries: make([]Entry, 0, len(rows))}
	for i, row := range rows {
		resp.Entries = append(resp.Entries, Entry{
			Rank:      i + 1,
			Player:    row.Player,
			Score:     row.Score,
			CreatedAt: row.CreatedAt,
		})
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// handleSubmit serves POST /api/leaderboard.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		s.writeError(w, http.StatusBadRequest, "bad_json", "could not parse submission")
		return
	}

	if sub.SubmissionID == "" {
		s.writeError(w, http.StatusBadRequest, "missing_submission_id", "submission_id is required")
		return
	}
	if !registry.Exists(sub.Game) {
		s.writeError(w, http.StatusNotFound, "unknown_game", "no such game: "+sub.Game)
		return
	}
	if err := ValidateName(sub.Name); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, "invalid_name", err.Error())
		return
	}
	if sub.Score < 0 {
		s.writeError(w, http.StatusUnprocessableEntity, "invalid_score", "score must not be negative")
		return
	}

	// Replay of an already-accepted submission returns the original answer.
	s.mu.Lock()
	if prev, ok := s.seen[sub.SubmissionID]; ok {
		s.mu.Unlock()
		s.writeJSON(w, http.StatusOK, prev)
		return
	}
	s.mu.Unlock()

	if _, err := s.store.SaveScore(sub.Game, sub.Name, sub.Score); err != nil {
		s.logger.Error("save failed", "game", sub.Game, "err", err)
		s.writeError(w, http.StatusInternalServerError, "storage_error", "could not save score")
		return
	}

	resp := SubmitResponse{Accepted: true, Rank: s.rankOf(sub.Game, sub.Score)}

	s.mu.Lock()
	s.seen[sub.SubmissionID] = resp
	s.mu.Unlock()

	s.logger.Info("score accepted",
		"game", sub.Game, "player", sub.Name, "score", sub.Score, "rank", resp.Rank)

	s.writeJSON(w, http.StatusCreated, resp)
}

// rankOf returns the 1-based position of a score in the top table, or 0 when
// it fell outside the published window.
func (s *Server) rankOf(game string, score int) int {
	rows, err := s.store.TopScores(game, TopLimit)
	if err != nil {
		return 0
	}
	for i, row := range rows {
		if row.Score <= score {
			return i + 1
		}
	}
	return 0
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	var payload errorPayload
	payload.Error.Code = code
	payload.Error.Message = message
	s.writeJSON(w, status, payload)
}
