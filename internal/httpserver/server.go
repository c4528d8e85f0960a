// internal/httpserver/server.go
//
// HTTP wiring for the Tandem games backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Puzzle endpoints (optional auth): crossword, daily crossword, word search.
//   - Dominoes endpoints (optional auth): mounted under /games/dominoes.
//   - Auth + stats endpoints (require auth): /auth/*, /stats/me.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with user context when a valid token
//     is present; routes still run for guests.

package httpserver

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/tandemapp/go-server/internal/crossword"
	"github.com/tandemapp/go-server/internal/daily"
	"github.com/tandemapp/go-server/internal/puzzles"
	"github.com/tandemapp/go-server/internal/store"
	"github.com/tandemapp/go-server/internal/words"
	"github.com/tandemapp/go-server/internal/wordsearch"
)

// Server bundles router, in-memory game store, puzzle store, and DB handle.
type Server struct {
	r       *chi.Mux
	games   store.GameStore
	puzzles *puzzles.Store
	db      *sql.DB
}

// New constructs a Server, installs middleware, and registers routes.
func New(games store.GameStore, db *sql.DB) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		games:   games,
		puzzles: puzzles.NewStore(db),
		db:      db,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"tandem-go","endpoints":["/health","POST /puzzles/crossword","GET /puzzles/crossword/daily","POST /puzzles/wordsearch","POST /games/dominoes","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Puzzles — OPTIONAL AUTH (guests can generate)
	s.r.With(s.withOptionalAuth()).Post("/puzzles/crossword", s.handleNewCrossword)
	s.r.Get("/puzzles/crossword/daily", s.handleDailyCrossword)
	s.r.Get("/puzzles/crossword/{id}", s.handleGetPuzzle)
	s.r.With(s.withOptionalAuth()).Post("/puzzles/wordsearch", s.handleNewWordSearch)

	// Dominoes — OPTIONAL AUTH
	s.mountDominoes(s.r.With(s.withOptionalAuth()))

	// Auth + stats (require auth)
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	// Debug: word pool counts
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		e, c := words.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"entries": e, "categories": c})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ----------------------------- PUZZLES -------------------------------------

// crosswordReq is the payload for POST /puzzles/crossword.
type crosswordReq struct {
	Difficulty string `json:"difficulty"` // easy | medium | hard
	Category   string `json:"category"`   // optional pool filter
}

// puzzleRes wraps a stored puzzle for the client.
type puzzleRes struct {
	ID         string      `json:"id"`
	Kind       string      `json:"kind"`
	Difficulty string      `json:"difficulty"`
	Puzzle     interface{} `json:"puzzle"`
}

// crosswordBody is the crossword payload persisted and returned.
type crosswordBody struct {
	Size    int                    `json:"size"`
	Letters [][]string             `json:"letters"`
	Words   []crossword.PlacedWord `json:"words"`
}

// handleNewCrossword generates a crossword, persists it, and returns it.
func (s *Server) handleNewCrossword(w http.ResponseWriter, r *http.Request) {
	var req crosswordReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	diff, err := crossword.ParseDifficulty(req.Difficulty)
	if err != nil {
		http.Error(w, `{"error":"unknown difficulty"}`, http.StatusBadRequest)
		return
	}

	pool := words.Entries()
	if req.Category != "" {
		pool = words.ByCategory(req.Category)
	}

	grid, err := crossword.GeneratePuzzle(diff, pool, crossword.Options{})
	if err != nil {
		s.writeGenerateError(w, err)
		return
	}
	s.respondWithPuzzle(w, r, "crossword", diff.String(), crosswordBody{
		Size:    grid.Size,
		Letters: grid.Letters(),
		Words:   grid.Words,
	})
}

// handleDailyCrossword returns the deterministic crossword of the day.
// It is not persisted: the same date always regenerates the same layout.
func (s *Server) handleDailyCrossword(w http.ResponseWriter, r *http.Request) {
	salt := getEnv("DAILY_SALT", "local_dev_salt")
	date := time.Now()
	seed := daily.Seed(date, salt)

	grid, err := crossword.GeneratePuzzle(crossword.Medium, words.Entries(), crossword.Options{Seed: seed})
	if err != nil {
		s.writeGenerateError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(struct {
		Date   string        `json:"date"`
		Puzzle crosswordBody `json:"puzzle"`
	}{
		Date: daily.DateKey(date),
		Puzzle: crosswordBody{
			Size:    grid.Size,
			Letters: grid.Letters(),
			Words:   grid.Words,
		},
	})
}

// handleGetPuzzle fetches a stored puzzle by ID.
func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	rec, err := s.puzzles.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("load puzzle")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(puzzleRes{
		ID:         rec.ID,
		Kind:       rec.Kind,
		Difficulty: rec.Difficulty,
		Puzzle:     json.RawMessage(rec.Payload),
	})
}

// wordsearchBody is the word-search payload persisted and returned.
type wordsearchBody struct {
	Size       int                    `json:"size"`
	Letters    [][]string             `json:"letters"`
	Placements []wordsearch.Placement `json:"placements"`
}

// wordSearchCounts maps difficulty to word-search grid size and word count.
var wordSearchCounts = map[crossword.Difficulty]struct{ Size, WordCount int }{
	crossword.Easy:   {8, 6},
	crossword.Medium: {10, 8},
	crossword.Hard:   {12, 10},
}

// handleNewWordSearch generates a word-search grid, persists it, returns it.
func (s *Server) handleNewWordSearch(w http.ResponseWriter, r *http.Request) {
	var req crosswordReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	diff, err := crossword.ParseDifficulty(req.Difficulty)
	if err != nil {
		http.Error(w, `{"error":"unknown difficulty"}`, http.StatusBadRequest)
		return
	}
	pool := words.Entries()
	if req.Category != "" {
		pool = words.ByCategory(req.Category)
	}
	if len(pool) == 0 {
		http.Error(w, `{"error":"empty word pool"}`, http.StatusBadRequest)
		return
	}

	p := wordSearchCounts[diff]
	grid := wordsearch.Generate(p.Size, p.WordCount, pool, wordsearch.Options{})
	s.respondWithPuzzle(w, r, "wordsearch", diff.String(), wordsearchBody{
		Size:       grid.Size,
		Letters:    grid.Letters(),
		Placements: grid.Placements,
	})
}

// respondWithPuzzle persists a generated puzzle (best effort) and writes it
// to the client with 201.
func (s *Server) respondWithPuzzle(w http.ResponseWriter, r *http.Request, kind, difficulty string, body interface{}) {
	payload, err := json.Marshal(body)
	if err != nil {
		http.Error(w, `{"error":"encode_failed"}`, http.StatusInternalServerError)
		return
	}

	ownerID := ""
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		ownerID = me.ID
	}

	id := genID()
	rec := puzzles.Record{
		ID:         id,
		Kind:       kind,
		Difficulty: difficulty,
		OwnerID:    ownerID,
		Payload:    payload,
		CreatedAt:  time.Now(),
	}
	if err := s.puzzles.Insert(r.Context(), rec); err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("persist puzzle")
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(puzzleRes{
		ID:         id,
		Kind:       kind,
		Difficulty: difficulty,
		Puzzle:     json.RawMessage(payload),
	})
}

// writeGenerateError maps generator failures onto HTTP statuses.
func (s *Server) writeGenerateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, crossword.ErrEmptyPool):
		http.Error(w, `{"error":"empty word pool"}`, http.StatusBadRequest)
	case errors.Is(err, crossword.ErrInsufficientWords):
		http.Error(w, `{"error":"could not generate puzzle"}`, http.StatusUnprocessableEntity)
	default:
		log.Error().Err(err).Msg("generate puzzle")
		http.Error(w, `{"error":"generate_failed"}`, http.StatusInternalServerError)
	}
}

// ------------------------------- small util --------------------------------

// genID creates a compact 16-hex-char crypto-random identifier.
func genID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
