// internal/httpserver/routes_dominoes.go
//
// HTTP routes for dominoes sessions. Exposes, under /games/dominoes:
//   - POST /                → create a game with named players
//   - GET  /{id}            → player-scoped snapshot (?player=NAME)
//   - POST /{id}/move       → play / draw / pass
//
// Active games live in the in-memory GameStore; when a game ends, a result
// row per registered player is persisted (best effort) for /stats/me.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/tandemapp/go-server/internal/dominoes"
)

// mountDominoes registers all /games/dominoes routes.
func (s *Server) mountDominoes(r chi.Router) {
	r.Route("/games/dominoes", func(r chi.Router) {
		r.Post("/", s.handleNewDominoes)
		r.Get("/{id}", s.handleGetDominoes)
		r.Post("/{id}/move", s.handleDominoesMove)
	})
}

// newDominoesReq is the payload for POST /games/dominoes.
type newDominoesReq struct {
	Players []string `json:"players"`
}

// handleNewDominoes creates and stores a fresh game.
func (s *Server) handleNewDominoes(w http.ResponseWriter, r *http.Request) {
	var req newDominoesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	g, err := dominoes.NewGame(genID(), req.Players, dominoes.Options{})
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.games.Save(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	first := ""
	if len(req.Players) > 0 {
		first = req.Players[0]
	}
	_ = json.NewEncoder(w).Encode(g.Snapshot(first))
}

// handleGetDominoes returns a snapshot scoped to ?player=NAME.
func (s *Server) handleGetDominoes(w http.ResponseWriter, r *http.Request) {
	g, err := s.games.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(g.Snapshot(r.URL.Query().Get("player")))
}

// moveReq is the payload for POST /games/dominoes/{id}/move.
type moveReq struct {
	Player string         `json:"player"`
	Action string         `json:"action"` // play | draw | pass
	Tile   *dominoes.Tile `json:"tile,omitempty"`
	End    string         `json:"end,omitempty"` // left | right
}

// handleDominoesMove applies one action and returns the updated snapshot.
func (s *Server) handleDominoesMove(w http.ResponseWriter, r *http.Request) {
	g, err := s.games.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	var req moveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	switch req.Action {
	case "play":
		if req.Tile == nil {
			http.Error(w, `{"error":"tile required"}`, http.StatusBadRequest)
			return
		}
		err = g.Play(req.Player, *req.Tile, dominoes.End(req.End))
	case "draw":
		_, err = g.Draw(req.Player)
	case "pass":
		err = g.Pass(req.Player)
	default:
		http.Error(w, `{"error":"unknown action"}`, http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, moveStatus(err))
		return
	}

	snap := g.Snapshot(req.Player)
	if snap.State != dominoes.StatePlaying {
		s.recordDominoesResult(r, snap)
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// moveStatus maps rule violations to 409 and everything else to 400.
func moveStatus(err error) int {
	switch {
	case errors.Is(err, dominoes.ErrNotYourTurn),
		errors.Is(err, dominoes.ErrGameOver),
		errors.Is(err, dominoes.ErrMustPlay),
		errors.Is(err, dominoes.ErrMustDraw),
		errors.Is(err, dominoes.ErrBoneyardEmpty):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// recordDominoesResult persists one row for the authenticated user when a
// game finishes. Best effort and non-fatal: guests simply leave no trace.
func (s *Server) recordDominoesResult(r *http.Request, snap dominoes.View) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	if me == nil {
		return
	}
	won := 0
	if snap.State == dominoes.StateWon && snap.Winner == me.Username {
		won = 1
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(r.Context(), `
		INSERT OR IGNORE INTO dominoes_results (game_id, user_id, won, score, created_at)
		VALUES (?,?,?,?,?)`, snap.ID, me.ID, won, snap.Score, now); err != nil {
		log.Warn().Err(err).Str("gameId", snap.ID).Msg("record dominoes result")
	}
}
