package web

import (
	"encoding/json"
	"net/http"

	"github.com/ehrlich-b/cubefold/internal/algebra"
	"github.com/ehrlich-b/cubefold/internal/logging"
	"github.com/ehrlich-b/cubefold/internal/optimizer"
	"github.com/ehrlich-b/cubefold/internal/render"
)

type rewriteRequest struct {
	Moves string `json:"moves"`
}

type rewriteResponse struct {
	Moves *string `json:"moves"`
	Cost  int     `json:"cost,omitempty"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	var req rewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	moves, err := algebra.ParseMoves(req.Moves)
	if err != nil {
		logging.Log.Info().Err(err).Str("moves", req.Moves).Msg("web: rewrite parse error")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := optimizer.Solve(r.Context(), moves)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		logging.Log.Info().Err(err).Str("moves", req.Moves).Msg("web: rewrite no solution")
		json.NewEncoder(w).Encode(rewriteResponse{Moves: nil})
		return
	}

	result := render.Format(render.Flatten(entries))
	json.NewEncoder(w).Encode(rewriteResponse{Moves: &result, Cost: optimizer.Cost(entries)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(healthResponse{Status: "ok"})
}
