package web

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/ehrlich-b/locky/internal/puzzle"
)

// SolveRequest carries a state either as a scramble algorithm applied
// to the solved state, or as explicit per-face notation rows. Faces,
// when present, takes precedence over Scramble.
type SolveRequest struct {
	Scramble string                   `json:"scramble"`
	Faces    *[puzzle.NumFaces]string `json:"faces,omitempty"`
}

type SolveResponse struct {
	Solution string   `json:"solution"`
	Moves    int      `json:"moves"`
	Stages   []string `json:"stages"`
}

type ScrambleRequest struct {
	Moves int `json:"moves"`
}

type ScrambleResponse struct {
	Scramble string `json:"scramble"`
}

func (s *Server) stateFromRequest(req SolveRequest) (puzzle.State, error) {
	if req.Faces != nil {
		return puzzle.ParseState(*req.Faces)
	}
	algo, err := puzzle.ParseAlgo(req.Scramble)
	if err != nil {
		return puzzle.State{}, err
	}
	return algo.State(), nil
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	state, err := s.stateFromRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.multiStage.Solve(&state)
	if err != nil {
		log.Printf("[%s] solve failed: %v", requestID(r), err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	stages := make([]string, len(result.Stages))
	for i, st := range result.Stages {
		stages[i] = st.String()
	}

	writeJSON(w, SolveResponse{
		Solution: result.Algo.String(),
		Moves:    len(result.Algo),
		Stages:   stages,
	})
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	var req ScrambleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Moves <= 0 {
		req.Moves = 25
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	algo, err := puzzle.Scramble(req.Moves, rng)
	if err != nil {
		log.Printf("[%s] scramble failed: %v", requestID(r), err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, ScrambleResponse{Scramble: algo.String()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
