package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/twophase-go/solver/pkg/twophase"
)

// SolveRequest is the POST /api/solve body, matching spec.md §6's solve
// parameters: a 54-character facelet string, phase-1 search depth, a
// timeout in seconds, and whether to mark the phase boundary in the
// response.
type SolveRequest struct {
	Facelets  string  `json:"facelets"`
	MaxDepth  int     `json:"max_depth"`
	Timeout   float64 `json:"timeout"`
	Separator bool    `json:"separator"`
}

// SolveResponse is the POST /api/solve reply.
type SolveResponse struct {
	Solution   string `json:"solution"`
	Steps      int    `json:"steps"`
	DurationMs int64  `json:"duration_ms"`
	RequestID  string `json:"request_id"`
}

// ErrorResponse is returned, with a non-2xx status, for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	timeout := 10 * time.Second
	if req.Timeout > 0 {
		timeout = time.Duration(req.Timeout * float64(time.Second))
	}

	started := time.Now()
	result, err := twophase.SolveDetailed(r.Context(), req.Facelets, s.tabs, twophase.Options{
		MaxDepth:  req.MaxDepth,
		Timeout:   timeout,
		Separator: req.Separator,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SolveResponse{
		Solution:   result.Solution,
		Steps:      result.Steps,
		DurationMs: time.Since(started).Milliseconds(),
		RequestID:  requestIDFrom(r.Context()),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
