package server

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"time"

	"github.com/agbru/factorbench/internal/factor"
)

// maxRequestDigits bounds the size of the number accepted over the API.
// Factoring is superpolynomial in the input size; without a bound a single
// request could pin a worker indefinitely even with the request timeout.
const maxRequestDigits = 30

// factorResponse is the JSON body of a successful /api/v1/factor call. The
// field names mirror the comparison report's detailed entries.
type factorResponse struct {
	Number       json.Number   `json:"number"`
	Algorithm    string        `json:"algorithm"`
	Factors      []json.Number `json:"factors"`
	TimeSeconds  float64       `json:"time_seconds"`
	Success      bool          `json:"success"`
	ProductCheck bool          `json:"product_check"`
	Error        string        `json:"error,omitempty"`
}

// errorResponse is the JSON body of a failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// handleFactor factors the number given by the 'n' query parameter with the
// algorithm named by 'algo' (default trial_division), and returns the
// result record as JSON. The invocation goes through the benchmark runner,
// so panics and errors surface as failed results, never as 500s.
func (s *Server) handleFactor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	nStr := r.URL.Query().Get("n")
	if nStr == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'n' parameter")
		return
	}
	if len(nStr) > maxRequestDigits {
		s.writeError(w, http.StatusBadRequest, "'n' exceeds the accepted size")
		return
	}
	n, ok := new(big.Int).SetString(nStr, 10)
	if !ok || n.Sign() < 0 {
		s.writeError(w, http.StatusBadRequest, "'n' must be a non-negative integer")
		return
	}

	key := r.URL.Query().Get("algo")
	if key == "" {
		key = factor.KeyTrialDivision
	}
	algo, err := s.registry.Get(key)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	res := s.runner.Run(ctx, algo, n, s.opts)
	resp := factorResponse{
		Number:       json.Number(res.Number.String()),
		Algorithm:    res.Algorithm,
		Factors:      make([]json.Number, len(res.Factors)),
		TimeSeconds:  res.TimeSeconds(),
		Success:      res.Success,
		ProductCheck: res.VerifyFactors(),
	}
	for i, f := range res.Factors {
		resp.Factors[i] = json.Number(f.String())
	}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleAlgorithms returns the registered algorithm keys in execution order.
func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"algorithms": s.registry.Keys()})
}

// handleHealth responds to health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("writing response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}
