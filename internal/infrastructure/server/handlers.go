package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ayankousky/interest-calculator/internal/domain"
	"github.com/ayankousky/interest-calculator/pkg/interest"
	"go.uber.org/zap"
)

// quoteRequest is the wire form of a quote request. DecimalPlaces is a
// pointer so an absent field can default without making 0 unreachable
type quoteRequest struct {
	Type          string  `json:"type"`
	Principal     float64 `json:"principal"`
	Rate          float64 `json:"rate"`
	Years         float64 `json:"years"`
	Frequency     int     `json:"frequency"`
	DecimalPlaces *int    `json:"decimal_places"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	decimalPlaces := domain.DefaultDecimalPlaces
	if req.DecimalPlaces != nil {
		decimalPlaces = *req.DecimalPlaces
	}

	calc, err := s.calculator.Quote(r.Context(), domain.Request{
		Type:          domain.CalculationType(req.Type),
		Principal:     req.Principal,
		Rate:          req.Rate,
		Years:         req.Years,
		Frequency:     req.Frequency,
		DecimalPlaces: decimalPlaces,
	})
	if err != nil {
		var inputErr *interest.ValidationError
		var domainErr domain.ValidationError
		if errors.As(err, &inputErr) || errors.As(err, &domainErr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		s.logger.Error("Quote handling failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, calc)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	writeJSON(w, http.StatusOK, s.calculator.RecentQuotes(limit))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	writeJSON(w, http.StatusOK, s.calculator.Stats())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
