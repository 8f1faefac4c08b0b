package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"planwise/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// writeUseCaseError maps port errors onto HTTP status codes. Dataset
// unavailability is a retryable condition, not a client fault.
func (h *Handler) writeUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrConversationNotFound):
		h.writeError(w, http.StatusNotFound, "conversation not found")
	case errors.Is(err, port.ErrTurnSuperseded):
		h.writeError(w, http.StatusConflict, "a newer message superseded this turn")
	case errors.Is(err, port.ErrNotReady):
		w.Header().Set("Retry-After", "5")
		h.writeError(w, http.StatusServiceUnavailable, "reference data is not ready yet")
	default:
		h.logger.Error("request failed", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
