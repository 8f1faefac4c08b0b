package httpadapter

import (
	"net/http"

	"planwise/internal/core/port"

	"github.com/go-chi/chi/v5"
	"log/slog"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the planner use case to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    port.PlannerUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// PlannerUseCase implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.PlannerUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/conversations", h.handleStartConversation)
		r.Post("/conversations/{id}/messages", h.handleMessage)
		r.Get("/conversations/{id}/brief", h.handleGetBrief)
		r.Get("/plans/{id}", h.handleGetPlan)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
