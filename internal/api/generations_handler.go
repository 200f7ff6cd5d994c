package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/social-spark/internal/api/shared"
	"github.com/phrazzld/social-spark/internal/platform/logger"
	"github.com/phrazzld/social-spark/internal/store"
)

// GenerationsResponse is the body of GET /api/generations.
type GenerationsResponse struct {
	Generations []*store.GenerationLog `json:"generations"`
}

// GenerationsHandler serves the generation log.
type GenerationsHandler struct {
	logs   store.GenerationLogStore
	logger *slog.Logger
}

// NewGenerationsHandler creates a GenerationsHandler.
func NewGenerationsHandler(logs store.GenerationLogStore, logger *slog.Logger) *GenerationsHandler {
	if logs == nil {
		panic("generation log store cannot be nil for GenerationsHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for GenerationsHandler")
	}
	return &GenerationsHandler{
		logs:   logs,
		logger: logger.With(slog.String("component", "generations_handler")),
	}
}

// ListGenerations handles GET /api/generations?limit=N.
func (h *GenerationsHandler) ListGenerations(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	limit, err := getQueryInt(r, "limit", store.DefaultListLimit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	entries, err := h.logs.ListRecent(r.Context(), limit)
	if err != nil {
		log.Error("failed to list generation log", "error", err)
		HandleAPIError(w, r, err, "Failed to load generation history")
		return
	}

	if entries == nil {
		entries = []*store.GenerationLog{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, GenerationsResponse{Generations: entries})
}
