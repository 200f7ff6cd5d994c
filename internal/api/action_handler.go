package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/social-spark/internal/action"
	"github.com/phrazzld/social-spark/internal/api/shared"
	"github.com/phrazzld/social-spark/internal/generation"
	"github.com/phrazzld/social-spark/internal/platform/logger"
)

// Actions is the server action layer exposed over HTTP.
type Actions interface {
	GenerateText(ctx context.Context, req generation.Request) action.Result[generation.PostContent]
	GenerateImage(ctx context.Context, req generation.Request) action.Result[generation.ImageResult]
	GenerateDualImage(ctx context.Context, req generation.Request) action.Result[generation.DualImageResult]
}

// ActionHandler serves the stateless generation actions.
type ActionHandler struct {
	actions Actions
	logger  *slog.Logger
}

// NewActionHandler creates an ActionHandler.
func NewActionHandler(actions Actions, logger *slog.Logger) *ActionHandler {
	if actions == nil {
		panic("actions cannot be nil for ActionHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for ActionHandler")
	}
	return &ActionHandler{
		actions: actions,
		logger:  logger.With(slog.String("component", "action_handler")),
	}
}

// GenerateText handles POST /api/actions/generate-text.
func (h *ActionHandler) GenerateText(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	writeResult(w, r, h.actions.GenerateText(r.Context(), req))
}

// GenerateImage handles POST /api/actions/generate-image.
func (h *ActionHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	writeResult(w, r, h.actions.GenerateImage(r.Context(), req))
}

// GenerateDualImage handles POST /api/actions/generate-dual-image.
func (h *ActionHandler) GenerateDualImage(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	writeResult(w, r, h.actions.GenerateDualImage(r.Context(), req))
}

func (h *ActionHandler) decode(w http.ResponseWriter, r *http.Request) (generation.Request, bool) {
	var req generation.Request
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("invalid action request body", "error", err)
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return req, false
	}
	return req, true
}

// writeResult sends a successful result as {"data": ...} and a failed one as
// {"error": ..., "trace_id": ...} with the status of its error kind.
func writeResult[T any](w http.ResponseWriter, r *http.Request, res action.Result[T]) {
	if res.OK() {
		shared.RespondWithJSON(w, r, http.StatusOK, res)
		return
	}
	shared.RespondWithError(w, r, StatusForKind(res.Kind), res.Error)
}
