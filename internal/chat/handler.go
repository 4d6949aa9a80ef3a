package chat

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/safenet-ai/safenet/pkg/handlers"
	"github.com/safenet-ai/safenet/pkg/routes"
)

// Handler provides HTTP endpoints for chat operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "chat"),
	}
}

// Routes returns the route group definition for chat endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/chat",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Send},
		},
	}
}

// Send processes a JSON chat request and returns the counselor's reply.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	resp, err := h.sys.Send(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
