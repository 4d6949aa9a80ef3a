package platforms

import (
	"log/slog"
	"net/http"

	"github.com/safenet-ai/safenet/pkg/handlers"
	"github.com/safenet-ai/safenet/pkg/routes"
)

// Handler provides HTTP endpoints for the platform catalog.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a Handler with the given logger.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger.With("handler", "platforms"),
	}
}

// Routes returns the route group definition for platform endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/platforms",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
		},
	}
}

type listResponse struct {
	Platforms []Platform `json:"platforms"`
}

// List returns the full platform catalog.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, listResponse{Platforms: All()})
}
