package resources

import (
	"log/slog"
	"net/http"

	"github.com/safenet-ai/safenet/pkg/handlers"
	"github.com/safenet-ai/safenet/pkg/routes"
)

// Handler provides HTTP endpoints for the support resource directory.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a Handler with the given logger.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger.With("handler", "resources"),
	}
}

// Routes returns the route group definition for resource endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/resources",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
		},
	}
}

// List returns the resource directory for the requested language,
// falling back to English.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, For(r.URL.Query().Get("language")))
}
