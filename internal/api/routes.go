package api

import (
	"net/http"

	"github.com/safenet-ai/safenet/internal/config"
	"github.com/safenet-ai/safenet/internal/platforms"
	"github.com/safenet-ai/safenet/internal/resources"
	"github.com/safenet-ai/safenet/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		domain.Reports.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Evidence.Handler().Routes(),
		domain.Prompts.Handler().Routes(),
		domain.Chat.Handler().Routes(),
		platforms.NewHandler(runtime.Logger).Routes(),
		resources.NewHandler(runtime.Logger).Routes(),
	)
}
