package api

import (
	"net/http"

	"github.com/legaltender/intake/internal/config"
	"github.com/legaltender/intake/pkg/openapi"
	"github.com/legaltender/intake/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) error {
	routes.Register(
		mux,
		domain.Messages.Handler().Routes(),
	)

	specBytes, err := buildSpec(cfg)
	if err != nil {
		return err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	return nil
}
