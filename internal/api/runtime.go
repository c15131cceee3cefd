package api

import (
	"github.com/legaltender/intake/internal/config"
	"github.com/legaltender/intake/internal/infrastructure"
	"github.com/legaltender/intake/pkg/pagination"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Agent      gaconfig.AgentConfig
	Triage     config.TriageConfig
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
		},
		Agent:      cfg.Agent,
		Triage:     cfg.Triage,
		Pagination: cfg.API.Pagination,
	}
}
