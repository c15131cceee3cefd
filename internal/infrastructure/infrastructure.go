// Package infrastructure provides core service initialization for application startup.
// It assembles the common dependencies (lifecycle coordination, logging) that
// domain systems require.
package infrastructure

import (
	"log/slog"
	"os"

	"github.com/legaltender/intake/internal/config"
	"github.com/legaltender/intake/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
}

// New creates an Infrastructure from the application configuration.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("env", cfg.Env())

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
	}, nil
}
