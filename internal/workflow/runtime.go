// Package workflow orchestrates the intake pipeline as a state graph:
// classify the raw message, route to a specialist draft agent when one
// exists, and finalize the combined result.
package workflow

import (
	"log/slog"

	"github.com/legaltender/intake/internal/triage"
)

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed by higher-level composition code from Infrastructure
// and Domain systems.
type Runtime struct {
	Classifier *triage.Classifier
	Dispatcher *triage.Dispatcher
	Controller *triage.Controller
	Logger     *slog.Logger
}
