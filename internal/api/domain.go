package api

import (
	"github.com/legaltender/intake/internal/messages"
	"github.com/legaltender/intake/internal/triage"
	"github.com/legaltender/intake/internal/workflow"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Messages messages.System
}

// NewDomain creates all domain systems from the API runtime. The triage
// components are assembled once and shared through the workflow runtime.
func NewDomain(runtime *Runtime) *Domain {
	generator := triage.NewAgentGenerator(&runtime.Agent)

	rt := &workflow.Runtime{
		Classifier: triage.NewClassifier(generator, runtime.Logger),
		Dispatcher: triage.NewDispatcher(generator),
		Controller: triage.NewController(
			triage.NewScorer(runtime.Triage.QualityThreshold),
			runtime.Triage.GenerateTimeoutDuration(),
			runtime.Logger,
		),
		Logger: runtime.Logger.With("workflow", "triage"),
	}

	messagesSystem := messages.New(
		messages.NewMemoryStore(),
		rt,
		runtime.Logger,
		runtime.Pagination,
		messages.Options{
			MaxAttempts:     runtime.Triage.MaxAttempts,
			BulkMaxAttempts: runtime.Triage.BulkMaxAttempts,
			BulkWorkers:     runtime.Triage.BulkWorkers,
			MaxBatchSize:    runtime.Triage.MaxBatchSize,
		},
	)

	return &Domain{
		Messages: messagesSystem,
	}
}
