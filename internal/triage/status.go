package triage

import (
	"context"
	"fmt"

	"github.com/legaltender/intake/internal/prompts"
)

// StatusAgent drafts case status update responses. Beyond the draft body
// it produces a recommended next action for the paralegal handling the case.
type StatusAgent struct {
	gen Generator
}

// NewStatusAgent creates the status inquiry specialist.
func NewStatusAgent(gen Generator) *StatusAgent {
	return &StatusAgent{gen: gen}
}

func (a *StatusAgent) Name() string { return "status_agent" }

func (a *StatusAgent) Task() TaskType { return TaskStatusUpdate }

func (a *StatusAgent) CriticalFields() []string {
	return []string{"client_name"}
}

func (a *StatusAgent) Generate(ctx context.Context, text string, feedback []string) (*DraftResult, error) {
	return generate(ctx, a.gen, prompts.StageStatus, text, feedback)
}

// Validate requires a client name, a case reference or client identity,
// and a substantial body.
func (a *StatusAgent) Validate(result *DraftResult) []string {
	var findings []string

	if !fieldPresent(result.Field("client_name")) {
		findings = append(findings, "client name not found")
	}

	if len(result.Body) < minBodyLength {
		findings = append(findings, fmt.Sprintf("response too brief (%d chars)", len(result.Body)))
	}

	return findings
}
