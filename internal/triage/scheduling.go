package triage

import (
	"context"
	"fmt"

	"github.com/legaltender/intake/internal/prompts"
)

// SchedulingAgent drafts responses to appointment requests.
type SchedulingAgent struct {
	gen Generator
}

// NewSchedulingAgent creates the scheduling specialist.
func NewSchedulingAgent(gen Generator) *SchedulingAgent {
	return &SchedulingAgent{gen: gen}
}

func (a *SchedulingAgent) Name() string { return "scheduling_agent" }

func (a *SchedulingAgent) Task() TaskType { return TaskScheduling }

func (a *SchedulingAgent) CriticalFields() []string {
	return []string{"client_name"}
}

func (a *SchedulingAgent) Generate(ctx context.Context, text string, feedback []string) (*DraftResult, error) {
	return generate(ctx, a.gen, prompts.StageScheduling, text, feedback)
}

// Validate requires a client name and at least one scheduling detail:
// a requested date, a requested time, or a meeting type.
func (a *SchedulingAgent) Validate(result *DraftResult) []string {
	var findings []string

	if !fieldPresent(result.Field("client_name")) {
		findings = append(findings, "client name not found")
	}

	hasDate := fieldPresent(result.Field("requested_date"))
	hasTime := fieldPresent(result.Field("requested_time"))
	hasType := fieldPresent(result.Field("meeting_type"))

	if !hasDate && !hasTime && !hasType {
		findings = append(findings, "no scheduling information found")
	}

	if len(result.Body) < minBodyLength {
		findings = append(findings, fmt.Sprintf("response too brief (%d chars)", len(result.Body)))
	}

	return findings
}
