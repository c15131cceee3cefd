package triage

import (
	"context"
	"fmt"

	"github.com/legaltender/intake/internal/prompts"
)

// RecordsAgent drafts medical records requests. It is the only variant
// with multi-provider detection: a single message naming several
// hospitals, doctors, or clinics fans out into one sub-draft per provider.
type RecordsAgent struct {
	gen Generator
}

// NewRecordsAgent creates the records request specialist.
func NewRecordsAgent(gen Generator) *RecordsAgent {
	return &RecordsAgent{gen: gen}
}

func (a *RecordsAgent) Name() string { return "records_wrangler" }

func (a *RecordsAgent) Task() TaskType { return TaskRecordsRequest }

// CriticalFields requires only the patient name; DOB and treatment dates
// improve the score but providers are validated separately.
func (a *RecordsAgent) CriticalFields() []string {
	return []string{"patient_name"}
}

func (a *RecordsAgent) Generate(ctx context.Context, text string, feedback []string) (*DraftResult, error) {
	return generate(ctx, a.gen, prompts.StageRecords, text, feedback)
}

// Validate checks patient identity, the providers array, and internal
// consistency of the multi-provider flags.
func (a *RecordsAgent) Validate(result *DraftResult) []string {
	var findings []string

	if !fieldPresent(result.Field("patient_name")) {
		findings = append(findings, "patient name not found")
	}

	if len(result.Providers) == 0 {
		findings = append(findings, "no providers found")
	} else {
		if result.ProviderCount != len(result.Providers) {
			findings = append(findings, "provider count mismatch")
		}

		for i, p := range result.Providers {
			if !fieldPresent(p.Name) {
				findings = append(findings, fmt.Sprintf("provider %d missing name", i+1))
			}
			if p.Type == "" {
				findings = append(findings, fmt.Sprintf("provider %d missing type", i+1))
			}
		}
	}

	if len(result.Body) < minBodyLength {
		findings = append(findings, fmt.Sprintf("email body too short (%d chars)", len(result.Body)))
	}

	if result.MultipleRequests && result.ProviderCount < 2 {
		findings = append(findings, "marked as multi-provider but only 1 provider found")
	}

	return findings
}

// Bonus rewards complete patient information, multi-provider detection,
// and per-provider context detail. Capped so the composite score never
// exceeds 1.0.
func (a *RecordsAgent) Bonus(result *DraftResult) float64 {
	var bonus float64

	complete := true
	for _, field := range []string{"patient_name", "dob", "date_range"} {
		if !fieldPresent(result.Field(field)) {
			complete = false
			break
		}
	}
	if complete {
		bonus += 0.05
	}

	if extra := result.ProviderCount - 1; extra > 0 {
		bonus += 0.05 * float64(min(extra, 3))
	}

	if len(result.Providers) > 0 {
		detailed := 0
		for _, p := range result.Providers {
			if p.TreatmentContext != "" && p.SpecificDates != "" {
				detailed++
			}
		}
		bonus += 0.05 * float64(detailed) / float64(len(result.Providers))
	}

	return bonus
}
