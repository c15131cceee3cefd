package triage

import (
	"context"
	"errors"
	"fmt"

	"github.com/legaltender/intake/internal/prompts"
	"github.com/legaltender/intake/pkg/formatting"
)

// minBodyLength is the shortest draft body accepted by any variant.
// Anything shorter is a stub, not a usable client-facing email.
const minBodyLength = 80

// DraftAgent is a specialist that produces a response draft and structured
// extracted fields for one task category. Implementations validate their
// own output; validation findings are returned as data rather than errors
// so the retry controller can feed them back into the next attempt.
type DraftAgent interface {
	// Name identifies the agent in message metadata and logs.
	Name() string

	// Task is the category this agent handles.
	Task() TaskType

	// CriticalFields lists extracted fields that must be present for a
	// draft to leave automation without human review.
	CriticalFields() []string

	// Generate produces a draft for the message text. Feedback carries
	// quality issues from prior failed attempts and is injected into the
	// generation prompt. Capability failures wrap ErrDraftGeneration;
	// malformed responses wrap ErrUnparseable.
	Generate(ctx context.Context, text string, feedback []string) (*DraftResult, error)

	// Validate applies variant-specific rules and returns findings.
	// An empty slice means the result passed.
	Validate(result *DraftResult) []string
}

// bonusScorer is implemented by agents that award variant-specific quality
// bonuses on top of the composite score.
type bonusScorer interface {
	Bonus(result *DraftResult) float64
}

// generate runs the shared draft generation path for a variant: compose
// the stage prompt with feedback, call the capability, and parse the JSON
// response into a DraftResult.
func generate(ctx context.Context, gen Generator, stage prompts.Stage, text string, feedback []string) (*DraftResult, error) {
	prompt, err := prompts.Compose(stage, text, feedback)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDraftGeneration, err)
	}

	content, err := gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDraftGeneration, err)
	}

	result, err := formatting.Parse[DraftResult](content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}

	result.Confidence = clamp(result.Confidence)
	return &result, nil
}

// missingCritical returns the critical fields absent from the result,
// treating placeholder values as absent.
func missingCritical(a DraftAgent, result *DraftResult) []string {
	var missing []string
	for _, field := range a.CriticalFields() {
		if !fieldPresent(result.Field(field)) {
			missing = append(missing, field)
		}
	}
	return missing
}

// IsRetryable reports whether a generation error should consume a retry
// attempt rather than abort the pipeline.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUnparseable)
}
