package triage

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Outcome is the terminal result of the bounded retry loop for one
// message: the last draft produced (possibly failing), the score it
// earned, and the accumulated quality issues across attempts. A quality
// gate failure is a state, not an error; RequiresReview marks drafts that
// automation could not trust within the attempt budget.
type Outcome struct {
	Draft          *DraftResult
	Score          float64
	Attempts       int
	Issues         []string
	Passed         bool
	RequiresReview bool
}

// Controller re-invokes a draft agent with injected feedback until the
// quality gate passes or the attempt budget is exhausted. The budget is a
// per-call parameter because bulk processing deliberately runs with a
// smaller budget than single-message processing.
type Controller struct {
	scorer  *Scorer
	timeout time.Duration
	logger  *slog.Logger
}

// NewController creates a Controller. Timeout bounds each individual
// capability call; zero disables the per-call deadline.
func NewController(scorer *Scorer, timeout time.Duration, logger *slog.Logger) *Controller {
	return &Controller{
		scorer:  scorer,
		timeout: timeout,
		logger:  logger.With("system", "retry"),
	}
}

// Run executes up to maxAttempts generation attempts. Quality issues from
// attempt k are injected into attempt k+1's prompt; that feedback list is
// the only channel between attempts. Unparseable responses consume an
// attempt; hard capability failures abort with ErrDraftGeneration.
func (c *Controller) Run(ctx context.Context, agent DraftAgent, text string, maxAttempts int) (*Outcome, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	outcome := &Outcome{}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		outcome.Attempts = attempt

		result, err := c.generate(ctx, agent, text, outcome.Issues)
		if err != nil {
			if !IsRetryable(err) {
				return nil, err
			}
			c.logger.WarnContext(
				ctx, "attempt produced unparseable response",
				"agent", agent.Name(),
				"attempt", attempt,
				"error", err,
			)
			outcome.Issues = append(outcome.Issues, err.Error())
			continue
		}

		result.Findings = agent.Validate(result)
		outcome.Draft = result
		outcome.Score = c.scorer.Score(agent, result)

		if c.scorer.Passed(outcome.Score) && len(result.Findings) == 0 {
			outcome.Passed = true
			c.logger.InfoContext(
				ctx, "quality gate passed",
				"agent", agent.Name(),
				"attempt", attempt,
				"score", outcome.Score,
			)
			return outcome, nil
		}

		issues := result.Findings
		if len(issues) == 0 {
			issues = []string{fmt.Sprintf(
				"quality score too low: %.2f < %.2f",
				outcome.Score, c.scorer.Threshold,
			)}
		}
		outcome.Issues = append(outcome.Issues, issues...)

		c.logger.WarnContext(
			ctx, "attempt failed quality gate",
			"agent", agent.Name(),
			"attempt", attempt,
			"score", outcome.Score,
			"issues", issues,
		)
	}

	// budget exhausted below threshold: refuse to auto-approve
	outcome.RequiresReview = true

	c.logger.WarnContext(
		ctx, "quality gate exhausted, flagging for human review",
		"agent", agent.Name(),
		"attempts", outcome.Attempts,
		"score", outcome.Score,
	)

	return outcome, nil
}

func (c *Controller) generate(ctx context.Context, agent DraftAgent, text string, feedback []string) (*DraftResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	return agent.Generate(ctx, text, feedback)
}
