package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// DraftNode returns a state node that routes the classified message to
// its specialist agent and runs the bounded retry loop. The node only
// executes when the classify → draft edge condition held, so agent
// lookup failures here are genuine faults.
func DraftNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		c, err := extractClassification(s)
		if err != nil {
			return s, fmt.Errorf("draft: %w", err)
		}

		rawText, err := extractRawText(s)
		if err != nil {
			return s, fmt.Errorf("draft: %w", err)
		}

		agent, err := rt.Dispatcher.Agent(c.TaskType)
		if err != nil {
			return s, fmt.Errorf("draft: %w", err)
		}

		maxAttempts := 1
		if val, ok := s.Get(KeyMaxAttempts); ok {
			if n, ok := val.(int); ok {
				maxAttempts = n
			}
		}

		outcome, err := rt.Controller.Run(ctx, agent, rawText, maxAttempts)
		if err != nil {
			return s, fmt.Errorf("draft: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "draft node complete",
			"agent", agent.Name(),
			"attempts", outcome.Attempts,
			"score", outcome.Score,
			"passed", outcome.Passed,
		)

		s = s.Set(KeyAgentName, agent.Name())
		s = s.Set(KeyOutcome, *outcome)
		return s, nil
	})
}
