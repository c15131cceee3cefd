package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// FinalizeNode returns the graph's exit node. It verifies the state bag
// holds a classification and records the pipeline's terminal shape.
func FinalizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		c, err := extractClassification(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		drafted := false
		if _, ok := s.Get(KeyOutcome); ok {
			drafted = true
		}

		rt.Logger.InfoContext(
			ctx, "pipeline complete",
			"task_type", c.TaskType,
			"drafted", drafted,
		)

		return s, nil
	})
}
