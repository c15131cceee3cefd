package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// ClassifyNode returns a state node that categorizes the raw message and
// stores the classification in the workflow state bag.
func ClassifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		rawText, err := extractRawText(s)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		classification, err := rt.Classifier.Classify(ctx, rawText)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "classify node complete",
			"task_type", classification.TaskType,
			"confidence", classification.Confidence,
		)

		s = s.Set(KeyClassification, *classification)
		return s, nil
	})
}

func extractRawText(s state.State) (string, error) {
	val, ok := s.Get(KeyRawText)
	if !ok {
		return "", fmt.Errorf("%w: missing %s", ErrMissingState, KeyRawText)
	}

	rawText, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not string", ErrMissingState, KeyRawText)
	}

	return rawText, nil
}
