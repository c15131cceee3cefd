package workflow

import (
	"context"
	"fmt"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/legaltender/intake/internal/triage"
)

// State bag keys shared between workflow nodes.
const (
	KeyRawText        = "raw_text"
	KeyMaxAttempts    = "max_attempts"
	KeyClassification = "classification"
	KeyAgentName      = "agent_name"
	KeyOutcome        = "outcome"
)

// Result is the terminal output of the intake pipeline. Outcome is nil
// when the message's category has no specialist agent or the classifier
// reported missing details; the message then stays at its classified
// state awaiting explicit action.
type Result struct {
	Classification *triage.Classification
	AgentName      string
	Outcome        *triage.Outcome
	CompletedAt    time.Time
}

// Execute runs the intake pipeline for a single raw message. It builds
// the state graph (classify → draft? → finalize), executes it, and
// extracts the Result from the final state. maxAttempts bounds the draft
// retry loop; bulk callers pass a smaller budget than single-message
// callers.
func Execute(ctx context.Context, rt *Runtime, rawText string, maxAttempts int) (*Result, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyRawText, rawText)
	initialState = initialState.Set(KeyMaxAttempts, maxAttempts)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("intake-triage")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("classify", ClassifyNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("draft", DraftNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("finalize", FinalizeNode(rt)); err != nil {
		return nil, err
	}

	// classify → draft (when a specialist agent applies)
	if err := graph.AddEdge("classify", "draft", shouldDraft(rt)); err != nil {
		return nil, err
	}

	// classify → finalize (no agent, or classifier flagged missing details)
	if err := graph.AddEdge("classify", "finalize", state.Not(shouldDraft(rt))); err != nil {
		return nil, err
	}

	// draft → finalize (unconditional)
	if err := graph.AddEdge("draft", "finalize", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("classify"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("finalize"); err != nil {
		return nil, err
	}

	return graph, nil
}

// shouldDraft gates the draft node: the category must have a specialist
// agent, and the classifier must not have flagged the message as missing
// the details a draft would need.
func shouldDraft(rt *Runtime) func(state.State) bool {
	return func(s state.State) bool {
		c, err := extractClassification(s)
		if err != nil {
			return false
		}

		if len(c.QualityIssues) > 0 {
			return false
		}

		_, err = rt.Dispatcher.Agent(c.TaskType)
		return err == nil
	}
}

func extractClassification(s state.State) (*triage.Classification, error) {
	val, ok := s.Get(KeyClassification)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrMissingState, KeyClassification)
	}

	c, ok := val.(triage.Classification)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not Classification", ErrMissingState, KeyClassification)
	}

	return &c, nil
}

func extractResult(s state.State) (*Result, error) {
	c, err := extractClassification(s)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Classification: c,
		CompletedAt:    time.Now(),
	}

	if val, ok := s.Get(KeyAgentName); ok {
		if name, ok := val.(string); ok {
			result.AgentName = name
		}
	}

	if val, ok := s.Get(KeyOutcome); ok {
		outcome, ok := val.(triage.Outcome)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not Outcome", ErrMissingState, KeyOutcome)
		}
		result.Outcome = &outcome
	}

	return result, nil
}
