package triage

import "errors"

// Sentinel errors for triage operations.
var (
	// ErrClassification indicates the text-generation capability was
	// unreachable or returned an unusable classification. No message is
	// created when classification fails.
	ErrClassification = errors.New("classification failed")

	// ErrDraftGeneration indicates a hard capability failure during
	// drafting. The message remains classified with no draft.
	ErrDraftGeneration = errors.New("draft generation failed")

	// ErrUnparseable indicates the capability responded but the response
	// could not be parsed. Retryable: the parse failure is fed back to the
	// next attempt as a quality issue.
	ErrUnparseable = errors.New("unparseable agent response")

	// ErrNoAgent indicates the task type has no specialist draft agent.
	ErrNoAgent = errors.New("no agent available for task type")
)
