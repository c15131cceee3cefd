package prompts

import "errors"

// Sentinel errors for prompt operations.
var (
	ErrInvalidStage = errors.New("invalid triage stage")
)
