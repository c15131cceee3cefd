// Package prompts defines the prompt material for the intake triage stages.
// Each stage pairs tunable instructions with an immutable response
// specification that pins the JSON contract the text-generation capability
// must honor.
package prompts

import (
	"encoding/json"
	"slices"
)

// Stage represents a triage stage that a prompt targets.
type Stage string

// Valid triage stages.
const (
	StageClassify   Stage = "classify"
	StageRecords    Stage = "records"
	StageScheduling Stage = "scheduling"
	StageStatus     Stage = "status"
)

var stages = []Stage{
	StageClassify,
	StageRecords,
	StageScheduling,
	StageStatus,
}

// Stages returns the list of valid triage stages.
func Stages() []Stage {
	return stages
}

// UnmarshalJSON validates that the decoded string is a known stage value.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Stage(raw)
	if !slices.Contains(stages, v) {
		return ErrInvalidStage
	}
	*s = v
	return nil
}

// ParseStage validates a string as a known triage stage.
// Returns ErrInvalidStage if the value is not recognized.
func ParseStage(s string) (Stage, error) {
	v := Stage(s)
	if !slices.Contains(stages, v) {
		return "", ErrInvalidStage
	}
	return v, nil
}
