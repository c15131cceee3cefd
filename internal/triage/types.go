// Package triage implements the message intake orchestration engine:
// classification, draft agent dispatch, quality scoring, bounded
// retry-with-feedback, and multi-provider fan-out. It drives a
// nondeterministic text-generation capability behind deterministic
// quality gates.
package triage

import (
	"encoding/json"
	"slices"
)

// TaskType categorizes an intake message for agent dispatch.
type TaskType string

// Valid task types. TaskOther has no specialist agent and produces no draft.
const (
	TaskRecordsRequest TaskType = "records_request"
	TaskScheduling     TaskType = "scheduling"
	TaskStatusUpdate   TaskType = "status_update"
	TaskOther          TaskType = "other"
)

var taskTypes = []TaskType{
	TaskRecordsRequest,
	TaskScheduling,
	TaskStatusUpdate,
	TaskOther,
}

// TaskTypes returns the closed set of valid task types.
func TaskTypes() []TaskType {
	return taskTypes
}

// ParseTaskType validates a string as a known task type.
// Unrecognized values map to TaskOther.
func ParseTaskType(s string) TaskType {
	v := TaskType(s)
	if !slices.Contains(taskTypes, v) {
		return TaskOther
	}
	return v
}

// UnmarshalJSON decodes a task type, mapping unknown values to TaskOther.
func (t *TaskType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = ParseTaskType(raw)
	return nil
}

// Classification is the classifier's assessment of a raw intake message.
type Classification struct {
	TaskType      TaskType `json:"task_type"`
	Confidence    float64  `json:"confidence"`
	Reasoning     string   `json:"reasoning"`
	Author        string   `json:"author"`
	Header        string   `json:"header"`
	QualityIssues []string `json:"quality_issues"`
}

// Provider describes one external party detected in a records request.
type Provider struct {
	Name             string `json:"provider_name"`
	Type             string `json:"provider_type"`
	TreatmentContext string `json:"treatment_context"`
	SpecificDates    string `json:"specific_dates"`
}

// Invite carries proposed calendar details from the scheduling agent.
type Invite struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration string `json:"duration"`
}

// DraftResult is a draft agent's output for a single attempt: the response
// draft, structured extracted fields, and self-reported confidence.
// Findings holds validation failures detected after generation; an empty
// Findings list means the result passed the variant's validation rules.
type DraftResult struct {
	Subject           string            `json:"subject"`
	Body              string            `json:"body"`
	Extracted         map[string]string `json:"extracted_info"`
	Providers         []Provider        `json:"providers,omitempty"`
	ProviderCount     int               `json:"provider_count,omitempty"`
	MultipleRequests  bool              `json:"requires_multiple_requests,omitempty"`
	SuggestedInvite   *Invite           `json:"suggested_invite,omitempty"`
	RecommendedAction string            `json:"recommended_action,omitempty"`
	Confidence        float64           `json:"confidence"`
	Findings          []string          `json:"findings,omitempty"`
}

// Field returns the named extracted field, or "" when absent.
func (r *DraftResult) Field(name string) string {
	if r.Extracted == nil {
		return ""
	}
	return r.Extracted[name]
}

// SubDraft is one independent draft produced by multi-provider fan-out.
// All sub-drafts of a message share the patient identity and incident
// context; each carries its own provider details.
type SubDraft struct {
	ProviderID   int               `json:"provider_id"`
	ProviderName string            `json:"provider_name"`
	ProviderType string            `json:"provider_type"`
	Subject      string            `json:"subject"`
	Body         string            `json:"body"`
	Extracted    map[string]string `json:"extracted_info"`
	Provider     Provider          `json:"specific_provider_context"`
	Confidence   float64           `json:"confidence"`
}

// placeholders are model outputs that mean "no value extracted".
var placeholders = []string{"Not found", "Not specified", "N/A"}

// fieldPresent reports whether an extracted field value carries real content.
func fieldPresent(v string) bool {
	return v != "" && !slices.Contains(placeholders, v)
}

// clamp bounds a confidence or score value to [0, 1].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
