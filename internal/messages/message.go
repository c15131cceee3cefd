// Package messages implements the intake message domain: the central
// message entity, its draft and review lifecycle, the in-memory store,
// bulk processing, and the HTTP surface.
package messages

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/legaltender/intake/internal/triage"
)

// Status tracks a message through classification, drafting, and human review.
type Status string

// Lifecycle states. A message starts at classified (or needs_details when
// the classifier reports missing information), advances to draft_ready or
// requires_human_review once drafting runs, and ends with a human decision.
// Only approved and rejected are terminal; an edited message keeps its
// action affordances.
const (
	StatusClassified     Status = "classified"
	StatusNeedsDetails   Status = "needs_details"
	StatusDraftReady     Status = "draft_ready"
	StatusRequiresReview Status = "requires_human_review"
	StatusApproved       Status = "approved"
	StatusEdited         Status = "edited"
	StatusRejected       Status = "rejected"
)

// Terminal reports whether no further decisions may change this status.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Decided reports whether a human decision has been applied.
func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusEdited || s == StatusRejected
}

// Action is a human review decision.
type Action string

// Valid decision actions.
const (
	ActionApprove Action = "approve"
	ActionEdit    Action = "edit"
	ActionReject  Action = "reject"
)

var actions = []Action{ActionApprove, ActionEdit, ActionReject}

// ParseAction validates a string as a known decision action.
func ParseAction(s string) (Action, error) {
	v := Action(s)
	if !slices.Contains(actions, v) {
		return "", ErrInvalidAction
	}
	return v, nil
}

// Status returns the lifecycle state an action moves a message into.
func (a Action) Status() Status {
	switch a {
	case ActionApprove:
		return StatusApproved
	case ActionEdit:
		return StatusEdited
	default:
		return StatusRejected
	}
}

// Draft is the generated response content for a message, owned exclusively
// by it. QualityIssues accumulates findings from failed attempts; Attempt
// records which attempt produced the final content.
type Draft struct {
	Subject             string            `json:"subject"`
	Body                string            `json:"body"`
	Extracted           map[string]string `json:"extracted_info"`
	Providers           []triage.SubDraft `json:"providers,omitempty"`
	SuggestedInvite     *triage.Invite    `json:"suggested_invite,omitempty"`
	RecommendedAction   string            `json:"recommended_action,omitempty"`
	QualityScore        *float64          `json:"quality_score,omitempty"`
	RequiresHumanReview bool              `json:"requires_human_review"`
	QualityIssues       []string          `json:"quality_issues,omitempty"`
	Attempt             int               `json:"attempt"`
}

// Message is the central intake entity. The store owns all message state;
// handlers and the triage pipeline mutate messages only through it.
type Message struct {
	ID            uuid.UUID       `json:"id"`
	RawText       string          `json:"raw_text"`
	Author        string          `json:"author"`
	Header        string          `json:"header"`
	TaskType      triage.TaskType `json:"task_type"`
	Confidence    float64         `json:"confidence"`
	Reasoning     string          `json:"reasoning"`
	QualityIssues []string        `json:"quality_issues,omitempty"`
	Status        Status          `json:"status"`
	AgentUsed     string          `json:"agent_used,omitempty"`
	Attempts      int             `json:"attempts"`
	Draft         *Draft          `json:"draft,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// DecisionCommand carries a human review decision. EditedDraft is required
// for edit actions and replaces only the draft's subject and body.
type DecisionCommand struct {
	Action      string       `json:"action"`
	EditedDraft *EditedDraft `json:"edited_draft,omitempty"`
}

// EditedDraft carries replacement draft content for an edit decision.
type EditedDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ClassifyCommand carries the raw text for single-message classification.
type ClassifyCommand struct {
	Text string `json:"text"`
}

// BulkCommand carries the raw texts for a bulk processing request.
type BulkCommand struct {
	Messages []string `json:"messages"`
}

// newMessage builds a classified message from a classification result.
func newMessage(text string, c *triage.Classification) *Message {
	status := StatusClassified
	if len(c.QualityIssues) > 0 {
		status = StatusNeedsDetails
	}

	now := time.Now()
	return &Message{
		RawText:       text,
		Author:        c.Author,
		Header:        c.Header,
		TaskType:      c.TaskType,
		Confidence:    c.Confidence,
		Reasoning:     c.Reasoning,
		QualityIssues: c.QualityIssues,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// applyOutcome attaches a retry outcome to the message as its draft and
// advances the lifecycle state accordingly.
func applyOutcome(m *Message, agent triage.DraftAgent, outcome *triage.Outcome) {
	m.AgentUsed = agent.Name()
	m.Attempts = outcome.Attempts

	draft := &Draft{
		RequiresHumanReview: outcome.RequiresReview,
		QualityIssues:       outcome.Issues,
		Attempt:             outcome.Attempts,
	}

	if result := outcome.Draft; result != nil {
		draft.Subject = result.Subject
		draft.Body = result.Body
		draft.Extracted = result.Extracted
		draft.SuggestedInvite = result.SuggestedInvite
		draft.RecommendedAction = result.RecommendedAction

		score := outcome.Score
		draft.QualityScore = &score

		if agent.Task() == triage.TaskRecordsRequest {
			draft.Providers = triage.SplitProviders(result)
		}
	}

	m.Draft = draft

	if outcome.Passed {
		m.Status = StatusDraftReady
	} else {
		m.Status = StatusRequiresReview
	}
	m.UpdatedAt = time.Now()
}
