package messages

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/legaltender/intake/internal/workflow"
	"github.com/legaltender/intake/pkg/pagination"
)

// Options tunes triage execution for the message service. All values
// have conservative fallbacks applied by normalize.
type Options struct {
	// MaxAttempts bounds the draft retry loop for single-message requests.
	MaxAttempts int

	// BulkMaxAttempts bounds the retry loop during bulk processing, where
	// throughput matters more than per-message persistence.
	BulkMaxAttempts int

	// BulkWorkers caps concurrent pipeline executions in a bulk batch.
	BulkWorkers int

	// MaxBatchSize caps the number of messages accepted per bulk request.
	MaxBatchSize int
}

func (o *Options) normalize() {
	if o.MaxAttempts < 1 {
		o.MaxAttempts = 3
	}
	if o.BulkMaxAttempts < 1 {
		o.BulkMaxAttempts = 1
	}
	if o.BulkWorkers < 1 {
		o.BulkWorkers = 5
	}
	if o.MaxBatchSize < 1 {
		o.MaxBatchSize = 100
	}
}

type service struct {
	store      Store
	rt         *workflow.Runtime
	logger     *slog.Logger
	pagination pagination.Config
	opts       Options
}

// New creates a message service implementing the System interface. The
// workflow runtime carries the classifier, dispatcher, and retry
// controller that all triage paths share.
func New(
	store Store,
	rt *workflow.Runtime,
	logger *slog.Logger,
	pagination pagination.Config,
	opts Options,
) System {
	opts.normalize()
	return &service{
		store:      store,
		rt:         rt,
		logger:     logger.With("system", "messages"),
		pagination: pagination,
		opts:       opts,
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger, s.pagination)
}

func (s *service) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Message], error) {
	page.Normalize(s.pagination)

	all, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	var search string
	if page.Search != nil {
		search = *page.Search
	}

	matched := make([]Message, 0, len(all))
	for _, m := range all {
		if filters.Matches(m) && matchesSearch(m, search) {
			matched = append(matched, *m)
		}
	}

	sortMessages(matched, page.Sort)

	items, total := pagination.Slice(matched, page)
	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (s *service) Find(ctx context.Context, id uuid.UUID) (*Message, error) {
	return s.store.Get(ctx, id)
}

// Classify categorizes a single raw message and stores it. Classification
// failures surface to the caller; no message is created.
func (s *service) Classify(ctx context.Context, cmd ClassifyCommand) (*Message, error) {
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	classification, err := s.rt.Classifier.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	m := newMessage(text, classification)
	if err := s.store.Insert(ctx, m); err != nil {
		return nil, fmt.Errorf("store message: %w", err)
	}

	s.logger.InfoContext(
		ctx, "message classified",
		"id", m.ID,
		"task_type", m.TaskType,
		"confidence", m.Confidence,
		"status", m.Status,
	)
	return m, nil
}

// GenerateDraft runs the specialist agent for an already-classified
// message. A capability failure leaves the message at its classified
// state and returns it unchanged; only unknown ids and categories
// without an agent reject the request.
func (s *service) GenerateDraft(ctx context.Context, id uuid.UUID) (*Message, error) {
	m, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	agent, err := s.rt.Dispatcher.Agent(m.TaskType)
	if err != nil {
		return nil, err
	}

	outcome, err := s.rt.Controller.Run(ctx, agent, m.RawText, s.opts.MaxAttempts)
	if err != nil {
		s.logger.WarnContext(
			ctx, "draft generation failed, message remains classified",
			"id", m.ID,
			"agent", agent.Name(),
			"error", err,
		)
		return m, nil
	}

	applyOutcome(m, agent, outcome)

	if err := s.store.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("store draft: %w", err)
	}

	s.logger.InfoContext(
		ctx, "draft generated",
		"id", m.ID,
		"agent", m.AgentUsed,
		"attempts", m.Attempts,
		"status", m.Status,
	)
	return m, nil
}

// Decide applies a human review decision. Approved and rejected are
// terminal: repeating the same decision is an idempotent no-op, while a
// conflicting decision is refused. Edits replace only the draft's
// subject and body and leave the message open to further decisions.
func (s *service) Decide(ctx context.Context, id uuid.UUID, cmd DecisionCommand) (*Message, error) {
	action, err := ParseAction(cmd.Action)
	if err != nil {
		return nil, err
	}

	m, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if m.Status.Terminal() {
		if m.Status == action.Status() {
			return m, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrAlreadyDecided, m.Status)
	}

	switch action {
	case ActionApprove:
		if m.Draft == nil {
			return nil, ErrNoDraft
		}
	case ActionEdit:
		if m.Draft == nil {
			return nil, ErrNoDraft
		}
		if cmd.EditedDraft == nil {
			return nil, fmt.Errorf("%w: edit requires edited_draft", ErrInvalidAction)
		}
		m.Draft.Subject = cmd.EditedDraft.Subject
		m.Draft.Body = cmd.EditedDraft.Body
	}

	m.Status = action.Status()
	m.UpdatedAt = time.Now()
	if err := s.store.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("store decision: %w", err)
	}

	s.logger.InfoContext(
		ctx, "decision applied",
		"id", m.ID,
		"action", action,
		"status", m.Status,
	)
	return m, nil
}

// Stats aggregates message counts for the triage dashboard.
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	stats := &Stats{
		TotalMessages: len(all),
		ByStatus:      make(map[string]int),
		ByTaskType:    make(map[string]int),
		ByAgent:       make(map[string]int),
	}

	for _, m := range all {
		stats.ByStatus[string(m.Status)]++
		stats.ByTaskType[string(m.TaskType)]++
		if m.AgentUsed != "" {
			stats.ByAgent[m.AgentUsed]++
		}
		if m.Draft != nil && m.Draft.RequiresHumanReview && !m.Status.Decided() {
			stats.PendingReview++
		}
	}

	return stats, nil
}

// Samples returns the built-in demonstration texts.
func (s *service) Samples() []string {
	return sampleTexts()
}

// Stats summarizes triage activity across all stored messages.
type Stats struct {
	TotalMessages int            `json:"total_messages"`
	ByStatus      map[string]int `json:"by_status"`
	ByTaskType    map[string]int `json:"by_task_type"`
	ByAgent       map[string]int `json:"by_agent"`
	PendingReview int            `json:"pending_review"`
}
