package messages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/legaltender/intake/internal/workflow"
)

// BulkItem is the per-message outcome of a bulk batch. Results are
// reported in submission order; a failed item carries its error and
// never aborts the rest of the batch.
type BulkItem struct {
	Index   int      `json:"index"`
	Message *Message `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// BulkResult summarizes a bulk processing run.
type BulkResult struct {
	Total             int        `json:"total"`
	Successful        int        `json:"successful"`
	Failed            int        `json:"failed"`
	ElapsedSeconds    float64    `json:"elapsed_seconds"`
	MessagesPerSecond float64    `json:"messages_per_second"`
	Results           []BulkItem `json:"results"`
}

// ProcessBulk runs the full intake pipeline over a batch of raw texts
// with bounded concurrency. The batch is validated before any work
// starts; after that, failures stay isolated to their item. Messages
// are stored sequentially in submission order once all workers finish,
// preserving the store's single-writer discipline.
func (s *service) ProcessBulk(ctx context.Context, cmd BulkCommand) (*BulkResult, error) {
	if len(cmd.Messages) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(cmd.Messages) > s.opts.MaxBatchSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(cmd.Messages), s.opts.MaxBatchSize)
	}

	start := time.Now()
	items := make([]BulkItem, len(cmd.Messages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.BulkWorkers)

	for i, text := range cmd.Messages {
		g.Go(func() error {
			items[i] = s.processBulkItem(gctx, i, text)
			return nil
		})
	}

	// workers never return errors; Wait only observes context cancellation
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &BulkResult{
		Total:   len(items),
		Results: items,
	}

	for i := range items {
		if items[i].Error != "" {
			result.Failed++
			continue
		}

		if err := s.store.Insert(ctx, items[i].Message); err != nil {
			items[i].Message = nil
			items[i].Error = fmt.Sprintf("store message: %v", err)
			result.Failed++
			continue
		}
		result.Successful++
	}

	elapsed := time.Since(start)
	result.ElapsedSeconds = elapsed.Seconds()
	if elapsed > 0 {
		result.MessagesPerSecond = float64(result.Total) / elapsed.Seconds()
	}

	s.logger.InfoContext(
		ctx, "bulk processing complete",
		"total", result.Total,
		"successful", result.Successful,
		"failed", result.Failed,
		"elapsed", elapsed,
	)
	return result, nil
}

func (s *service) processBulkItem(ctx context.Context, index int, text string) BulkItem {
	item := BulkItem{Index: index}

	text = strings.TrimSpace(text)
	if text == "" {
		item.Error = ErrEmptyText.Error()
		return item
	}

	result, err := workflow.Execute(ctx, s.rt, text, s.opts.BulkMaxAttempts)
	if err != nil {
		s.logger.WarnContext(
			ctx, "bulk item failed",
			"index", index,
			"error", err,
		)
		item.Error = err.Error()
		return item
	}

	m := newMessage(text, result.Classification)
	if result.Outcome != nil {
		agent, err := s.rt.Dispatcher.Agent(result.Classification.TaskType)
		if err == nil {
			applyOutcome(m, agent, result.Outcome)
		}
	}

	item.Message = m
	return item
}
