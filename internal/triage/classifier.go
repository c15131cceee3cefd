package triage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/legaltender/intake/internal/prompts"
	"github.com/legaltender/intake/pkg/formatting"
)

// Confidence caps applied when the classifier reports missing critical
// information. A records request without a patient or provider cannot be
// trusted above 0.40; scheduling and status requests missing their key
// detail cap at 0.45.
const (
	capMissingRecordsInfo    = 0.40
	capMissingScheduleInfo   = 0.45
	capMissingStatusCaseInfo = 0.45
)

// Classifier assigns a task category, confidence, and reasoning to a raw
// intake message by consulting the text-generation capability.
type Classifier struct {
	gen    Generator
	logger *slog.Logger
}

// NewClassifier creates a Classifier using the given generator.
func NewClassifier(gen Generator, logger *slog.Logger) *Classifier {
	return &Classifier{
		gen:    gen,
		logger: logger.With("system", "classifier"),
	}
}

// Classify assigns a task category to raw message text. The capability's
// self-reported confidence is clamped to [0,1] and capped when the
// classifier itself reports missing critical details. Capability failures
// and unusable responses wrap ErrClassification.
func (c *Classifier) Classify(ctx context.Context, text string) (*Classification, error) {
	prompt, err := prompts.Compose(prompts.StageClassify, text, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClassification, err)
	}

	content, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClassification, err)
	}

	result, err := formatting.Parse[Classification](content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClassification, err)
	}

	result.Confidence = clamp(result.Confidence)
	applyQualityCaps(&result)

	if result.Author == "" {
		result.Author = "Unknown Client"
	}
	if result.Header == "" {
		result.Header = "New Message"
	}

	c.logger.InfoContext(
		ctx, "message classified",
		"task_type", result.TaskType,
		"confidence", result.Confidence,
		"quality_issues", len(result.QualityIssues),
	)

	return &result, nil
}

// applyQualityCaps forces confidence down when reported quality issues
// show that category-critical information is missing.
func applyQualityCaps(c *Classification) {
	if len(c.QualityIssues) == 0 {
		return
	}

	switch c.TaskType {
	case TaskRecordsRequest:
		if issuesMention(c.QualityIssues, "patient name", "provider") {
			c.Confidence = min(c.Confidence, capMissingRecordsInfo)
		}
	case TaskScheduling:
		if issuesMention(c.QualityIssues, "timeframe", "date", "time") {
			c.Confidence = min(c.Confidence, capMissingScheduleInfo)
		}
	case TaskStatusUpdate:
		if issuesMention(c.QualityIssues, "case") {
			c.Confidence = min(c.Confidence, capMissingStatusCaseInfo)
		}
	}
}

func issuesMention(issues []string, terms ...string) bool {
	for _, issue := range issues {
		lower := strings.ToLower(issue)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				return true
			}
		}
	}
	return false
}
