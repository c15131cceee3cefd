package messages_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/legaltender/intake/internal/messages"
	"github.com/legaltender/intake/internal/triage"
	"github.com/legaltender/intake/internal/workflow"
	"github.com/legaltender/intake/pkg/pagination"
)

// stubGenerator routes scripted responses by the message text embedded in
// the prompt, so responses stay deterministic under concurrent bulk calls.
// Classification prompts are distinguished by their instruction header.
type stubGenerator struct {
	mu           sync.Mutex
	classify     map[string]string
	draft        map[string]string
	failClassify map[string]error
	failDraft    map[string]error
	calls        int
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	table, fail := g.draft, g.failDraft
	if strings.Contains(prompt, "legal intake classifier") {
		table, fail = g.classify, g.failClassify
	}

	// match keys against the client message only; the instruction text
	// above it mentions scheduling, records, and case status itself
	message := prompt
	if i := strings.LastIndex(prompt, "Message:"); i >= 0 {
		message = prompt[i:]
	}

	for key, err := range fail {
		if strings.Contains(message, key) {
			return "", err
		}
	}
	for key, resp := range table {
		if strings.Contains(message, key) {
			return resp, nil
		}
	}
	return "", fmt.Errorf("no scripted response for prompt")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPagination() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

// newSystem wires the real service over a stub generator so the triage
// pipeline runs end to end without a model.
func newSystem(gen triage.Generator, opts messages.Options) messages.System {
	logger := testLogger()
	rt := &workflow.Runtime{
		Classifier: triage.NewClassifier(gen, logger),
		Dispatcher: triage.NewDispatcher(gen),
		Controller: triage.NewController(triage.NewScorer(0.85), time.Minute, logger),
		Logger:     logger,
	}
	return messages.New(messages.NewMemoryStore(), rt, logger, testPagination(), opts)
}

var draftBody = strings.Repeat("Thank you for contacting our office about your matter. ", 4)

func classifiedAs(task string, confidence float64, author string, issues ...string) string {
	quoted := make([]string, 0, len(issues))
	for _, issue := range issues {
		quoted = append(quoted, fmt.Sprintf("%q", issue))
	}
	return fmt.Sprintf(
		`{"task_type":%q,"confidence":%f,"reasoning":"scripted","author":%q,"header":"Test Header","quality_issues":[%s]}`,
		task, confidence, author, strings.Join(quoted, ","),
	)
}

func schedulingDrafted(clientName string, confidence float64) string {
	return fmt.Sprintf(
		`{"subject":"Re: scheduling","body":%q,"extracted_info":{"client_name":%q,"requested_date":"next Tuesday"},"confidence":%f}`,
		draftBody, clientName, confidence,
	)
}

func recordsDrafted(confidence float64) string {
	return fmt.Sprintf(`{
		"subject": "Medical Records Request - Maria Gonzalez",
		"body": %q,
		"extracted_info": {"patient_name": "Maria Gonzalez", "dob": "7/2/1990", "date_range": "June 2025"},
		"providers": [
			{"provider_name": "Dr. Reyes", "provider_type": "doctor", "treatment_context": "knee surgery", "specific_dates": "June 3"},
			{"provider_name": "Bayview Imaging", "provider_type": "imaging", "treatment_context": "MRI", "specific_dates": "June 10"}
		],
		"provider_count": 2,
		"requires_multiple_requests": true,
		"confidence": %f
	}`, draftBody, confidence)
}

func mustClassify(t *testing.T, sys messages.System, text string) *messages.Message {
	t.Helper()
	m, err := sys.Classify(context.Background(), messages.ClassifyCommand{Text: text})
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	return m
}
