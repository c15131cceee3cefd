package triage_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// fakeGenerator returns scripted responses in order, recording each
// prompt it receives.
type fakeGenerator struct {
	responses []string
	errs      []error
	prompts   []string
	calls     int
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	i := g.calls
	g.calls++
	g.prompts = append(g.prompts, prompt)

	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	if i < len(g.responses) {
		return g.responses[i], nil
	}
	return "", errors.New("no scripted response")
}

var errCapability = errors.New("capability unreachable")

// longBody clears the minimum draft body length.
var longBody = strings.Repeat("Thank you for reaching out to our office. ", 4)

func schedulingDraft(clientName string, confidence float64) string {
	name := ""
	if clientName != "" {
		name = fmt.Sprintf(`"client_name":%q,`, clientName)
	}
	return fmt.Sprintf(
		`{"subject":"Re: scheduling","body":%q,"extracted_info":{%s"requested_date":"next Tuesday"},"confidence":%f}`,
		longBody, name, confidence,
	)
}
