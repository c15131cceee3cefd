package prompts

import (
	"fmt"
	"strings"
)

// feedbackWindow bounds how many prior quality issues are replayed to the
// model on a retry attempt.
const feedbackWindow = 3

// Compose builds the full prompt for a triage stage: instructions, response
// specification, optional feedback from prior failed attempts, and the
// client message. Feedback is the sole correction channel between attempts;
// only the most recent issues are replayed.
func Compose(stage Stage, message string, feedback []string) (string, error) {
	instructions, err := Instructions(stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := Spec(stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)

	if len(feedback) > 0 {
		if start := len(feedback) - feedbackWindow; start > 0 {
			feedback = feedback[start:]
		}

		sb.WriteString("\n\nIMPORTANT: Previous attempts failed due to:\n")
		for _, issue := range feedback {
			sb.WriteString("- ")
			sb.WriteString(issue)
			sb.WriteString("\n")
		}
		sb.WriteString("\nBe MORE THOROUGH. Extract ALL information carefully.")
	}

	sb.WriteString("\n\nMessage:\n")
	sb.WriteString(message)

	return sb.String(), nil
}
