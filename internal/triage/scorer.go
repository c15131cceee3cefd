package triage

// Composite score weights: the capability's self-reported confidence
// carries half the score, critical field completeness 30%, and passing
// variant validation the remaining 20%.
const (
	weightConfidence   = 0.5
	weightCompleteness = 0.3
	weightValidation   = 0.2
)

// Scorer computes the composite trust score that gates automatic
// progression to draft_ready.
type Scorer struct {
	// Threshold is the minimum score required to advance without
	// mandatory human review.
	Threshold float64
}

// NewScorer creates a Scorer with the given quality threshold.
func NewScorer(threshold float64) *Scorer {
	return &Scorer{Threshold: threshold}
}

// Score computes the composite quality score for an agent's draft result.
// Variant-specific bonuses apply when the agent provides them; the result
// is always within [0, 1].
func (s *Scorer) Score(agent DraftAgent, result *DraftResult) float64 {
	score := result.Confidence * weightConfidence

	if fields := agent.CriticalFields(); len(fields) > 0 {
		found := len(fields) - len(missingCritical(agent, result))
		score += float64(found) / float64(len(fields)) * weightCompleteness
	}

	if len(result.Findings) == 0 {
		score += weightValidation
	}

	if b, ok := agent.(bonusScorer); ok {
		score += b.Bonus(result)
	}

	return clamp(score)
}

// Passed reports whether a score clears the threshold.
func (s *Scorer) Passed(score float64) bool {
	return score >= s.Threshold
}
