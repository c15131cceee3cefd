package triage

import (
	"fmt"
	"strings"
)

// SplitProviders fans a records-request draft out into one independent
// sub-draft per distinct provider, each sharing the patient identity and
// incident context. Providers whose descriptions are indistinguishable
// from an earlier detection are dropped; when two mentions collide, the
// more specific description wins. Detection order is preserved.
func SplitProviders(result *DraftResult) []SubDraft {
	providers := dedupeProviders(result.Providers)
	if len(providers) == 0 {
		return nil
	}

	if len(providers) == 1 && !result.MultipleRequests {
		return []SubDraft{{
			ProviderID:   1,
			ProviderName: providers[0].Name,
			ProviderType: providers[0].Type,
			Subject:      result.Subject,
			Body:         result.Body,
			Extracted:    result.Extracted,
			Provider:     providers[0],
			Confidence:   result.Confidence,
		}}
	}

	patient := result.Field("patient_name")
	drafts := make([]SubDraft, 0, len(providers))

	for i, p := range providers {
		drafts = append(drafts, SubDraft{
			ProviderID:   i + 1,
			ProviderName: p.Name,
			ProviderType: p.Type,
			Subject:      fmt.Sprintf("Medical Records Request - %s - %s", orElse(patient, "Patient"), p.Name),
			Body:         providerRequestBody(result, p),
			Extracted:    result.Extracted,
			Provider:     p,
			Confidence:   result.Confidence,
		})
	}

	return drafts
}

// dedupeProviders drops providers that are redundant with an earlier
// detection. Two mentions collide when their normalized names match; the
// retained entry keeps the most specific context available.
func dedupeProviders(providers []Provider) []Provider {
	var distinct []Provider
	seen := make(map[string]int)

	for _, p := range providers {
		if !fieldPresent(p.Name) {
			continue
		}

		key := normalizeProvider(p.Name)
		if idx, ok := seen[key]; ok {
			if specificity(p) > specificity(distinct[idx]) {
				distinct[idx] = p
			}
			continue
		}

		seen[key] = len(distinct)
		distinct = append(distinct, p)
	}

	return distinct
}

func normalizeProvider(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "dr. ")
	name = strings.TrimPrefix(name, "dr ")
	return strings.Join(strings.Fields(name), " ")
}

// specificity ranks a provider mention by how much context it carries.
func specificity(p Provider) int {
	score := len(p.Name)
	if p.TreatmentContext != "" {
		score += 100
	}
	if p.SpecificDates != "" {
		score += 100
	}
	return score
}

// providerRequestBody renders the standalone records request email for a
// single provider, sharing the patient context extracted from the source
// message.
func providerRequestBody(result *DraftResult, p Provider) string {
	patient := orElse(result.Field("patient_name"), "Not specified")
	context := orElse(p.TreatmentContext, "medical treatment")

	dates := p.SpecificDates
	if !fieldPresent(dates) {
		dates = result.Field("date_range")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Dear %s Medical Records Department,\n\n", p.Name)
	fmt.Fprintf(&sb, "I am writing to request a copy of medical records for my patient, %s", patient)

	if dob := result.Field("dob"); fieldPresent(dob) {
		fmt.Fprintf(&sb, ", DOB: %s", dob)
	}

	fmt.Fprintf(&sb, ".\n\nThe records requested pertain to %s", context)

	if fieldPresent(dates) {
		fmt.Fprintf(&sb, " on or around %s", dates)
	}

	sb.WriteString(".\n\nPlease provide these records in accordance with HIPAA regulations to ensure patient privacy and confidentiality. You may send the records to [Your Email Address/Secure Portal Instructions].\n\nThank you for your prompt attention to this matter.\n\nSincerely,\nRecords Department")

	return sb.String()
}

func orElse(v, fallback string) string {
	if fieldPresent(v) {
		return v
	}
	return fallback
}
