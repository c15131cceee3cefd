package messages

import (
	"cmp"
	"net/url"
	"slices"
	"strings"

	"github.com/legaltender/intake/internal/triage"
	"github.com/legaltender/intake/pkg/pagination"
)

// Filters contains optional filtering criteria for message queries.
// Nil fields are ignored; both use exact matching.
type Filters struct {
	Status   *string `json:"status,omitempty"`
	TaskType *string `json:"task_type,omitempty"`
}

// Matches reports whether a message satisfies all set filters.
func (f Filters) Matches(m *Message) bool {
	if f.Status != nil && m.Status != Status(*f.Status) {
		return false
	}
	if f.TaskType != nil && m.TaskType != triage.TaskType(*f.TaskType) {
		return false
	}
	return true
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if t := values.Get("task_type"); t != "" {
		f.TaskType = &t
	}

	return f
}

// sortMessages orders messages for listing. Without an explicit sort the
// newest messages come first; ties keep insertion order.
func sortMessages(items []Message, fields pagination.SortFields) {
	if len(fields) == 0 {
		fields = pagination.SortFields{{Field: "created_at", Descending: true}}
	}

	slices.SortStableFunc(items, func(a, b Message) int {
		for _, f := range fields {
			c := compareField(&a, &b, f.Field)
			if c == 0 {
				continue
			}
			if f.Descending {
				return -c
			}
			return c
		}
		return 0
	})
}

// compareField compares two messages on a sortable field. Unknown fields
// compare equal rather than erroring, matching lenient query handling.
func compareField(a, b *Message, field string) int {
	switch field {
	case "created_at":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "updated_at":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case "confidence":
		return cmp.Compare(a.Confidence, b.Confidence)
	case "status":
		return cmp.Compare(a.Status, b.Status)
	case "task_type":
		return cmp.Compare(a.TaskType, b.TaskType)
	case "author":
		return cmp.Compare(a.Author, b.Author)
	default:
		return 0
	}
}

// matchesSearch reports whether a message matches a free-text search over
// its raw text, author, and header.
func matchesSearch(m *Message, search string) bool {
	if search == "" {
		return true
	}

	search = strings.ToLower(search)
	for _, field := range []string{m.RawText, m.Author, m.Header} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
