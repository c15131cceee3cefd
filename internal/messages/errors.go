package messages

import (
	"errors"
	"net/http"

	"github.com/legaltender/intake/internal/triage"
)

// Domain errors for message intake and review.
var (
	ErrNotFound       = errors.New("message not found")
	ErrEmptyText      = errors.New("message text is required")
	ErrEmptyBatch     = errors.New("batch contains no messages")
	ErrBatchTooLarge  = errors.New("batch exceeds maximum size")
	ErrInvalidAction  = errors.New("invalid decision action")
	ErrNoDraft        = errors.New("message has no draft to edit")
	ErrAlreadyDecided = errors.New("message decision is final")
)

// MapHTTPStatus translates domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmptyText),
		errors.Is(err, ErrEmptyBatch),
		errors.Is(err, ErrBatchTooLarge),
		errors.Is(err, ErrInvalidAction),
		errors.Is(err, ErrNoDraft),
		errors.Is(err, triage.ErrNoAgent):
		return http.StatusBadRequest
	case errors.Is(err, ErrAlreadyDecided):
		return http.StatusConflict
	case errors.Is(err, triage.ErrClassification),
		errors.Is(err, triage.ErrDraftGeneration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
