package workflow

import "errors"

// Pipeline errors.
var (
	ErrMissingState = errors.New("required workflow state missing")
)
