package upstream

import (
	"errors"
	"fmt"

	"broker/pkg/platform/sentinel"
)

// ErrorCategory defines the normalized failure taxonomy for upstream registries.
type ErrorCategory string

const (
	// ErrorTimeout indicates the upstream took longer than the call budget.
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the upstream returned a body we could not decode.
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication indicates credential or permission issues (401/403).
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorProviderOutage indicates transport failures and 5xx answers.
	ErrorProviderOutage ErrorCategory = "provider_outage"

	// ErrorRateLimited indicates a 429 answer.
	ErrorRateLimited ErrorCategory = "rate_limited"

	// ErrorRejected indicates any other non-2xx, non-404 answer.
	ErrorRejected ErrorCategory = "rejected"
)

// ErrNotFound is returned for 404 answers. Lookups translate it into an
// absent result; it is never an Error.
var ErrNotFound = sentinel.ErrNotFound

// Error is a non-404 failure talking to an upstream registry: network
// failure, non-2xx status or malformed body.
type Error struct {
	Category   ErrorCategory
	Source     string
	StatusCode int
	Message    string
	Underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("upstream %s [%s]: %s: %v", e.Source, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("upstream %s [%s]: %s", e.Source, e.Category, e.Message)
}

// Unwrap supports error unwrapping
func (e *Error) Unwrap() error {
	return e.Underlying
}

// NewError creates a new normalized upstream error.
func NewError(category ErrorCategory, source, message string, underlying error) *Error {
	return &Error{
		Category:   category,
		Source:     source,
		Message:    message,
		Underlying: underlying,
	}
}

// IsUpstream reports whether err carries an upstream Error.
func IsUpstream(err error) bool {
	var ue *Error
	return errors.As(err, &ue)
}

// GetCategory extracts the error category from an error. Non-upstream errors
// report an empty category.
func GetCategory(err error) ErrorCategory {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Category
	}
	return ""
}

func categoryForStatus(status int) ErrorCategory {
	switch {
	case status == 401 || status == 403:
		return ErrorAuthentication
	case status == 429:
		return ErrorRateLimited
	case status >= 500:
		return ErrorProviderOutage
	default:
		return ErrorRejected
	}
}
