package errors

// ValidationError reports why a payment request failed validation.
// The reason is a human-readable string surfaced in logs only, never
// in response bodies.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError builds a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
