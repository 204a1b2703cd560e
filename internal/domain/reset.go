package domain

import "errors"

// ResetResult is the outcome reported by the password-reset endpoint.
// Success false carries a user-facing message explaining the rejection.
type ResetResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

var (
	// ErrTokenMissing means the deep link carried no reset token. The portal
	// treats this as terminal and sends the user back to the login entry page.
	ErrTokenMissing = errors.New("reset token is missing")

	// ErrSubmissionInFlight means a reset request for the same token is still
	// outstanding; the duplicate submit is ignored.
	ErrSubmissionInFlight = errors.New("a reset request is already in progress")
)

// ValidationError is a field-local, client-side form failure. No upstream
// call is made when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
