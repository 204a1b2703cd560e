package http

// ErrorResponse represents a generic error payload.
type ErrorResponse struct {
	Error string `json:"error" example:"password must be at least 8 characters"`
	Field string `json:"field,omitempty" example:"password"`
}

// ResetSubmitRequest is posted by the reset page.
type ResetSubmitRequest struct {
	Token                string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Password             string `json:"password" example:"NewPass!45"`
	PasswordConfirmation string `json:"password_confirmation" example:"NewPass!45"`
}

// ResetOutcomeResponse mirrors the account API reset contract.
type ResetOutcomeResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"password updated successfully"`
}

// PasswordResetRequest asks the account API to mail a reset link.
type PasswordResetRequest struct {
	Email string `json:"email" example:"user@example.com"`
}

// PasswordResetConfirmRequest redeems a reset token for a new password.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	NewPassword string `json:"new_password" example:"NewPass!45"`
}

// SuccessResponse denotes a simple success flag.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}
