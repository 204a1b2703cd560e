package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/njprem/Fit_city_Reset_Portal/internal/domain"
)

// ResetForm carries the two password fields collected by the reset page.
type ResetForm struct {
	Password string `validate:"required,min=8"`
	Confirm  string `validate:"required,eqfield=Password"`
}

var formValidate = validator.New()

// ValidateResetForm runs the client-side checks in a fixed order and reports
// the first failure. A nil result means the form may be submitted.
func ValidateResetForm(form ResetForm) *domain.ValidationError {
	err := formValidate.Struct(form)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return &domain.ValidationError{Field: "password", Message: "password is invalid"}
	}
	return formFieldError(errs[0])
}

func formFieldError(fe validator.FieldError) *domain.ValidationError {
	switch fe.StructField() {
	case "Password":
		if fe.Tag() == "required" {
			return &domain.ValidationError{Field: "password", Message: "password is required"}
		}
		return &domain.ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	default:
		if fe.Tag() == "required" {
			return &domain.ValidationError{Field: "password_confirmation", Message: "password confirmation is required"}
		}
		return &domain.ValidationError{Field: "password_confirmation", Message: "passwords do not match"}
	}
}
