// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator wraps a validator instance for request struct validation.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator ready to be set as echo.Validator.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Handlers map the returned validation
// error into the VALIDATION_ERROR envelope.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
