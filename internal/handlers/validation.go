package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Global validator instance (reused across all handlers)
var validate = validator.New()

// ValidateRequest validates a request struct and returns one
// user-facing message per failing field, in struct field order.
func ValidateRequest(req interface{}) []string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid request."}
	}

	messages := make([]string, 0, len(ve))
	for _, fieldError := range ve {
		messages = append(messages, formatValidationError(fieldError))
	}
	return messages
}

// formatValidationError converts a validator FieldError to the exact
// message the frontend displays under the field
func formatValidationError(fe validator.FieldError) string {
	switch fe.StructField() {
	case "FullName":
		return "Full name is required."
	case "Email":
		return "Invalid email address."
	case "Password":
		switch fe.Tag() {
		case "min":
			return fmt.Sprintf("Password must be at least %s characters.", fe.Param())
		case "max":
			return fmt.Sprintf("Password must be at most %s characters.", fe.Param())
		default:
			return "Password is required."
		}
	case "ConfirmPassword":
		return "Passwords do not match."
	case "OTP":
		return "Invalid OTP format."
	default:
		return fmt.Sprintf("%s failed validation: %s", fe.StructField(), fe.Tag())
	}
}
