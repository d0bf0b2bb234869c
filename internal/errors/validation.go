package errors

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", ve.Field, ve.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}

// NewValidationErrorWithRule creates a new validation error with rule
func NewValidationErrorWithRule(field, message, rule string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
		Rule:    rule,
	}
}

// ToValidationErrors converts validator.ValidationErrors to our custom type
func ToValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors

	if validatorErr, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range validatorErr {
			errs = append(errs, ValidationError{
				Field:   fieldErr.Field(),
				Message: getErrorMessage(fieldErr),
				Value:   fieldErr.Value(),
				Rule:    fieldErr.Tag(),
			})
		}
	}

	return errs
}

// getErrorMessage returns user-friendly error messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	// Custom validators
	case "question_type":
		return "must be a valid question type (categorize, cloze, comprehension)"
	case "move_direction":
		return "must be 'up' or 'down'"

	default:
		return fmt.Sprintf("validation failed for rule '%s'", err.Tag())
	}
}
