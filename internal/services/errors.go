package services

import (
	"errors"

	apperrors "github.com/arya020/FormBuilder/internal/errors"
	"github.com/arya020/FormBuilder/internal/session"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrBadRequest       = errors.New("bad request")
	ErrConflict         = errors.New("resource conflict")

	// Form specific errors
	ErrFormNotFound         = errors.New("form not found")
	ErrFormNotPublished     = errors.New("form is not published")
	ErrFormAlreadyPublished = errors.New("form is already published")
	ErrFormHasNoQuestions   = errors.New("form has no questions to publish")

	// Response specific errors
	ErrResponseNotFound = errors.New("response not found")

	// Upload specific errors
	ErrUploadTooLarge    = errors.New("uploaded file exceeds size limit")
	ErrUploadInvalidType = errors.New("uploaded file type is not allowed")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// IncompleteAnswerError surfaces strict-mode submission failures.
type IncompleteAnswerError = session.IncompleteAnswerError

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrFormNotFound) ||
		errors.Is(err, ErrResponseNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *ValidationError
	return errors.As(err, &single)
}

// IsIncomplete checks if error represents a rejected partial submission
func IsIncomplete(err error) bool {
	var incomplete *IncompleteAnswerError
	return errors.As(err, &incomplete)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrFormAlreadyPublished) ||
		errors.Is(err, ErrFormNotPublished) ||
		errors.Is(err, ErrFormHasNoQuestions)
}

// IsUpload checks if error represents a failed upload
func IsUpload(err error) bool {
	return errors.Is(err, ErrUploadTooLarge) || errors.Is(err, ErrUploadInvalidType)
}
