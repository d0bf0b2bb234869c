package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arya020/FormBuilder/internal/services"
	"github.com/arya020/FormBuilder/internal/utils"
)

// ===== COMMON RESPONSE STRUCTURES =====

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse wraps a paged collection
type ListResponse struct {
	Data  interface{} `json:"data"`
	Total int64       `json:"total"`
}

// ===== BASE HANDLER STRUCT =====

// BaseHandler provides common logging and error mapping for all handlers
type BaseHandler struct {
	logger utils.Logger
}

// NewBaseHandler creates a new base handler with logging capability
func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// LogError logs error details with request context
func (h *BaseHandler) LogError(c *gin.Context, err error, message string, additionalFields ...interface{}) {
	fields := []interface{}{
		"request_id", c.GetHeader("X-Request-ID"),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	}
	fields = append(fields, additionalFields...)
	h.logger.LogError(err, message, fields...)
}

// handleServiceError maps service errors onto HTTP status codes.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
		})
		return
	}

	var validationError *services.ValidationError
	if errors.As(err, &validationError) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationError,
		})
		return
	}

	var incomplete *services.IncompleteAnswerError
	if errors.As(err, &incomplete) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "Submission is incomplete",
			Details: map[string]interface{}{
				"question_id": incomplete.QuestionID,
				"title":       incomplete.Title,
			},
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrFormNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Form not found",
		})
	case errors.Is(err, services.ErrResponseNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Response not found",
		})
	case errors.Is(err, services.ErrFormNotPublished):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Form is not published",
		})
	case errors.Is(err, services.ErrFormAlreadyPublished):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Form is already published",
		})
	case errors.Is(err, services.ErrFormHasNoQuestions):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Form has no questions to publish",
		})
	case errors.Is(err, services.ErrUploadTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Message: "Uploaded file exceeds size limit",
		})
	case errors.Is(err, services.ErrUploadInvalidType):
		c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{
			Message: "Uploaded file type is not allowed",
		})
	case errors.Is(err, services.ErrBadRequest):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Bad request",
		})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}

// ===== PARAM HELPERS =====

// ParseStringIDParam extracts a non-empty path parameter, responding with
// 400 when missing.
func ParseStringIDParam(c *gin.Context, param string) string {
	idStr := strings.TrimSpace(c.Param(param))
	if idStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "ID cannot be empty",
		})
		return ""
	}
	return idStr
}

// ParseIntQuery reads an integer query parameter with a fallback.
func ParseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
