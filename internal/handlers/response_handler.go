package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arya020/FormBuilder/internal/repositories"
	"github.com/arya020/FormBuilder/internal/services"
	"github.com/arya020/FormBuilder/internal/utils"
)

type ResponseHandler struct {
	BaseHandler
	responseService services.ResponseService
	exportService   services.ExportService
}

func NewResponseHandler(
	responseService services.ResponseService,
	exportService services.ExportService,
	logger utils.Logger,
) *ResponseHandler {
	return &ResponseHandler{
		BaseHandler:     NewBaseHandler(logger),
		responseService: responseService,
		exportService:   exportService,
	}
}

// SubmitResponse accepts a submission for a published form
// @Summary Submit response
// @Description Accepts answers keyed by question id; partial submissions are accepted unless strict is set
// @Tags responses
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param response body services.SubmitResponseRequest true "Answers"
// @Success 201 {object} models.Response
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /forms/{id}/responses [post]
func (h *ResponseHandler) SubmitResponse(c *gin.Context) {
	formID := ParseStringIDParam(c, "id")
	if formID == "" {
		return
	}

	var req services.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	response, err := h.responseService.Submit(c.Request.Context(), formID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListResponses lists submissions of a form, newest first
// @Summary List responses
// @Tags responses
// @Produce json
// @Param id path string true "Form ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} ListResponse
// @Failure 404 {object} ErrorResponse
// @Router /forms/{id}/responses [get]
func (h *ResponseHandler) ListResponses(c *gin.Context) {
	formID := ParseStringIDParam(c, "id")
	if formID == "" {
		return
	}

	filters := repositories.ResponseFilters{
		Limit:  ParseIntQuery(c, "limit", 20),
		Offset: ParseIntQuery(c, "offset", 0),
	}

	responses, total, err := h.responseService.ListByForm(c.Request.Context(), formID, filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Data: responses, Total: total})
}

// GetResponse retrieves one submission
// @Summary Get response
// @Tags responses
// @Produce json
// @Param id path string true "Response ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} ErrorResponse
// @Router /responses/{id} [get]
func (h *ResponseHandler) GetResponse(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	response, err := h.responseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ExportResponses downloads a form's submissions as a spreadsheet
// @Summary Export responses
// @Description Streams an xlsx file with one row per submission
// @Tags responses
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Form ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /forms/{id}/responses/export [get]
func (h *ResponseHandler) ExportResponses(c *gin.Context) {
	formID := ParseStringIDParam(c, "id")
	if formID == "" {
		return
	}

	data, err := h.exportService.ExportResponsesToExcel(c.Request.Context(), formID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("responses-%s.xlsx", formID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		data)
}
