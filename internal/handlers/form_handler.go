package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arya020/FormBuilder/internal/repositories"
	"github.com/arya020/FormBuilder/internal/services"
	"github.com/arya020/FormBuilder/internal/utils"
)

type FormHandler struct {
	BaseHandler
	formService services.FormService
}

func NewFormHandler(formService services.FormService, logger utils.Logger) *FormHandler {
	return &FormHandler{
		BaseHandler: NewBaseHandler(logger),
		formService: formService,
	}
}

// CreateForm creates a new draft form
// @Summary Create form
// @Description Creates a new draft form, defaulting the title when omitted
// @Tags forms
// @Accept json
// @Produce json
// @Param form body services.CreateFormRequest true "Form data"
// @Success 201 {object} models.Form
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var req services.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	form, err := h.formService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, form)
}

// ListForms lists forms with optional filters
// @Summary List forms
// @Description Lists forms, newest first, with optional published filter and title search
// @Tags forms
// @Produce json
// @Param published query bool false "Filter by publish state"
// @Param search query string false "Title substring"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} ListResponse
// @Failure 500 {object} ErrorResponse
// @Router /forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	filters := repositories.FormFilters{
		Search: c.Query("search"),
		Limit:  ParseIntQuery(c, "limit", 20),
		Offset: ParseIntQuery(c, "offset", 0),
	}
	if raw := c.Query("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid published filter",
				Details: raw,
			})
			return
		}
		filters.Published = &published
	}

	forms, total, err := h.formService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Data: forms, Total: total})
}

// GetForm retrieves a form by ID
// @Summary Get form
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} models.Form
// @Failure 404 {object} ErrorResponse
// @Router /forms/{id} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	form, err := h.formService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// GetPublishedForm retrieves the respondent-facing view of a live form
// @Summary Get published form
// @Description Retrieves a form only if it is published; drafts 409
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} models.Form
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /forms/{id}/live [get]
func (h *FormHandler) GetPublishedForm(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	form, err := h.formService.GetPublished(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// UpdateForm replaces the whole form document
// @Summary Update form
// @Description Replaces title, description, header image and the full question list
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param form body services.UpdateFormRequest true "Form document"
// @Success 200 {object} models.Form
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	form, err := h.formService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// DeleteForm deletes a form and its responses
// @Summary Delete form
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	if err := h.formService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Form deleted"})
}

// PublishForm makes a form live
// @Summary Publish form
// @Description Validates every question and opens the form for submissions
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} models.Form
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /forms/{id}/publish [post]
func (h *FormHandler) PublishForm(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	form, err := h.formService.Publish(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, form)
}

// UnpublishForm takes a form offline
// @Summary Unpublish form
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} models.Form
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /forms/{id}/unpublish [post]
func (h *FormHandler) UnpublishForm(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	form, err := h.formService.Unpublish(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, form)
}
