package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arya020/FormBuilder/internal/services"
	"github.com/arya020/FormBuilder/internal/utils"
)

type UploadHandler struct {
	BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(uploadService services.UploadService, logger utils.Logger) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   NewBaseHandler(logger),
		uploadService: uploadService,
	}
}

// UploadImage stores a header or question image
// @Summary Upload image
// @Description Accepts a multipart image and returns its serving URL
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Router /uploads [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Missing image file",
			Details: err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Failed to read image file",
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	url, err := h.uploadService.UploadImage(c.Request.Context(), fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Image uploaded",
		Data:    gin.H{"url": url},
	})
}
