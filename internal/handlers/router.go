package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arya020/FormBuilder/internal/services"
	"github.com/arya020/FormBuilder/internal/utils"
)

type HandlerManager struct {
	formHandler     *FormHandler
	responseHandler *ResponseHandler
	uploadHandler   *UploadHandler
}

func NewHandlerManager(
	formService services.FormService,
	responseService services.ResponseService,
	exportService services.ExportService,
	uploadService services.UploadService,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		formHandler:     NewFormHandler(formService, logger),
		responseHandler: NewResponseHandler(responseService, exportService, logger),
		uploadHandler:   NewUploadHandler(uploadService, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "form-builder",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Form routes
		forms := v1.Group("/forms")
		{
			forms.POST("", hm.formHandler.CreateForm)
			forms.GET("", hm.formHandler.ListForms)
			forms.GET("/:id", hm.formHandler.GetForm)
			forms.GET("/:id/live", hm.formHandler.GetPublishedForm)
			forms.PUT("/:id", hm.formHandler.UpdateForm)
			forms.DELETE("/:id", hm.formHandler.DeleteForm)
			forms.POST("/:id/publish", hm.formHandler.PublishForm)
			forms.POST("/:id/unpublish", hm.formHandler.UnpublishForm)

			// Submissions of a form
			forms.POST("/:id/responses", hm.responseHandler.SubmitResponse)
			forms.GET("/:id/responses", hm.responseHandler.ListResponses)
			forms.GET("/:id/responses/export", hm.responseHandler.ExportResponses)
		}

		// Response routes
		responses := v1.Group("/responses")
		{
			responses.GET("/:id", hm.responseHandler.GetResponse)
		}

		// Upload routes
		v1.POST("/uploads", hm.uploadHandler.UploadImage)
	}
}
