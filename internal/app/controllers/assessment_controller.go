package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/app/services"
	"github.com/canyuksel/llmassess/internal/middleware"
	"github.com/canyuksel/llmassess/internal/pkg/apperrors"
	"github.com/canyuksel/llmassess/internal/pkg/helpers"
)

// AssessmentController handles assessment run operations
type AssessmentController struct {
	assessmentService services.AssessmentService
}

// NewAssessmentController creates a new AssessmentController
func NewAssessmentController(assessmentService services.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentService: assessmentService}
}

// List handles retrieving assessments with their dataset snapshot and the
// model answers with ordered score processes.
func (c *AssessmentController) List(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	query := dto.AssessmentListQuery{
		Page:      page,
		PageSize:  pageSize,
		SortOrder: ctx.DefaultQuery("sort_order", "desc"),
	}

	resp, err := c.assessmentService.List(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Create handles recording an assessment run against a dataset version.
func (c *AssessmentController) Create(ctx *gin.Context) {
	var req dto.CreateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	id, err := c.assessmentService.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CreateAssessmentResponse{AssessmentID: id})
}
