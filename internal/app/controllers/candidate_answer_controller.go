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

// CandidateAnswerController handles candidate answer operations
type CandidateAnswerController struct {
	candidateAnswerService services.CandidateAnswerService
}

// NewCandidateAnswerController creates a new CandidateAnswerController
func NewCandidateAnswerController(candidateAnswerService services.CandidateAnswerService) *CandidateAnswerController {
	return &CandidateAnswerController{candidateAnswerService: candidateAnswerService}
}

// List handles retrieving candidate answers. The std_question filter
// matches against the content of the answered question version.
func (c *CandidateAnswerController) List(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	query := dto.CandidateAnswerListQuery{
		ID:                  parseIDQuery(ctx, "id"),
		StdQuestion:         ctx.Query("std_question"),
		Author:              ctx.Query("author"),
		Content:             ctx.Query("content"),
		OnlyShowNoStdAnswer: parseBoolQuery(ctx, "only_show_no_std_answer"),
		SortField:           ctx.DefaultQuery("sort_field", "id"),
		SortBy:              ctx.DefaultQuery("sort_by", "desc"),
		Page:                page,
		PageSize:            pageSize,
	}

	resp, err := c.candidateAnswerService.List(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Create handles submitting a new candidate answer.
func (c *CandidateAnswerController) Create(ctx *gin.Context) {
	var req dto.CreateCandidateAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	id, err := c.candidateAnswerService.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CreateCandidateAnswerResponse{ID: id})
}
