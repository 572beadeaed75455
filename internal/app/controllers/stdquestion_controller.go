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

// StdQuestionController handles standard question operations
type StdQuestionController struct {
	stdQuestionService services.StdQuestionService
}

// NewStdQuestionController creates a new StdQuestionController
func NewStdQuestionController(stdQuestionService services.StdQuestionService) *StdQuestionController {
	return &StdQuestionController{stdQuestionService: stdQuestionService}
}

// List handles retrieving standard questions with filtering, sorting and
// pagination. Each returned question carries its full version tree.
func (c *StdQuestionController) List(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	query := dto.StdQuestionListQuery{
		ID:                 parseIDQuery(ctx, "id"),
		Content:            ctx.Query("content"),
		Answer:             ctx.Query("answer"),
		Category:           ctx.Query("category"),
		Tags:               parseTagsQuery(ctx),
		OnlyShowAnswered:   parseBoolQuery(ctx, "only_show_answered"),
		OnlyShowNoAnswered: parseBoolQuery(ctx, "only_show_no_answered"),
		SortBy:             ctx.DefaultQuery("sort_by", "desc"),
		Page:               page,
		PageSize:           pageSize,
	}

	resp, err := c.stdQuestionService.List(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SetStandardAnswer handles creating or replacing the standard answer of a
// question version, scoring points included.
func (c *StdQuestionController) SetStandardAnswer(ctx *gin.Context) {
	var req dto.SetStandardAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := c.stdQuestionService.SetStandardAnswer(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
