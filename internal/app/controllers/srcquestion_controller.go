package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/app/services"
	"github.com/canyuksel/llmassess/internal/middleware"
	"github.com/canyuksel/llmassess/internal/pkg/helpers"
)

// SrcQuestionController handles source question operations
type SrcQuestionController struct {
	srcQuestionService services.SrcQuestionService
}

// NewSrcQuestionController creates a new SrcQuestionController
func NewSrcQuestionController(srcQuestionService services.SrcQuestionService) *SrcQuestionController {
	return &SrcQuestionController{srcQuestionService: srcQuestionService}
}

// List handles retrieving source questions with their derived standard
// questions and free-text source answers.
func (c *SrcQuestionController) List(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	query := dto.SrcQuestionListQuery{
		ID:         parseIDQuery(ctx, "id"),
		Content:    ctx.Query("content"),
		OrderField: ctx.DefaultQuery("order_field", "id"),
		OrderBy:    ctx.DefaultQuery("order_by", "desc"),
		Page:       page,
		PageSize:   pageSize,
	}

	resp, err := c.srcQuestionService.List(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
