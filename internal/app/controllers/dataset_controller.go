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

// DatasetController handles dataset version operations
type DatasetController struct {
	datasetService services.DatasetService
}

// NewDatasetController creates a new DatasetController
func NewDatasetController(datasetService services.DatasetService) *DatasetController {
	return &DatasetController{datasetService: datasetService}
}

// List handles retrieving dataset versions with their immutable question
// version snapshots.
func (c *DatasetController) List(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	query := dto.DatasetListQuery{
		ID:         parseIDQuery(ctx, "id"),
		Name:       ctx.Query("name"),
		Version:    ctx.Query("version"),
		OrderField: ctx.DefaultQuery("order_field", "created_at"),
		OrderBy:    ctx.DefaultQuery("order_by", "desc"),
		Page:       page,
		PageSize:   pageSize,
	}

	resp, err := c.datasetService.List(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Create handles snapshotting a new dataset with its first version.
// Duplicate dataset names surface as a structured conflict response.
func (c *DatasetController) Create(ctx *gin.Context) {
	var req dto.CreateDatasetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	resp, err := c.datasetService.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
