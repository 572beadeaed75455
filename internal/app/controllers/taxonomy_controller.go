package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/app/services"
	"github.com/canyuksel/llmassess/internal/middleware"
)

// TaxonomyController handles tag search and category listing
type TaxonomyController struct {
	taxonomyService services.TaxonomyService
}

// NewTaxonomyController creates a new TaxonomyController
func NewTaxonomyController(taxonomyService services.TaxonomyService) *TaxonomyController {
	return &TaxonomyController{taxonomyService: taxonomyService}
}

// SearchTags handles tag substring search ordered by usage count.
func (c *TaxonomyController) SearchTags(ctx *gin.Context) {
	size, err := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		size = 10
	}

	query := dto.TagSearchQuery{
		Tag:  ctx.Query("tag"),
		Size: size,
	}

	tags, err := c.taxonomyService.SearchTags(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tags)
}

// ListCategories handles retrieving all categories with question counts.
func (c *TaxonomyController) ListCategories(ctx *gin.Context) {
	categories, err := c.taxonomyService.ListCategories(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}
