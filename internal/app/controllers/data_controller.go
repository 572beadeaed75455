package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/app/services"
	"github.com/canyuksel/llmassess/internal/pkg/logger"
)

// DataController handles the structured bulk import and the full export.
// Both endpoints keep the original envelope: failures answer with
// success=false and a message instead of a bare 500.
type DataController struct {
	importService services.ImportService
}

// NewDataController creates a new DataController
func NewDataController(importService services.ImportService) *DataController {
	return &DataController{importService: importService}
}

// Import handles the all-or-nothing structured import of source questions
// with their derived standard question trees.
func (c *DataController) Import(ctx *gin.Context) {
	var req dto.ImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ImportResponse{Success: false, Message: "invalid request body: " + err.Error()})
		return
	}

	if err := c.importService.Import(ctx.Request.Context(), req); err != nil {
		logger.Error().Err(err).Msg("Data import failed")
		ctx.JSON(http.StatusOK, dto.ImportResponse{Success: false, Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.ImportResponse{Success: true, Message: "import completed"})
}

// Dump handles the full unpaginated export of source questions with nested
// standard question trees and source answers.
func (c *DataController) Dump(ctx *gin.Context) {
	data, err := c.importService.DumpAll(ctx.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Data dump failed")
		ctx.JSON(http.StatusOK, dto.DataResponse{Success: false, Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Success: true, Message: "ok", Data: data})
}
