package dto

import "github.com/canyuksel/llmassess/internal/app/models"

// TagSearchQuery carries the parsed parameters of tag search.
type TagSearchQuery struct {
	Tag  string
	Size int
}

// DataResponse is the envelope of the full data dump endpoint.
type DataResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    []models.SrcQuestion `json:"data,omitempty"`
}
