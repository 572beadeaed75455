package dto

import "github.com/canyuksel/llmassess/internal/app/models"

// DatasetListQuery carries the parsed parameters of the dataset list
// endpoint. Pagination runs over distinct dataset versions.
type DatasetListQuery struct {
	ID         *int64
	Name       string
	Version    string
	OrderField string
	OrderBy    string
	Page       int
	PageSize   int
}

// DatasetListResponse is the dataset list payload.
type DatasetListResponse struct {
	Total    int64            `json:"total"`
	Datasets []models.Dataset `json:"datasets"`
}

// CreateDatasetRequest is the body for snapshotting a new dataset version.
type CreateDatasetRequest struct {
	DatasetName  string  `json:"dataset_name"`
	VersionName  string  `json:"version_name"`
	StdQuestions []int64 `json:"std_questions"`
}

// CreateDatasetResponse returns the ids of the new dataset and its version.
type CreateDatasetResponse struct {
	DatasetID int64 `json:"dataset_id"`
	VersionID int64 `json:"version_id"`
}
