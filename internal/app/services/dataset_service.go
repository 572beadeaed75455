package services

import (
	"context"

	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/app/repositories"
	"github.com/canyuksel/llmassess/internal/pkg/apperrors"
)

// DatasetService handles dataset version snapshots.
type DatasetService interface {
	List(ctx context.Context, q dto.DatasetListQuery) (*dto.DatasetListResponse, error)
	Create(ctx context.Context, req dto.CreateDatasetRequest) (*dto.CreateDatasetResponse, error)
}

type datasetService struct {
	repo *repositories.DatasetRepository
}

// NewDatasetService creates a new DatasetService
func NewDatasetService(repo *repositories.DatasetRepository) DatasetService {
	return &datasetService{repo: repo}
}

func (s *datasetService) List(ctx context.Context, q dto.DatasetListQuery) (*dto.DatasetListResponse, error) {
	return s.repo.List(ctx, q)
}

func (s *datasetService) Create(ctx context.Context, req dto.CreateDatasetRequest) (*dto.CreateDatasetResponse, error) {
	if req.DatasetName == "" {
		return nil, apperrors.NewValidationError("dataset_name is required")
	}
	if req.VersionName == "" {
		return nil, apperrors.NewValidationError("version_name is required")
	}
	if len(req.StdQuestions) == 0 {
		return nil, apperrors.NewValidationError("std_questions must not be empty")
	}

	datasetID, versionID, err := s.repo.Create(ctx, req.DatasetName, req.VersionName, req.StdQuestions)
	if err != nil {
		return nil, err
	}
	return &dto.CreateDatasetResponse{DatasetID: datasetID, VersionID: versionID}, nil
}
