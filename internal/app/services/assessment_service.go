package services

import (
	"context"

	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/app/repositories"
	"github.com/canyuksel/llmassess/internal/pkg/apperrors"
)

// AssessmentService handles recording and listing assessment runs.
type AssessmentService interface {
	List(ctx context.Context, q dto.AssessmentListQuery) (*dto.AssessmentListResponse, error)
	Create(ctx context.Context, req dto.CreateAssessmentRequest) (int64, error)
}

type assessmentService struct {
	repo *repositories.AssessmentRepository
}

// NewAssessmentService creates a new AssessmentService
func NewAssessmentService(repo *repositories.AssessmentRepository) AssessmentService {
	return &assessmentService{repo: repo}
}

func (s *assessmentService) List(ctx context.Context, q dto.AssessmentListQuery) (*dto.AssessmentListResponse, error) {
	return s.repo.List(ctx, q)
}

func (s *assessmentService) Create(ctx context.Context, req dto.CreateAssessmentRequest) (int64, error) {
	if req.Model == "" {
		return 0, apperrors.NewValidationError("model is required")
	}
	if req.DatasetVersionID <= 0 {
		return 0, apperrors.NewValidationError("dataset_version_id is required")
	}
	for _, answer := range req.ModelAnswers {
		if answer.StdQuestionVersionID <= 0 {
			return 0, apperrors.NewValidationError("each model answer needs a std_question_version_id")
		}
	}
	return s.repo.Create(ctx, req)
}
