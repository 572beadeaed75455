package services

import (
	"context"

	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/app/repositories"
	"github.com/canyuksel/llmassess/internal/pkg/apperrors"
)

// CandidateAnswerService handles candidate answer listing and submission.
type CandidateAnswerService interface {
	List(ctx context.Context, q dto.CandidateAnswerListQuery) (*dto.CandidateAnswerListResponse, error)
	Create(ctx context.Context, req dto.CreateCandidateAnswerRequest) (int64, error)
}

type candidateAnswerService struct {
	repo *repositories.CandidateAnswerRepository
}

// NewCandidateAnswerService creates a new CandidateAnswerService
func NewCandidateAnswerService(repo *repositories.CandidateAnswerRepository) CandidateAnswerService {
	return &candidateAnswerService{repo: repo}
}

func (s *candidateAnswerService) List(ctx context.Context, q dto.CandidateAnswerListQuery) (*dto.CandidateAnswerListResponse, error) {
	return s.repo.List(ctx, q)
}

func (s *candidateAnswerService) Create(ctx context.Context, req dto.CreateCandidateAnswerRequest) (int64, error) {
	if req.StdQuestionVersionID <= 0 {
		return 0, apperrors.NewValidationError("std_question_version_id is required")
	}
	if req.Answer == "" {
		return 0, apperrors.NewValidationError("answer is required")
	}
	if req.Username == "" {
		return 0, apperrors.NewValidationError("username is required")
	}
	return s.repo.Create(ctx, req.StdQuestionVersionID, req.Answer, req.Username)
}
