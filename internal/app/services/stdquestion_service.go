package services

import (
	"context"
	"strings"

	"github.com/canyuksel/llmassess/internal/app/models"
	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/app/repositories"
	"github.com/canyuksel/llmassess/internal/pkg/apperrors"
)

// StdQuestionService handles standard question listing and the standard
// answer upsert.
type StdQuestionService interface {
	List(ctx context.Context, q dto.StdQuestionListQuery) (*dto.StdQuestionListResponse, error)
	SetStandardAnswer(ctx context.Context, req dto.SetStandardAnswerRequest) error
}

type stdQuestionService struct {
	repo *repositories.StdQuestionRepository
}

// NewStdQuestionService creates a new StdQuestionService
func NewStdQuestionService(repo *repositories.StdQuestionRepository) StdQuestionService {
	return &stdQuestionService{repo: repo}
}

func (s *stdQuestionService) List(ctx context.Context, q dto.StdQuestionListQuery) (*dto.StdQuestionListResponse, error) {
	return s.repo.List(ctx, q)
}

func (s *stdQuestionService) SetStandardAnswer(ctx context.Context, req dto.SetStandardAnswerRequest) error {
	if req.StdQuestionVersionID <= 0 {
		return apperrors.NewValidationError("std_question_version_id is required")
	}
	if req.Answer == "" {
		return apperrors.NewValidationError("answer is required")
	}

	points := make([]models.ScoringPoint, 0, len(req.ScoringPoints))
	for _, p := range req.ScoringPoints {
		if strings.TrimSpace(p.Content) == "" {
			return apperrors.NewValidationError("each scoring point must have non-empty content")
		}
		points = append(points, models.ScoringPoint{Content: p.Content, Score: p.Score})
	}

	return s.repo.SetStandardAnswer(ctx, req.StdQuestionVersionID, req.Answer, points)
}
