package services

import (
	"context"

	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/app/repositories"
)

// SrcQuestionService handles source question listing.
type SrcQuestionService interface {
	List(ctx context.Context, q dto.SrcQuestionListQuery) (*dto.SrcQuestionListResponse, error)
}

type srcQuestionService struct {
	repo *repositories.SrcQuestionRepository
}

// NewSrcQuestionService creates a new SrcQuestionService
func NewSrcQuestionService(repo *repositories.SrcQuestionRepository) SrcQuestionService {
	return &srcQuestionService{repo: repo}
}

func (s *srcQuestionService) List(ctx context.Context, q dto.SrcQuestionListQuery) (*dto.SrcQuestionListResponse, error) {
	return s.repo.List(ctx, q)
}
