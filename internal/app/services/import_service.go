package services

import (
	"context"

	"github.com/canyuksel/llmassess/internal/app/models"
	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/app/repositories"
	"github.com/canyuksel/llmassess/internal/pkg/apperrors"
)

// ImportService handles the bulk structured import and the full data dump.
type ImportService interface {
	Import(ctx context.Context, req dto.ImportRequest) error
	DumpAll(ctx context.Context) ([]models.SrcQuestion, error)
}

type importService struct {
	importRepo *repositories.ImportRepository
	srcRepo    *repositories.SrcQuestionRepository
}

// NewImportService creates a new ImportService
func NewImportService(importRepo *repositories.ImportRepository, srcRepo *repositories.SrcQuestionRepository) ImportService {
	return &importService{importRepo: importRepo, srcRepo: srcRepo}
}

func (s *importService) Import(ctx context.Context, req dto.ImportRequest) error {
	if len(req) == 0 {
		return apperrors.NewValidationError("import body must contain at least one source question")
	}
	for _, src := range req {
		if src.Content == "" {
			return apperrors.NewValidationError("source question content is required")
		}
		for _, std := range src.StdQuestions {
			for _, version := range std.Versions {
				if version.Content == "" {
					return apperrors.NewValidationError("question version content is required")
				}
			}
		}
	}
	return s.importRepo.ImportSrcQuestions(ctx, req)
}

func (s *importService) DumpAll(ctx context.Context) ([]models.SrcQuestion, error) {
	return s.srcRepo.ListAll(ctx)
}
