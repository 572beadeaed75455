package services

import (
	"context"

	"github.com/canyuksel/llmassess/internal/app/models"
	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/app/repositories"
)

const defaultTagSearchSize = 10

// TaxonomyService exposes tag prefix search and the category listing.
type TaxonomyService interface {
	SearchTags(ctx context.Context, q dto.TagSearchQuery) ([]models.TagCount, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type taxonomyService struct {
	tagRepo      *repositories.TagRepository
	categoryRepo *repositories.CategoryRepository
}

// NewTaxonomyService creates a new TaxonomyService
func NewTaxonomyService(tagRepo *repositories.TagRepository, categoryRepo *repositories.CategoryRepository) TaxonomyService {
	return &taxonomyService{tagRepo: tagRepo, categoryRepo: categoryRepo}
}

func (s *taxonomyService) SearchTags(ctx context.Context, q dto.TagSearchQuery) ([]models.TagCount, error) {
	if q.Size <= 0 {
		q.Size = defaultTagSearchSize
	}
	return s.tagRepo.Search(ctx, q)
}

func (s *taxonomyService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.ListAll(ctx)
}
