package service

import (
	"context"

	"learning-service/internal/models"
	"learning-service/internal/repository"
)

// CatalogService is the learner-facing read view over subcategories and
// their questions.
type CatalogService struct {
	QuestionRepo    *repository.QuestionRepository
	SubcategoryRepo *repository.SubcategoryRepository
}

func NewCatalogService(questionRepo *repository.QuestionRepository, subcategoryRepo *repository.SubcategoryRepository) *CatalogService {
	return &CatalogService{QuestionRepo: questionRepo, SubcategoryRepo: subcategoryRepo}
}

// ListBySubcategory returns the subcategory's questions, most recently
// created first. A missing subcategory is NotFound; a subcategory with zero
// questions yields a valid empty result.
func (s *CatalogService) ListBySubcategory(ctx context.Context, subcategoryID, status string) ([]models.Question, error) {
	exists, err := s.SubcategoryRepo.Exists(ctx, subcategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, notFound("subcategory", subcategoryID)
	}
	return s.QuestionRepo.FindBySubcategory(ctx, subcategoryID, status)
}

// SubcategoryExists distinguishes a missing subcategory from one with no
// questions.
func (s *CatalogService) SubcategoryExists(ctx context.Context, id string) (bool, error) {
	return s.SubcategoryRepo.Exists(ctx, id)
}

// GetQuestion fetches a single question, reporting absence as NotFound.
func (s *CatalogService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	q, err := s.QuestionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "question", id)
	}
	return q, nil
}

// GetQuestionsByIDs resolves a batch of question ids, e.g. for replaying a
// finished attempt's answer log.
func (s *CatalogService) GetQuestionsByIDs(ctx context.Context, ids []string) ([]models.Question, error) {
	return s.QuestionRepo.FindByIDs(ctx, ids)
}

func (s *CatalogService) GetSubcategory(ctx context.Context, id string) (*models.Subcategory, error) {
	sub, err := s.SubcategoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "subcategory", id)
	}
	return sub, nil
}

func (s *CatalogService) ListSubcategoriesByCategory(ctx context.Context, categoryID string) ([]models.Subcategory, error) {
	return s.SubcategoryRepo.FindByCategory(ctx, categoryID)
}

func (s *CatalogService) ListSubcategoriesByStatus(ctx context.Context, status string) ([]models.Subcategory, error) {
	return s.SubcategoryRepo.FindByStatus(ctx, status)
}

func (s *CatalogService) CreateSubcategory(ctx context.Context, sub *models.Subcategory) error {
	if sub.Status == "" {
		sub.Status = models.StatusEnabled
	}
	if err := sub.Validate(); err != nil {
		return err
	}
	return s.SubcategoryRepo.Create(ctx, sub)
}
