package service

import (
	"context"

	"learning-service/internal/models"
	"learning-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// QuestionService carries the admin write path for questions. The model
// invariants (option count and length, correct answer membership) are
// enforced here, before anything reaches the collection.
type QuestionService struct {
	Repo            *repository.QuestionRepository
	SubcategoryRepo *repository.SubcategoryRepository
}

func NewQuestionService(repo *repository.QuestionRepository, subcategoryRepo *repository.SubcategoryRepository) *QuestionService {
	return &QuestionService{Repo: repo, SubcategoryRepo: subcategoryRepo}
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	q, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "question", id)
	}
	return q, nil
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	if question.Status == "" {
		question.Status = models.StatusEnabled
	}
	if err := question.Validate(); err != nil {
		return err
	}
	exists, err := s.SubcategoryRepo.Exists(ctx, question.SubcategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return notFound("subcategory", question.SubcategoryID)
	}
	return s.Repo.Create(ctx, question)
}

// UpdateQuestion replaces the editable fields of an existing question. The
// merged document is re-validated so an update cannot break the
// correct-answer invariant.
func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, updated *models.Question) error {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return asNotFound(err, "question", id)
	}

	merged := *existing
	merged.Text = updated.Text
	merged.AnswerOptions = updated.AnswerOptions
	merged.CorrectAnswer = updated.CorrectAnswer
	merged.Explanation = updated.Explanation
	if updated.Status != "" {
		merged.Status = updated.Status
	}
	if err := merged.Validate(); err != nil {
		return err
	}

	return s.Repo.Update(ctx, id, bson.M{
		"text":           merged.Text,
		"answer_options": merged.AnswerOptions,
		"correct_answer": merged.CorrectAnswer,
		"explanation":    merged.Explanation,
		"status":         merged.Status,
	})
}

// DisableQuestion removes a question from learner-facing catalogs without
// deleting its history.
func (s *QuestionService) DisableQuestion(ctx context.Context, id string) error {
	if err := s.Repo.Disable(ctx, id); err != nil {
		return asNotFound(err, "question", id)
	}
	return nil
}
