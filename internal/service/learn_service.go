package service

import (
	"context"

	"learning-service/internal/models"
	"learning-service/internal/repository"
	"learning-service/internal/selection"
)

type LearnService struct {
	Catalog *CatalogService
	Ledger  *repository.ProgressRepository
}

func NewLearnService(catalog *CatalogService, ledger *repository.ProgressRepository) *LearnService {
	return &LearnService{Catalog: catalog, Ledger: ledger}
}

// LearnQueue is one fetch of the learn-mode question queue. RefreshAfter
// tells the client after how many submissions it should request a fresh
// queue.
type LearnQueue struct {
	Questions    []models.Question `json:"questions"`
	RefreshAfter int               `json:"refresh_after"`
}

// AnswerFeedback is returned to the learner after grading one submission.
type AnswerFeedback struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

// SelectQueue recomputes the learn queue from scratch: enabled catalog plus
// the user's learn-mode ledger entries, partitioned into unseen, missed,
// seen-once and mastered. An empty catalog yields an empty queue, not an
// error.
func (s *LearnService) SelectQueue(ctx context.Context, userID, subcategoryID string) (*LearnQueue, error) {
	questions, err := s.Catalog.ListBySubcategory(ctx, subcategoryID, models.StatusEnabled)
	if err != nil {
		return nil, err
	}
	records, err := s.Ledger.FindByUserAndSubcategory(ctx, userID, subcategoryID, models.ModeLearn)
	if err != nil {
		return nil, err
	}
	return &LearnQueue{
		Questions:    selection.BuildQueue(questions, records),
		RefreshAfter: selection.QueueRefreshInterval,
	}, nil
}

// SubmitAnswer grades one learn-mode submission and records the outcome in
// the ledger. Disabled questions are invisible to learners.
func (s *LearnService) SubmitAnswer(ctx context.Context, userID, questionID, selected string) (*AnswerFeedback, error) {
	question, err := s.Catalog.QuestionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, asNotFound(err, "question", questionID)
	}
	if question.Status != models.StatusEnabled {
		return nil, notFound("question", questionID)
	}
	if !question.HasOption(selected) {
		return nil, &models.ValidationError{Field: "selected_option", Reason: "selected option is not one of the question's answer options"}
	}

	isCorrect := question.IsCorrect(selected)
	if err := s.Ledger.RecordOutcome(ctx, userID, question.SubcategoryID, question.ID, models.ModeLearn, isCorrect); err != nil {
		return nil, err
	}
	return &AnswerFeedback{
		IsCorrect:     isCorrect,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   question.Explanation,
	}, nil
}
