package service

import (
	"context"
	"time"

	"learning-service/internal/models"
	"learning-service/internal/repository"
	"learning-service/internal/testmode"
)

// attemptStore is the slice of attempt persistence the test flow needs.
type attemptStore interface {
	FindByID(ctx context.Context, id string) (*models.TestAttempt, error)
	Create(ctx context.Context, attempt *models.TestAttempt) error
	Save(ctx context.Context, attempt *models.TestAttempt) error
}

// testCatalog is the read view of the catalog the test flow needs.
type testCatalog interface {
	SubcategoryExists(ctx context.Context, id string) (bool, error)
	ListBySubcategory(ctx context.Context, subcategoryID, status string) ([]models.Question, error)
	GetQuestion(ctx context.Context, id string) (*models.Question, error)
	GetQuestionsByIDs(ctx context.Context, ids []string) ([]models.Question, error)
}

// progressLedger covers the two ledger writes the test flow performs.
type progressLedger interface {
	RecordOutcome(ctx context.Context, userID, subcategoryID, questionID string, mode models.Mode, isCorrect bool) error
	ClearForUserAndSubcategory(ctx context.Context, userID, subcategoryID string, mode models.Mode) error
}

// TestService drives single pass-through test attempts. The attempt document
// is the state machine's backing store; every ledger write goes through the
// progress ledger.
type TestService struct {
	Attempts attemptStore
	Catalog  testCatalog
	Ledger   progressLedger
}

func NewTestService(attempts *repository.AttemptRepository, catalog *CatalogService, ledger *repository.ProgressRepository) *TestService {
	return &TestService{Attempts: attempts, Catalog: catalog, Ledger: ledger}
}

// ReviewResult is the read-only replay of a finished attempt. Questions
// resolves the attempt's frozen question sequence so the log entries can be
// rendered with their text and options.
type ReviewResult struct {
	Score          int                     `json:"score"`
	TotalQuestions int                     `json:"total_questions"`
	Entries        []models.AnswerLogEntry `json:"entries"`
	Questions      []models.Question       `json:"questions"`
}

// StartAttempt clears the user's prior test-mode records for the
// subcategory, freezes the enabled catalog as the attempt's question
// sequence and presents the first question. A placeholder incorrect record
// is written for each question as it is presented, so an abandoned question
// already counts as wrong.
//
// An empty catalog means the attempt cannot start; that is an empty state
// for the caller, not an error, and the returned attempt is nil.
func (s *TestService) StartAttempt(ctx context.Context, userID, subcategoryID string) (*models.TestAttempt, error) {
	exists, err := s.Catalog.SubcategoryExists(ctx, subcategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, notFound("subcategory", subcategoryID)
	}

	if err := s.Ledger.ClearForUserAndSubcategory(ctx, userID, subcategoryID, models.ModeTest); err != nil {
		return nil, err
	}

	questions, err := s.Catalog.ListBySubcategory(ctx, subcategoryID, models.StatusEnabled)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, nil
	}

	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	attempt := testmode.NewAttempt(userID, subcategoryID, ids)
	attempt.StartedAt = time.Now()

	if err := s.Ledger.RecordOutcome(ctx, userID, subcategoryID, ids[0], models.ModeTest, false); err != nil {
		return nil, err
	}
	if err := testmode.Start(attempt); err != nil {
		return nil, &models.ValidationError{Field: "state", Reason: err.Error()}
	}
	if err := s.Attempts.Create(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// CurrentQuestion returns the question the attempt is waiting on.
func (s *TestService) CurrentQuestion(ctx context.Context, attemptID, userID string) (*models.Question, error) {
	attempt, err := s.loadAttempt(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}
	if attempt.State != models.AttemptInProgress {
		return nil, &models.ValidationError{Field: "state", Reason: "attempt is not in progress"}
	}
	questionID, ok := attempt.CurrentQuestionID()
	if !ok {
		return nil, notFound("question", "current")
	}
	return s.Catalog.GetQuestion(ctx, questionID)
}

// SubmitAnswer grades the current question, records the outcome, advances
// the sequence and writes the placeholder for the next question as it
// becomes current.
func (s *TestService) SubmitAnswer(ctx context.Context, attemptID, userID, questionID, selected string) (*testmode.SubmitResult, error) {
	attempt, err := s.loadAttempt(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}
	question, err := s.Catalog.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	result, err := testmode.Submit(attempt, question, selected)
	if err != nil {
		return nil, &models.ValidationError{Field: "state", Reason: err.Error()}
	}

	if err := s.Ledger.RecordOutcome(ctx, userID, attempt.SubcategoryID, question.ID, models.ModeTest, result.IsCorrect); err != nil {
		return nil, err
	}
	if result.Finished {
		attempt.EndedAt = time.Now()
	} else {
		if err := s.Ledger.RecordOutcome(ctx, userID, attempt.SubcategoryID, result.NextQuestionID, models.ModeTest, false); err != nil {
			return nil, err
		}
	}
	if err := s.Attempts.Save(ctx, attempt); err != nil {
		return nil, err
	}
	return result, nil
}

// EndAttempt terminates early: every not-yet-answered question is logged and
// recorded as wrong. User-driven "end test" and timer expiry funnel through
// here; ending an attempt that already finished is a no-op.
func (s *TestService) EndAttempt(ctx context.Context, attemptID, userID string, timedOut bool) (*models.TestAttempt, error) {
	attempt, err := s.loadAttempt(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}
	if attempt.State != models.AttemptInProgress {
		return attempt, nil
	}

	completionType := models.CompletionTerminated
	if timedOut {
		completionType = models.CompletionTimeout
	}
	skipped := testmode.Terminate(attempt, completionType)
	for _, entry := range skipped {
		if err := s.Ledger.RecordOutcome(ctx, userID, attempt.SubcategoryID, entry.QuestionID, models.ModeTest, false); err != nil {
			return nil, err
		}
	}
	attempt.EndedAt = time.Now()
	if err := s.Attempts.Save(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// Review replays the answer log of a finished attempt, with the attempt's
// questions resolved in one batch. It never touches the ledger.
func (s *TestService) Review(ctx context.Context, attemptID, userID string) (*ReviewResult, error) {
	attempt, err := s.loadAttempt(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}
	if err := testmode.StartReview(attempt); err != nil {
		return nil, &models.ValidationError{Field: "state", Reason: err.Error()}
	}
	if err := s.Attempts.Save(ctx, attempt); err != nil {
		return nil, err
	}
	questions, err := s.Catalog.GetQuestionsByIDs(ctx, attempt.QuestionIDs)
	if err != nil {
		return nil, err
	}
	return &ReviewResult{
		Score:          attempt.Score(),
		TotalQuestions: attempt.TotalQuestions(),
		Entries:        attempt.AnswerLog,
		Questions:      questions,
	}, nil
}

func (s *TestService) GetAttempt(ctx context.Context, attemptID, userID string) (*models.TestAttempt, error) {
	return s.loadAttempt(ctx, attemptID, userID)
}

// loadAttempt fetches an attempt and checks ownership. Another user's
// attempt is reported as absent rather than forbidden.
func (s *TestService) loadAttempt(ctx context.Context, attemptID, userID string) (*models.TestAttempt, error) {
	attempt, err := s.Attempts.FindByID(ctx, attemptID)
	if err != nil {
		return nil, asNotFound(err, "attempt", attemptID)
	}
	if attempt.UserID != userID {
		return nil, notFound("attempt", attemptID)
	}
	return attempt, nil
}
