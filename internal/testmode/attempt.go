// Package testmode holds the test-attempt state machine. All transitions are
// pure functions over the attempt document; persistence and ledger writes are
// the service layer's job.
package testmode

import (
	"fmt"

	"learning-service/internal/models"
)

// SubmitResult reports the outcome of one answer submission.
type SubmitResult struct {
	IsCorrect      bool   `json:"is_correct"`
	Finished       bool   `json:"finished"`
	NextQuestionID string `json:"next_question_id,omitempty"`
}

// NewAttempt builds an attempt over a fixed question sequence. The caller is
// expected to have cleared prior test-mode ledger rows already.
func NewAttempt(userID, subcategoryID string, questionIDs []string) *models.TestAttempt {
	return &models.TestAttempt{
		UserID:        userID,
		SubcategoryID: subcategoryID,
		State:         models.AttemptInitializing,
		QuestionIDs:   questionIDs,
		CurrentIndex:  0,
		AnswerLog:     []models.AnswerLogEntry{},
	}
}

// Start moves a freshly initialized attempt into progress.
func Start(a *models.TestAttempt) error {
	if a.State != models.AttemptInitializing {
		return fmt.Errorf("cannot start attempt in state %q", a.State)
	}
	if len(a.QuestionIDs) == 0 {
		return fmt.Errorf("cannot start attempt with no questions")
	}
	a.State = models.AttemptInProgress
	return nil
}

// Submit grades the current question, appends the answer-log entry and
// advances the sequence. Only valid while the attempt is in progress.
func Submit(a *models.TestAttempt, question *models.Question, selected string) (*SubmitResult, error) {
	if a.State != models.AttemptInProgress {
		return nil, fmt.Errorf("cannot submit answer in state %q", a.State)
	}
	currentID, ok := a.CurrentQuestionID()
	if !ok {
		return nil, fmt.Errorf("attempt has no current question")
	}
	if question.ID != currentID {
		return nil, fmt.Errorf("question %s is not the current question", question.ID)
	}

	isCorrect := question.IsCorrect(selected)
	a.AnswerLog = append(a.AnswerLog, models.AnswerLogEntry{
		QuestionIndex:  a.CurrentIndex,
		QuestionID:     currentID,
		SelectedOption: &selected,
		IsCorrect:      isCorrect,
		Sequence:       len(a.AnswerLog) + 1,
	})
	a.CurrentIndex++

	result := &SubmitResult{IsCorrect: isCorrect}
	if next, ok := a.CurrentQuestionID(); ok {
		result.NextQuestionID = next
	} else {
		a.State = models.AttemptFinished
		a.CompletionType = models.CompletionSubmitted
		result.Finished = true
	}
	return result, nil
}

// Terminate finishes the attempt early, logging every not-yet-answered
// question as wrong with no selected option. Returns the entries it added so
// the caller can mirror them into the ledger. Terminating an attempt that is
// already finished is a no-op.
func Terminate(a *models.TestAttempt, completionType string) []models.AnswerLogEntry {
	if a.State != models.AttemptInProgress {
		return nil
	}
	var skipped []models.AnswerLogEntry
	for i := a.CurrentIndex; i < len(a.QuestionIDs); i++ {
		entry := models.AnswerLogEntry{
			QuestionIndex: i,
			QuestionID:    a.QuestionIDs[i],
			IsCorrect:     false,
			Sequence:      len(a.AnswerLog) + 1,
		}
		a.AnswerLog = append(a.AnswerLog, entry)
		skipped = append(skipped, entry)
	}
	a.CurrentIndex = len(a.QuestionIDs)
	a.State = models.AttemptFinished
	a.CompletionType = completionType
	return skipped
}

// StartReview switches a finished attempt to the read-only review state.
// Review never touches the ledger.
func StartReview(a *models.TestAttempt) error {
	switch a.State {
	case models.AttemptFinished, models.AttemptReviewing:
		a.State = models.AttemptReviewing
		return nil
	default:
		return fmt.Errorf("cannot review attempt in state %q", a.State)
	}
}
