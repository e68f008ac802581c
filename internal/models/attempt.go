package models

import "time"

type AttemptState string

const (
	AttemptInitializing AttemptState = "initializing"
	AttemptInProgress   AttemptState = "in_progress"
	AttemptFinished     AttemptState = "finished"
	AttemptReviewing    AttemptState = "reviewing"
)

const (
	CompletionSubmitted  = "submitted"
	CompletionTerminated = "terminated"
	CompletionTimeout    = "timeout"
)

// AnswerLogEntry records one presented question within a test attempt.
// SelectedOption is nil when the question was never answered (early
// termination or timer expiry).
type AnswerLogEntry struct {
	QuestionIndex  int     `bson:"question_index" json:"question_index"`
	QuestionID     string  `bson:"question_id" json:"question_id"`
	SelectedOption *string `bson:"selected_option,omitempty" json:"selected_option"`
	IsCorrect      bool    `bson:"is_correct" json:"is_correct"`
	Sequence       int     `bson:"sequence" json:"sequence"`
}

// TestAttempt is one user's single pass-through test for a subcategory.
// QuestionIDs is fixed at start and never reshuffled mid-attempt.
type TestAttempt struct {
	ID             string           `bson:"_id,omitempty" json:"id"`
	UserID         string           `bson:"user_id" json:"user_id"`
	SubcategoryID  string           `bson:"subcategory_id" json:"subcategory_id"`
	State          AttemptState     `bson:"state" json:"state"`
	QuestionIDs    []string         `bson:"question_ids" json:"question_ids"`
	CurrentIndex   int              `bson:"current_index" json:"current_index"`
	AnswerLog      []AnswerLogEntry `bson:"answer_log" json:"answer_log"`
	StartedAt      time.Time        `bson:"started_at" json:"started_at"`
	EndedAt        time.Time        `bson:"ended_at,omitempty" json:"ended_at,omitempty"`
	CompletionType string           `bson:"completion_type,omitempty" json:"completion_type,omitempty"`
}

func (a *TestAttempt) TotalQuestions() int {
	return len(a.QuestionIDs)
}

// Score counts the answer-log entries graded correct.
func (a *TestAttempt) Score() int {
	correct := 0
	for _, e := range a.AnswerLog {
		if e.IsCorrect {
			correct++
		}
	}
	return correct
}

func (a *TestAttempt) CurrentQuestionID() (string, bool) {
	if a.CurrentIndex < 0 || a.CurrentIndex >= len(a.QuestionIDs) {
		return "", false
	}
	return a.QuestionIDs[a.CurrentIndex], true
}
