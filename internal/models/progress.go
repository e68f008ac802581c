package models

import "fmt"

type Mode string

const (
	ModeLearn Mode = "learn"
	ModeTest  Mode = "test"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLearn, ModeTest:
		return Mode(s), nil
	default:
		return "", &ValidationError{Field: "mode", Reason: fmt.Sprintf("unknown mode %q", s)}
	}
}

// PassThreshold is the fraction of enabled questions in a subcategory that
// must have a correct test record for the subcategory to count as passed.
const PassThreshold = 0.8

// ProgressRecord is the ledger entry for one (user, question, mode) tuple.
// At most one record exists per tuple; the collection carries a unique index
// on (user_id, question_id, mode).
type ProgressRecord struct {
	ID                  string `bson:"_id,omitempty" json:"id"`
	UserID              string `bson:"user_id" json:"user_id"`
	SubcategoryID       string `bson:"subcategory_id" json:"subcategory_id"`
	QuestionID          string `bson:"question_id" json:"question_id"`
	Mode                Mode   `bson:"mode" json:"mode"`
	CorrectAnswersCount int    `bson:"correct_answers_count" json:"correct_answers_count"`
}

// Apply advances the counter for one submission: a correct answer increments,
// an incorrect answer resets to zero. Keep in sync with the update expression
// in ProgressRepository.RecordOutcome.
func (r *ProgressRecord) Apply(isCorrect bool) {
	if isCorrect {
		r.CorrectAnswersCount++
	} else {
		r.CorrectAnswersCount = 0
	}
}

// Learned reports whether the question counts toward learn-mode aggregates.
func (r *ProgressRecord) Learned() bool {
	return r.CorrectAnswersCount >= 1
}
