package models

import (
	"fmt"
	"time"
)

const (
	StatusEnabled  = "enabled"
	StatusDisabled = "disabled"
)

const (
	MinAnswerOptions = 2
	MaxAnswerOptions = 5

	MaxAnswerOptionLength = 255
)

type Question struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	SubcategoryID string    `bson:"subcategory_id" json:"subcategory_id"`
	Text          string    `bson:"text" json:"text"`
	AnswerOptions []string  `bson:"answer_options" json:"answer_options"`
	CorrectAnswer string    `bson:"correct_answer" json:"correct_answer"`
	Explanation   string    `bson:"explanation,omitempty" json:"explanation,omitempty"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// Validate enforces the write-time invariants for admin create/update.
// The correct answer must equal one of the answer options exactly.
func (q *Question) Validate() error {
	if q.SubcategoryID == "" {
		return &ValidationError{Field: "subcategory_id", Reason: "subcategory is required"}
	}
	if q.Text == "" {
		return &ValidationError{Field: "text", Reason: "question text is required"}
	}
	if len(q.AnswerOptions) < MinAnswerOptions || len(q.AnswerOptions) > MaxAnswerOptions {
		return &ValidationError{
			Field:  "answer_options",
			Reason: fmt.Sprintf("must contain between %d and %d options", MinAnswerOptions, MaxAnswerOptions),
		}
	}
	for i, opt := range q.AnswerOptions {
		if len(opt) == 0 || len(opt) > MaxAnswerOptionLength {
			return &ValidationError{
				Field:  "answer_options",
				Reason: fmt.Sprintf("option %d must be between 1 and %d characters", i+1, MaxAnswerOptionLength),
			}
		}
	}
	if !q.HasOption(q.CorrectAnswer) {
		return &ValidationError{Field: "correct_answer", Reason: "correct answer must match one of the answer options"}
	}
	if q.Status != StatusEnabled && q.Status != StatusDisabled {
		return &ValidationError{Field: "status", Reason: "status must be enabled or disabled"}
	}
	return nil
}

func (q *Question) HasOption(answer string) bool {
	for _, opt := range q.AnswerOptions {
		if opt == answer {
			return true
		}
	}
	return false
}

func (q *Question) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}
