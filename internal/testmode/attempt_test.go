package testmode

import (
	"testing"

	"learning-service/internal/models"
)

func question(id, correct string) *models.Question {
	return &models.Question{
		ID:            id,
		AnswerOptions: []string{correct, "wrong"},
		CorrectAnswer: correct,
		Status:        models.StatusEnabled,
	}
}

func startedAttempt(t *testing.T, questionIDs ...string) *models.TestAttempt {
	t.Helper()
	a := NewAttempt("user-1", "sub-1", questionIDs)
	if err := Start(a); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return a
}

func TestStart(t *testing.T) {
	a := NewAttempt("user-1", "sub-1", []string{"q1"})
	if a.State != models.AttemptInitializing {
		t.Fatalf("Expected initializing state, got %q", a.State)
	}
	if err := Start(a); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if a.State != models.AttemptInProgress {
		t.Errorf("Expected in_progress state, got %q", a.State)
	}
	if err := Start(a); err == nil {
		t.Error("Expected error starting an already started attempt")
	}
}

func TestStartWithoutQuestions(t *testing.T) {
	a := NewAttempt("user-1", "sub-1", nil)
	if err := Start(a); err == nil {
		t.Error("Expected error starting attempt with no questions")
	}
}

func TestSubmitAdvancesAndFinishes(t *testing.T) {
	a := startedAttempt(t, "q1", "q2")

	result, err := Submit(a, question("q1", "right"), "right")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !result.IsCorrect {
		t.Error("Expected correct result")
	}
	if result.Finished {
		t.Error("Expected attempt to continue after first question")
	}
	if result.NextQuestionID != "q2" {
		t.Errorf("Expected next question q2, got %q", result.NextQuestionID)
	}

	result, err = Submit(a, question("q2", "right"), "wrong")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if result.IsCorrect {
		t.Error("Expected incorrect result")
	}
	if !result.Finished {
		t.Error("Expected attempt to finish after last question")
	}
	if a.State != models.AttemptFinished {
		t.Errorf("Expected finished state, got %q", a.State)
	}
	if a.CompletionType != models.CompletionSubmitted {
		t.Errorf("Expected completion type submitted, got %q", a.CompletionType)
	}
	if a.Score() != 1 {
		t.Errorf("Expected score 1, got %d", a.Score())
	}
}

func TestSubmitRejectsWrongQuestion(t *testing.T) {
	a := startedAttempt(t, "q1", "q2")
	if _, err := Submit(a, question("q2", "right"), "right"); err == nil {
		t.Error("Expected error submitting for a question that is not current")
	}
}

func TestSubmitRejectedWhenFinished(t *testing.T) {
	a := startedAttempt(t, "q1")
	if _, err := Submit(a, question("q1", "right"), "right"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := Submit(a, question("q1", "right"), "right"); err == nil {
		t.Error("Expected error submitting to a finished attempt")
	}
}

func TestAnswerLogSequence(t *testing.T) {
	a := startedAttempt(t, "q1", "q2", "q3")
	Submit(a, question("q1", "right"), "right")
	Submit(a, question("q2", "right"), "wrong")
	Terminate(a, models.CompletionTerminated)

	if len(a.AnswerLog) != 3 {
		t.Fatalf("Expected 3 log entries, got %d", len(a.AnswerLog))
	}
	for i, entry := range a.AnswerLog {
		if entry.Sequence != i+1 {
			t.Errorf("Entry %d: expected sequence %d, got %d", i, i+1, entry.Sequence)
		}
		if entry.QuestionIndex != i {
			t.Errorf("Entry %d: expected question index %d, got %d", i, i, entry.QuestionIndex)
		}
	}
}

func TestTerminateLogsRemainingAsWrong(t *testing.T) {
	a := startedAttempt(t, "q1", "q2", "q3", "q4", "q5")
	Submit(a, question("q1", "right"), "right")
	Submit(a, question("q2", "right"), "right")

	skipped := Terminate(a, models.CompletionTimeout)
	if len(skipped) != 3 {
		t.Fatalf("Expected 3 skipped entries, got %d", len(skipped))
	}
	for _, entry := range skipped {
		if entry.SelectedOption != nil {
			t.Errorf("Expected no selected option for skipped question %s", entry.QuestionID)
		}
		if entry.IsCorrect {
			t.Errorf("Expected skipped question %s to be wrong", entry.QuestionID)
		}
	}
	if a.State != models.AttemptFinished {
		t.Errorf("Expected finished state, got %q", a.State)
	}
	if a.CompletionType != models.CompletionTimeout {
		t.Errorf("Expected completion type timeout, got %q", a.CompletionType)
	}
	if a.Score() != 2 {
		t.Errorf("Expected score 2, got %d", a.Score())
	}
	if a.TotalQuestions() != 5 {
		t.Errorf("Expected 5 total questions, got %d", a.TotalQuestions())
	}
}

func TestTerminateIdempotent(t *testing.T) {
	a := startedAttempt(t, "q1", "q2")
	first := Terminate(a, models.CompletionTerminated)
	if len(first) != 2 {
		t.Fatalf("Expected 2 skipped entries, got %d", len(first))
	}

	// a second termination (e.g. timer firing after the user ended) is a no-op
	second := Terminate(a, models.CompletionTimeout)
	if second != nil {
		t.Errorf("Expected no entries from second termination, got %d", len(second))
	}
	if len(a.AnswerLog) != 2 {
		t.Errorf("Expected answer log unchanged at 2 entries, got %d", len(a.AnswerLog))
	}
	if a.CompletionType != models.CompletionTerminated {
		t.Errorf("Expected completion type preserved, got %q", a.CompletionType)
	}
}

func TestReviewOnlyFromFinished(t *testing.T) {
	a := startedAttempt(t, "q1")
	if err := StartReview(a); err == nil {
		t.Error("Expected error reviewing an in-progress attempt")
	}

	Terminate(a, models.CompletionTerminated)
	if err := StartReview(a); err != nil {
		t.Fatalf("StartReview failed: %v", err)
	}
	if a.State != models.AttemptReviewing {
		t.Errorf("Expected reviewing state, got %q", a.State)
	}

	// reviewing again stays valid
	if err := StartReview(a); err != nil {
		t.Errorf("Expected repeated review to succeed, got %v", err)
	}
}
