package selection

import (
	"testing"

	"learning-service/internal/models"
)

func catalog(ids ...string) []models.Question {
	questions := make([]models.Question, len(ids))
	for i, id := range ids {
		questions[i] = models.Question{ID: id}
	}
	return questions
}

func record(questionID string, count int) models.ProgressRecord {
	return models.ProgressRecord{
		QuestionID:          questionID,
		Mode:                models.ModeLearn,
		CorrectAnswersCount: count,
	}
}

func queueIDs(queue []models.Question) []string {
	ids := make([]string, len(queue))
	for i, q := range queue {
		ids[i] = q.ID
	}
	return ids
}

func TestBuildQueueOrdering(t *testing.T) {
	testCases := []struct {
		name     string
		catalog  []models.Question
		records  []models.ProgressRecord
		expected []string
	}{
		{
			name:     "no records keeps catalog order",
			catalog:  catalog("q1", "q2", "q3"),
			records:  nil,
			expected: []string{"q1", "q2", "q3"},
		},
		{
			name:    "unseen then missed then mastered",
			catalog: catalog("q1", "q2", "q3", "q4"),
			records: []models.ProgressRecord{
				record("q2", 0),
				record("q3", 2),
			},
			expected: []string{"q1", "q4", "q2", "q3"},
		},
		{
			name:    "all four buckets",
			catalog: catalog("q1", "q2", "q3", "q4"),
			records: []models.ProgressRecord{
				record("q1", 2),
				record("q2", 1),
				record("q3", 0),
			},
			expected: []string{"q4", "q3", "q2", "q1"},
		},
		{
			name:    "catalog order preserved within buckets",
			catalog: catalog("q1", "q2", "q3", "q4", "q5", "q6"),
			records: []models.ProgressRecord{
				record("q1", 0),
				record("q4", 0),
				record("q2", 3),
				record("q6", 5),
			},
			expected: []string{"q3", "q5", "q1", "q4", "q2", "q6"},
		},
		{
			name:     "empty catalog yields empty queue",
			catalog:  nil,
			records:  []models.ProgressRecord{record("q1", 1)},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			queue := BuildQueue(tc.catalog, tc.records)
			got := queueIDs(queue)
			if len(got) != len(tc.expected) {
				t.Fatalf("Expected queue %v, got %v", tc.expected, got)
			}
			for i := range tc.expected {
				if got[i] != tc.expected[i] {
					t.Fatalf("Expected queue %v, got %v", tc.expected, got)
				}
			}
		})
	}
}

func TestBuildQueueEachQuestionOnce(t *testing.T) {
	questions := catalog("q1", "q2", "q3", "q4", "q5")
	records := []models.ProgressRecord{
		record("q1", 0),
		record("q2", 1),
		record("q3", 2),
	}
	queue := BuildQueue(questions, records)
	if len(queue) != len(questions) {
		t.Fatalf("Expected %d questions in queue, got %d", len(questions), len(queue))
	}
	seen := map[string]bool{}
	for _, q := range queue {
		if seen[q.ID] {
			t.Errorf("Question %s appears more than once", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		record   *models.ProgressRecord
		expected Bucket
	}{
		{"no record", nil, BucketUnseen},
		{"count zero", &models.ProgressRecord{CorrectAnswersCount: 0}, BucketMissed},
		{"count one", &models.ProgressRecord{CorrectAnswersCount: 1}, BucketSeenOnce},
		{"count two", &models.ProgressRecord{CorrectAnswersCount: 2}, BucketMastered},
		{"count ten", &models.ProgressRecord{CorrectAnswersCount: 10}, BucketMastered},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.record); got != tc.expected {
				t.Errorf("Expected bucket %d, got %d", tc.expected, got)
			}
		})
	}
}
