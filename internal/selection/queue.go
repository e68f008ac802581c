package selection

import "learning-service/internal/models"

// QueueRefreshInterval is how many answer submissions a client should make
// against one fetched queue before requesting a fresh one, so recently
// changed buckets are picked up.
const QueueRefreshInterval = 5

// Bucket classifies a question by the learner's history with it. Lower
// buckets are presented first.
type Bucket int

const (
	BucketUnseen   Bucket = iota // no learn record yet
	BucketMissed                 // record exists, count == 0
	BucketSeenOnce               // count == 1
	BucketMastered               // count >= 2
)

// Classify maps a question's learn-mode counter to its bucket.
func Classify(record *models.ProgressRecord) Bucket {
	switch {
	case record == nil:
		return BucketUnseen
	case record.CorrectAnswersCount == 0:
		return BucketMissed
	case record.CorrectAnswersCount == 1:
		return BucketSeenOnce
	default:
		return BucketMastered
	}
}

// BuildQueue orders the catalog for learn mode: unseen questions first, then
// missed, then seen-once, then mastered. Catalog order is preserved within
// each bucket and every question appears exactly once.
func BuildQueue(questions []models.Question, records []models.ProgressRecord) []models.Question {
	byQuestion := make(map[string]*models.ProgressRecord, len(records))
	for i := range records {
		byQuestion[records[i].QuestionID] = &records[i]
	}

	buckets := make([][]models.Question, BucketMastered+1)
	for _, q := range questions {
		b := Classify(byQuestion[q.ID])
		buckets[b] = append(buckets[b], q)
	}

	queue := make([]models.Question, 0, len(questions))
	for _, b := range buckets {
		queue = append(queue, b...)
	}
	return queue
}
