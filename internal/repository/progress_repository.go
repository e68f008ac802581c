package repository

import (
	"context"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProgressRepository is the ledger: one outcome counter per
// (user, question, mode) tuple.
type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("progress_records")}
}

// EnsureIndexes creates the unique index backing the one-record-per-tuple
// invariant. Called once at startup.
func (r *ProgressRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "question_id", Value: 1},
			{Key: "mode", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// RecordOutcome upserts the counter for (user, question, mode) in a single
// atomic update: a correct answer increments the counter, an incorrect answer
// resets it to zero. A missing record is created with count 1 or 0.
func (r *ProgressRepository) RecordOutcome(ctx context.Context, userID, subcategoryID, questionID string, mode models.Mode, isCorrect bool) error {
	filter := bson.M{
		"user_id":     userID,
		"question_id": questionID,
		"mode":        mode,
	}

	var count any
	if isCorrect {
		count = bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{"$correct_answers_count", 0}}, 1}}
	} else {
		count = 0
	}

	update := bson.A{
		bson.M{"$set": bson.M{
			"user_id":               userID,
			"subcategory_id":        subcategoryID,
			"question_id":           questionID,
			"mode":                  mode,
			"correct_answers_count": count,
		}},
	}

	_, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *ProgressRepository) FindByUserAndSubcategory(ctx context.Context, userID, subcategoryID string, mode models.Mode) ([]models.ProgressRecord, error) {
	return r.find(ctx, bson.M{
		"user_id":        userID,
		"subcategory_id": subcategoryID,
		"mode":           mode,
	})
}

// FindByUser returns every record the user has for a mode, across all
// subcategories. Used by the overall aggregator.
func (r *ProgressRepository) FindByUser(ctx context.Context, userID string, mode models.Mode) ([]models.ProgressRecord, error) {
	return r.find(ctx, bson.M{
		"user_id": userID,
		"mode":    mode,
	})
}

// ClearForUserAndSubcategory deletes the user's records for one subcategory
// and mode. Clearing an already-empty set succeeds silently.
func (r *ProgressRepository) ClearForUserAndSubcategory(ctx context.Context, userID, subcategoryID string, mode models.Mode) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{
		"user_id":        userID,
		"subcategory_id": subcategoryID,
		"mode":           mode,
	})
	return err
}

func (r *ProgressRepository) find(ctx context.Context, filter bson.M) ([]models.ProgressRecord, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	records := []models.ProgressRecord{}
	for cur.Next(ctx) {
		var rec models.ProgressRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, cur.Err()
}
