package repository

import (
	"context"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("test_attempts")}
}

func (r *AttemptRepository) FindByID(ctx context.Context, id string) (*models.TestAttempt, error) {
	var attempt models.TestAttempt
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&attempt)
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *models.TestAttempt) error {
	if attempt.ID == "" {
		attempt.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, attempt)
	return err
}

// Save persists the full mutable state of an attempt after a transition.
func (r *AttemptRepository) Save(ctx context.Context, attempt *models.TestAttempt) error {
	update := bson.M{"$set": bson.M{
		"state":           attempt.State,
		"current_index":   attempt.CurrentIndex,
		"answer_log":      attempt.AnswerLog,
		"ended_at":        attempt.EndedAt,
		"completion_type": attempt.CompletionType,
	}}
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": attempt.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
